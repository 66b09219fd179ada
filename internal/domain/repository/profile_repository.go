package repository

import (
	"context"

	"github.com/gatherly/gatherly/internal/domain/entity"
)

// ProfileRepository defines profile persistence. GetByUserID returns
// (nil, nil) when the user has no profile yet.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	Create(ctx context.Context, p *entity.Profile) error
	// Update patches the mutable attributes; Role is never changed.
	Update(ctx context.Context, p *entity.Profile) error
}
