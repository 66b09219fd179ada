package repository

import (
	"context"

	"github.com/gatherly/gatherly/internal/domain/entity"
)

// UserRepository reads identity records owned by the auth provider.
// Lookups return (nil, nil) when the user does not exist.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
