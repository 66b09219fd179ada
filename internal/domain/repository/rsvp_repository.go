package repository

import (
	"context"

	"github.com/gatherly/gatherly/internal/domain/entity"
)

// RSVPRepository defines RSVP ledger persistence.
type RSVPRepository interface {
	// GetByUserAndEvent returns (nil, nil) when no RSVP exists for the pair.
	GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entity.RSVP, error)
	ListByEvent(ctx context.Context, eventID string) ([]*entity.RSVP, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.RSVP, error)
	// Upsert inserts or patches the RSVP keyed on (UserID, EventID) as one
	// atomic statement and reports whether a new row was inserted. On update
	// the existing id and creation time are kept; Status and Notes are
	// replaced. The entity is populated with the stored row either way.
	Upsert(ctx context.Context, r *entity.RSVP) (inserted bool, err error)
	// Delete removes the caller's RSVP for the event and returns its id, or
	// ("", nil) when none existed.
	Delete(ctx context.Context, userID, eventID string) (string, error)
}
