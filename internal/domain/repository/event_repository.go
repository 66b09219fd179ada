package repository

import (
	"context"

	"github.com/gatherly/gatherly/internal/domain/entity"
)

// EventRepository defines event catalog persistence.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	// ListPublic returns all public events ordered by date descending.
	ListPublic(ctx context.Context) ([]*entity.Event, error)
	// ListPublicByCategory returns public events of one category, date descending.
	ListPublicByCategory(ctx context.Context, category string) ([]*entity.Event, error)
	// ListPublicByIDs resolves search hits to events, preserving the given
	// order and skipping ids that are missing or not public.
	ListPublicByIDs(ctx context.Context, ids []string) ([]*entity.Event, error)
	// ListByOrganizer returns an organizer's events, date descending.
	ListByOrganizer(ctx context.Context, organizerID string) ([]*entity.Event, error)
	Create(ctx context.Context, e *entity.Event) error
	// Patch applies a partial update and returns the updated event.
	Patch(ctx context.Context, id string, patch entity.EventPatch) (*entity.Event, error)
	// DeleteCascade removes the event and every RSVP referencing it in one
	// transaction, children first.
	DeleteCascade(ctx context.Context, id string) error
}
