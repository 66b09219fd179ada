package repository

import (
	"context"

	"github.com/gatherly/gatherly/internal/domain/entity"
)

// NotificationRepository defines the append-only notification outbox.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	// ListByUser returns the recipient's notifications, newest first,
	// capped at limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead flips every unread notification of the user and returns
	// the number of rows affected.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
