package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gatherly/gatherly/internal/domain/entity"
	repo "github.com/gatherly/gatherly/internal/domain/repository"
)

// notificationPageSize caps how many records a listing returns.
const notificationPageSize = 20

type NotificationService struct {
	Notifications repo.NotificationRepository
	Logger        *logrus.Logger
}

func NewNotificationService(notifications repo.NotificationRepository, logger *logrus.Logger) *NotificationService {
	return &NotificationService{Notifications: notifications, Logger: logger}
}

// List returns the caller's notifications, newest first, capped at 20.
// Anonymous callers get an empty list.
func (s *NotificationService) List(ctx context.Context, callerID string) ([]*entity.Notification, error) {
	if callerID == "" {
		return []*entity.Notification{}, nil
	}
	return s.Notifications.ListByUser(ctx, callerID, notificationPageSize)
}

// MarkRead flags one notification as read. Only the recipient may do so;
// marking an already-read notification succeeds silently.
func (s *NotificationService) MarkRead(ctx context.Context, callerID, notificationID string) error {
	if callerID == "" {
		return ErrNotAuthenticated
	}
	n, err := s.Notifications.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n == nil || n.UserID != callerID {
		return ErrNotFound
	}
	if n.IsRead {
		return nil
	}
	return s.Notifications.MarkRead(ctx, notificationID)
}

// MarkAllRead flags every unread notification of the caller and returns
// how many were affected.
func (s *NotificationService) MarkAllRead(ctx context.Context, callerID string) (int64, error) {
	if callerID == "" {
		return 0, ErrNotAuthenticated
	}
	count, err := s.Notifications.MarkAllRead(ctx, callerID)
	if err != nil {
		return 0, err
	}
	if count > 0 && s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": callerID, "count": count}).Debug("notifications marked read")
	}
	return count, nil
}
