package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gatherly/gatherly/internal/domain/entity"
	repo "github.com/gatherly/gatherly/internal/domain/repository"
)

// NotificationPublisher relays freshly created notification records to
// the external delivery layer. Publishing is best-effort; record creation
// in the store is the source of truth.
type NotificationPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// UserInfo is the identity enrichment attached to an organizer's RSVP list.
type UserInfo struct {
	Name  string
	Email string
}

// RSVPWithUser pairs an RSVP with its user's name and email.
type RSVPWithUser struct {
	entity.RSVP
	User UserInfo
}

type RSVPService struct {
	RSVPs         repo.RSVPRepository
	Events        repo.EventRepository
	Users         repo.UserRepository
	Profiles      repo.ProfileRepository
	Notifications repo.NotificationRepository
	Publisher     NotificationPublisher
	Logger        *logrus.Logger
}

func NewRSVPService(rsvps repo.RSVPRepository, events repo.EventRepository, users repo.UserRepository, profiles repo.ProfileRepository, notifications repo.NotificationRepository, pub NotificationPublisher, logger *logrus.Logger) *RSVPService {
	return &RSVPService{
		RSVPs:         rsvps,
		Events:        events,
		Users:         users,
		Profiles:      profiles,
		Notifications: notifications,
		Publisher:     pub,
		Logger:        logger,
	}
}

// Mine returns the caller's RSVP for the event. Anonymous callers get
// (nil, nil), not an error.
func (s *RSVPService) Mine(ctx context.Context, callerID, eventID string) (*entity.RSVP, error) {
	if callerID == "" {
		return nil, nil
	}
	return s.RSVPs.GetByUserAndEvent(ctx, callerID, eventID)
}

// ListForEvent returns every RSVP on the event, each enriched with the
// attendee's name and email. Only the event's organizer may call it.
func (s *RSVPService) ListForEvent(ctx context.Context, callerID, eventID string) ([]*RSVPWithUser, error) {
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}
	e, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	if e.OrganizerID != callerID {
		return nil, ErrForbidden
	}

	rsvps, err := s.RSVPs.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	out := make([]*RSVPWithUser, 0, len(rsvps))
	for _, r := range rsvps {
		info := UserInfo{Name: "Unknown"}
		if u, uErr := s.Users.GetByID(ctx, r.UserID); uErr == nil && u != nil {
			if u.Name != "" {
				info.Name = u.Name
			}
			info.Email = u.Email
		}
		out = append(out, &RSVPWithUser{RSVP: *r, User: info})
	}
	return out, nil
}

// Submit upserts the caller's RSVP for the event. Attendee role required;
// the event must exist. Only a brand-new RSVP notifies the organizer —
// status toggles on an existing RSVP stay silent.
func (s *RSVPService) Submit(ctx context.Context, callerID, eventID, status, notes string) (string, error) {
	if callerID == "" {
		return "", ErrNotAuthenticated
	}
	profile, err := s.Profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return "", err
	}
	if profile == nil || profile.Role != entity.RoleAttendee {
		return "", ErrForbidden
	}

	e, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	if e == nil {
		return "", ErrNotFound
	}

	r := &entity.RSVP{UserID: callerID, EventID: eventID, Status: status, Notes: notes}
	inserted, err := s.RSVPs.Upsert(ctx, r)
	if err != nil {
		return "", err
	}
	if !inserted {
		return r.ID, nil
	}

	n := &entity.Notification{
		UserID:  e.OrganizerID,
		Type:    entity.NotificationRSVPConfirmation,
		Title:   "New RSVP",
		Message: fmt.Sprintf("Someone %s your event %q", rsvpVerb(status), e.Title),
		EventID: eventID,
	}
	if err := s.Notifications.Create(ctx, n); err != nil {
		return "", err
	}
	s.publish(ctx, n)
	return r.ID, nil
}

// Delete removes the caller's RSVP on the event. No notification is
// generated for withdrawals.
func (s *RSVPService) Delete(ctx context.Context, callerID, eventID string) (string, error) {
	if callerID == "" {
		return "", ErrNotAuthenticated
	}
	id, err := s.RSVPs.Delete(ctx, callerID, eventID)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrRSVPNotFound
	}
	return id, nil
}

func (s *RSVPService) publish(ctx context.Context, n *entity.Notification) {
	if s.Publisher == nil {
		return
	}
	body := map[string]any{
		"id":       n.ID,
		"user_id":  n.UserID,
		"type":     n.Type,
		"title":    n.Title,
		"message":  n.Message,
		"event_id": n.EventID,
	}
	if err := s.Publisher.PublishJSON(ctx, body); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("notification_id", n.ID).Warn("failed to publish notification")
	}
}

func rsvpVerb(status string) string {
	switch status {
	case entity.RSVPYes:
		return "accepted"
	case entity.RSVPNo:
		return "declined"
	default:
		return "might attend"
	}
}
