package entity

import "time"

// Notification types.
const (
	NotificationRSVPConfirmation = "rsvp_confirmation"
	NotificationEventReminder    = "event_reminder"
	NotificationEventUpdate      = "event_update"
	NotificationRSVPStatusChange = "rsvp_status_change"
)

// Notification is an append-only record; only IsRead is ever mutated,
// and only by the recipient.
type Notification struct {
	ID        string
	UserID    string
	Type      string
	Title     string
	Message   string
	EventID   string
	IsRead    bool
	CreatedAt time.Time
}
