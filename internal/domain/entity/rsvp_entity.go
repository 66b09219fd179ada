package entity

import "time"

// RSVP statuses.
const (
	RSVPYes   = "yes"
	RSVPNo    = "no"
	RSVPMaybe = "maybe"
)

// RSVP is unique per (UserID, EventID); writes are upserts on that pair.
type RSVP struct {
	ID        string
	UserID    string
	EventID   string
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
