package entity

import "time"

// Event is the aggregate root for the event catalog.
// Date is epoch milliseconds, matching what clients submit and render.
type Event struct {
	ID           string
	Title        string
	Description  string
	Date         int64
	Location     string
	Category     string
	ImageURL     string
	OrganizerID  string
	MaxAttendees *int
	IsPublic     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EventPatch carries a partial update; nil fields are left untouched.
type EventPatch struct {
	Title        *string
	Description  *string
	Date         *int64
	Location     *string
	Category     *string
	ImageURL     *string
	MaxAttendees *int
	IsPublic     *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p EventPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Date == nil &&
		p.Location == nil && p.Category == nil && p.ImageURL == nil &&
		p.MaxAttendees == nil && p.IsPublic == nil
}
