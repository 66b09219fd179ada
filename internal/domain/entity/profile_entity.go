package entity

import "time"

// Roles a profile can hold. The role is fixed at profile creation.
const (
	RoleOrganizer = "organizer"
	RoleAttendee  = "attendee"
)

// Profile carries the application-level attributes of a user.
// At most one profile exists per user.
type Profile struct {
	ID               string
	UserID           string
	Role             string
	OrganizationName string
	Bio              string
	Interests        []string
	ContactInfo      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
