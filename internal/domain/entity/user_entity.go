package entity

import "time"

// User is the identity record owned by the external auth provider.
// This core reads it for enrichment and never mutates it.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
