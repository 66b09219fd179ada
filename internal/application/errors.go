package application

import "errors"

// Error taxonomy shared by all services. Handlers map these onto HTTP
// statuses; read paths that tolerate an anonymous caller return empty
// results instead of ErrNotAuthenticated.
var (
	// ErrNotAuthenticated: a write path was invoked without a resolved identity.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden: identity resolved but the role or ownership check failed.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound: a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrProfileExists: profile creation attempted for a user that has one.
	ErrProfileExists = errors.New("profile already exists")
	// ErrRSVPNotFound: the caller has no RSVP on the target event.
	ErrRSVPNotFound = errors.New("rsvp not found")
)
