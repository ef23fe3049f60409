package identity

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Service-level (Business logic) errors
var (
	// Authentication
	ErrNotAuthorized    = errors.New("email is not on the invite list")
	ErrNotAuthenticated = errors.New("no active session")
	ErrLoginInProgress  = errors.New("another login attempt is already in progress")

	// Upstream
	ErrUpstreamFailure = errors.New("profile service request failed")
)
