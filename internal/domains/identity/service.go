package identity

import "context"

// Service là session store: giữ identity đang sign in (tối đa một
// active session cho cả process) và persistence của nó.
//
// State machine:
//
//	anonymous --Login(ok)-->  authenticated
//	anonymous --Login(fail)-> anonymous
//	authenticated --Logout--> anonymous
//	authenticated --UpdateProfile--> authenticated (fields change, id giữ nguyên)
//
// Không có transition nào để lộ intermediate state cho readers.
type Service interface {
	// Login normalizes the email, checks the Directory allow-list and, on a
	// match, makes that identity the active session and persists a snapshot.
	// Returns ErrNotAuthorized when the email is not on the list (session
	// unchanged) and ErrLoginInProgress when another attempt is pending.
	// Once started an attempt always resolves; it cannot be cancelled.
	Login(ctx context.Context, email string) (*User, error)

	// Logout clears the active identity and the persisted snapshot.
	// Always succeeds.
	Logout(ctx context.Context)

	// UpdateProfile merges the partial update into the active identity,
	// persists the snapshot and propagates to the Directory.
	// Returns ErrNotAuthenticated when anonymous.
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error)

	// Restore runs once at startup: a well-formed persisted snapshot becomes
	// the active identity, anything else leaves the session anonymous.
	Restore(ctx context.Context)

	// Current returns a copy of the active identity, or nil when anonymous.
	Current() *User

	// State reports anonymous, authenticating or authenticated.
	State() SessionState
}
