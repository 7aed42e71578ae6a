package session

import "context"

// Service owns the authenticated identity: it authenticates against the
// Dayflow API, resolves a display name, and persists the session across
// agent restarts.
type Service interface {
	// Restore loads a previously persisted session. It never fails to the
	// caller: corrupted state clears the session, secondary lookups degrade
	// to the persisted data.
	Restore(ctx context.Context) error

	// Login authenticates and establishes a persisted session. On failure
	// no session state is created or modified.
	Login(ctx context.Context, req LoginRequest) (*User, error)

	// Logout clears the in-memory session and the persisted entries. It
	// cannot fail; storage errors degrade to a warning.
	Logout()

	// UpdateUser shallow-merges the update into the current user and
	// re-persists. Returns ErrNotAuthenticated when no session exists.
	UpdateUser(update Update) (*User, error)

	// CurrentUser returns the authenticated user, or nil.
	CurrentUser() *User

	// Token returns the session's bearer token, or "".
	Token() string
}
