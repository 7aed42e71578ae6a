package notification

import "context"

// Service produces a role-scoped, preference-filtered, time-windowed feed
// from the upstream HRMS collections and reconciles it with the persisted
// read-state.
type Service interface {
	// Refresh recomputes the feed. A failure in one category does not
	// abort the others; only top-level failures are returned. Returns
	// ErrNoSession when no user is authenticated.
	Refresh(ctx context.Context) error

	// Feed returns a snapshot of the current feed, newest first.
	Feed() []Notification

	// UnreadCount returns the number of unread feed entries.
	UnreadCount() int

	// MarkAsRead marks one entry read and persists its id. Idempotent.
	MarkAsRead(id string) error

	// MarkAllAsRead marks every current entry read, unioning their ids
	// into the persisted read set.
	MarkAllAsRead() error

	// Reset discards the in-memory feed. Called on logout so the next
	// session does not see the previous user's entries.
	Reset()

	// Preferences returns the persisted category toggles (defaults when
	// unset).
	Preferences() Preferences

	// UpdatePreferences persists new category toggles.
	UpdatePreferences(prefs Preferences) error
}
