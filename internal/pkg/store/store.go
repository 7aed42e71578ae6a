package store

// Store is a persistent string-keyed value store. It is the agent-side
// equivalent of the browser storage the Dayflow dashboard keeps its session
// and notification state in.
type Store interface {
	// Get returns the value for key. The second return value reports
	// whether the key was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Well-known keys.
const (
	KeyUser              = "user"
	KeyToken             = "token"
	KeyPreferences       = "notificationPreferences"
	KeyReadNotifications = "readNotifications"
)
