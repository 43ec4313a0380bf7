package store

// Keys under which the timer persists its state.
const (
	KeySettings          = "pomodoro_settings"
	KeyCurrentMode       = "pomodoro_current_mode"
	KeyCompletedSessions = "pomodoro_completed_sessions"
)

// DB is the durable local key-value storage interface. Values are opaque
// strings; each key is read and written independently.
type DB interface {
	// Get returns the value stored under key and whether it exists
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error
	Delete(key string) error
	// Close ends the database connection
	Close() error
}
