package driven

// ConfigStore holds flat, dot-notation configuration values such as
// "engine.reorder". Adapters decide how values are persisted.
type ConfigStore interface {
	// Get returns the raw value for key and whether it exists.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" when missing or not a string.
	GetString(key string) string

	// GetInt returns the value as an int, or 0 when missing or not a whole number.
	GetInt(key string) int

	// GetBool returns the value as a bool, or false when missing or not a bool.
	GetBool(key string) bool

	// Set stores a value. Persistent adapters write it out before returning.
	Set(key string, value any) error

	// Delete removes a key so reads fall back to defaults. Persistent
	// adapters write the change out before returning.
	Delete(key string) error

	// Save persists every value.
	Save() error

	// Load replaces the in-memory values with the persisted ones.
	Load() error

	// Path returns where values are persisted, or a placeholder for
	// stores that are not persisted.
	Path() string
}
