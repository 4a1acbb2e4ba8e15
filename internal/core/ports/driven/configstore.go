package driven

// ConfigStore holds flat dot-notation settings such as "llm.api_key".
//
// Typed getters return the zero value when the key is missing or holds a
// value of another type; use Get to tell the two apart.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64
	GetFloat(key string) float64
	GetBool(key string) bool

	// Set stores value and persists it.
	Set(key string, value any) error

	// Unset removes key and persists. Removing a missing key is not an error.
	Unset(key string) error

	// Keys lists the set keys in ascending order.
	Keys() []string

	// Path names the backing file, or a placeholder for non-file stores.
	Path() string
}
