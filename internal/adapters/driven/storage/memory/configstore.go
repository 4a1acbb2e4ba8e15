// Package memory provides an in-memory ConfigStore. It backs tests and is
// the fallback when the config directory cannot be created.
package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/custodia-labs/suanming/internal/adapters/driven/config/value"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Path is what ConfigStore.Path reports.
const Path = ":memory:"

// ConfigStore keeps settings in a map. Nothing survives the process.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return NewConfigStoreFrom(nil)
}

// NewConfigStoreFrom creates a store holding a copy of values.
func NewConfigStoreFrom(values map[string]any) *ConfigStore {
	s := &ConfigStore{values: make(map[string]any, len(values))}
	maps.Copy(s.values, values)
	return s
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

func (s *ConfigStore) get(key string) any {
	val, _ := s.Get(key)
	return val
}

// GetString retrieves a string value.
func (s *ConfigStore) GetString(key string) string {
	v, _ := value.String(s.get(key))
	return v
}

// GetInt retrieves an integer value.
func (s *ConfigStore) GetInt(key string) int {
	v, _ := value.Int(s.get(key))
	return v
}

// GetInt64 retrieves a 64-bit integer value.
func (s *ConfigStore) GetInt64(key string) int64 {
	v, _ := value.Int64(s.get(key))
	return v
}

// GetFloat retrieves a float value.
func (s *ConfigStore) GetFloat(key string) float64 {
	v, _ := value.Float(s.get(key))
	return v
}

// GetBool retrieves a boolean value.
func (s *ConfigStore) GetBool(key string) bool {
	v, _ := value.Bool(s.get(key))
	return v
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
	return nil
}

// Unset removes key.
func (s *ConfigStore) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Keys lists the set keys.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

// Path returns ":memory:".
func (s *ConfigStore) Path() string {
	return Path
}
