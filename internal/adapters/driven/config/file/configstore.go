package file

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/suanming/internal/adapters/driven/config/value"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigFile is the settings file name inside the config directory.
const ConfigFile = "config.toml"

const header = "# suanming settings. Edit by hand or with 'suanming settings set'.\n\n"

// ConfigStore keeps settings in a TOML file. Keys use dot notation
// ("llm.api_key") in memory and nested tables on disk.
type ConfigStore struct {
	mu   sync.RWMutex
	path string
	data map[string]any
}

// NewConfigStore opens dir/config.toml, creating dir if needed.
// An empty dir means ~/.suanming. A missing file is an empty store.
func NewConfigStore(dir string) (*ConfigStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	s := &ConfigStore{path: filepath.Join(dir, ConfigFile)}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory settings with the file contents.
func (s *ConfigStore) Reload() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		raw, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	doc := map[string]any{}
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = flatten(doc)
	return nil
}

// Get retrieves a value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *ConfigStore) get(key string) any {
	v, _ := s.Get(key)
	return v
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

// Set stores v under key and rewrites the file. On a write failure the
// in-memory value is rolled back.
func (s *ConfigStore) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	s.data[key] = v
	if err := s.persist(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

// Unset removes key and rewrites the file.
func (s *ConfigStore) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	if !had {
		return nil
	}
	delete(s.data, key)
	if err := s.persist(); err != nil {
		s.data[key] = prev
		return err
	}
	return nil
}

// Keys lists the set keys.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data))
}

// Path returns the settings file path.
func (s *ConfigStore) Path() string {
	return s.path
}

// persist writes the file through a temp file in the same directory so a
// crash never leaves half a config behind. Caller holds the lock.
func (s *ConfigStore) persist() error {
	body, err := toml.Marshal(unflatten(s.data))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.Write(body)

	tmp := s.path + ".tmp"
	// 0600: the file may hold an API key.
	if err := os.WriteFile(tmp, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

// flatten turns {"llm": {"model": "m"}} into {"llm.model": "m"}.
func flatten(doc map[string]any) map[string]any {
	out := map[string]any{}
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			if prefix != "" {
				k = prefix + "." + k
			}
			if table, ok := v.(map[string]any); ok {
				walk(k, table)
				continue
			}
			out[k] = v
		}
	}
	walk("", doc)
	return out
}

// unflatten is the inverse of flatten. Keys are applied shortest first,
// so when "llm" holds a value, "llm.model" is dropped rather than
// clobbering it.
func unflatten(flat map[string]any) map[string]any {
	keys := slices.SortedFunc(maps.Keys(flat), func(a, b string) int {
		if d := strings.Count(a, ".") - strings.Count(b, "."); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	doc := map[string]any{}
	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := doc
		for _, part := range parts[:len(parts)-1] {
			next, isTable := node[part].(map[string]any)
			if !isTable {
				if _, taken := node[part]; taken {
					node = nil
					break
				}
				next = map[string]any{}
				node[part] = next
			}
			node = next
		}
		if node != nil {
			node[parts[len(parts)-1]] = flat[key]
		}
	}
	return doc
}
