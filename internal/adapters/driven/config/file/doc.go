// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data under the suanming config directory, ~/.suanming
// unless overridden.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable prompt templates
package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the config directory name under the user's home directory.
const DirName = ".suanming"

// DefaultDir returns ~/.suanming.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}
