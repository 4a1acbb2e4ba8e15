package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
	"github.com/custodia-labs/suanming/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

var promptLog = logger.For("prompts")

// builtinPrompts seed new prompt files and replace missing or blank ones.
var builtinPrompts = map[string]string{
	driven.PromptSystem:     domain.DefaultSystemPrompt,
	driven.PromptQuestion:   domain.DefaultQuestionPrompt,
	driven.PromptDisclaimer: domain.DefaultDisclaimer,
}

const promptReadme = "# suanming prompts\n\n" +
	"Each `<name>.txt` here is sent to the language model by `suanming interpret`.\n\n" +
	"- `" + driven.PromptSystem + ".txt`: interpreter persona, no placeholders\n" +
	"- `" + driven.PromptQuestion + ".txt`: three `%s` placeholders, in order the\n" +
	"  primary hexagram name, the changing-lines sentence and the question topic\n" +
	"- `" + driven.PromptDisclaimer + ".txt`: appended to every reading\n\n" +
	"Edits are picked up on the next interpretation. A question template without\n" +
	"exactly three `%s` is ignored. Delete a file to get the default back.\n"

type cachedPrompt struct {
	text    string
	modTime time.Time
}

// PromptStore reads prompt templates from <dir>/<name>.txt. A file is
// re-read when its modification time changes. The directory and the
// default files are created on the first Load.
type PromptStore struct {
	dir string

	seedOnce sync.Once
	seedErr  error

	mu    sync.Mutex
	cache map[string]cachedPrompt
}

// NewPromptStore creates a store rooted at dir, ~/.suanming/prompts when empty.
func NewPromptStore(dir string) (*PromptStore, error) {
	if dir == "" {
		root, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(root, "prompts")
	}
	return &PromptStore{dir: dir, cache: map[string]cachedPrompt{}}, nil
}

// Dir returns the prompt directory.
func (s *PromptStore) Dir() string {
	return s.dir
}

// Load returns the named template. Missing, unreadable or blank files fall
// back to the built-in text; a name with no built-in is an error then.
func (s *PromptStore) Load(name string) (string, error) {
	s.seedOnce.Do(func() { s.seedErr = s.seed() })

	builtin, known := builtinPrompts[name]
	if s.seedErr != nil {
		if known {
			return builtin, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.seedErr)
	}

	text, err := s.read(name)
	switch {
	case err == nil && text != "":
		return text, nil
	case known:
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			promptLog.Warn("%s: %v, using built-in", name, err)
		}
		return builtin, nil
	case err == nil:
		return "", fmt.Errorf("load prompt %q: empty file", name)
	default:
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}
}

// Reload forgets every cached file.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	clear(s.cache)
	s.mu.Unlock()
}

func (s *PromptStore) path(name string) string {
	return filepath.Join(s.dir, name+".txt")
}

func (s *PromptStore) read(name string) (string, error) {
	info, err := os.Stat(s.path(name))
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.cache[name]; ok && c.modTime.Equal(info.ModTime()) {
		return c.text, nil
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	s.cache[name] = cachedPrompt{text: text, modTime: info.ModTime()}
	promptLog.Debug("loaded %s (%d bytes)", name, len(text))
	return text, nil
}

// seed writes any default file that does not exist yet. Existing files,
// the README included, are never touched.
func (s *PromptStore) seed() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create prompt directory: %w", err)
	}

	files := map[string]string{"README.md": promptReadme}
	for name, text := range builtinPrompts {
		files[name+".txt"] = text + "\n"
	}
	for file, body := range files {
		if err := createNew(filepath.Join(s.dir, file), body); err != nil {
			return fmt.Errorf("create %s: %w", file, err)
		}
	}
	return nil
}

func createNew(path, body string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := f.WriteString(body); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
