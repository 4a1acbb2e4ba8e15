package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
)

func TestNewPromptStore_WithCustomDir(t *testing.T) {
	dir := t.TempDir()

	store, err := NewPromptStore(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
}

func TestNewPromptStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewPromptStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".suanming", "prompts"), store.Dir())
}

func TestNewPromptStore_NoIOUntilLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")

	_, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestPromptStore_Load_CreatesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptSystem)
	require.NoError(t, err)

	for _, f := range []string{
		"divination_system.txt",
		"divination_question.txt",
		"disclaimer.txt",
		"README.md",
	} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, "expected file %s to exist", f)
	}
}

func TestPromptStore_Load_ReturnsDefaultContent(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	tests := map[string]string{
		driven.PromptSystem:     domain.DefaultSystemPrompt,
		driven.PromptQuestion:   domain.DefaultQuestionPrompt,
		driven.PromptDisclaimer: domain.DefaultDisclaimer,
	}
	for name, want := range tests {
		prompt, err := store.Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, prompt, name)
	}
}

func TestPromptStore_Load_ReturnsCustomContent(t *testing.T) {
	dir := t.TempDir()
	custom := "卦:%s %s 问:%s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "divination_question.txt"), []byte(custom+"\n"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptQuestion)

	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStore_Load_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, _ = store.Load(driven.PromptDisclaimer)
	require.NoError(t, os.Remove(filepath.Join(dir, "disclaimer.txt")))
	store.Reload()

	prompt, err := store.Load(driven.PromptDisclaimer)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDisclaimer, prompt)
}

func TestPromptStore_Load_EmptyFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "divination_system.txt"), []byte("  \n"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptSystem)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSystemPrompt, prompt)
}

func TestPromptStore_Load_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("nonexistent_prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent_prompt")
}

func TestPromptStore_Load_InitFailureUsesDefaults(t *testing.T) {
	store, err := NewPromptStore("/dev/null/prompts")
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptSystem)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSystemPrompt, prompt)

	_, err = store.Load("other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init failed")
}

func TestPromptStore_PicksUpEdits(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	first, err := store.Load(driven.PromptSystem)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSystemPrompt, first)

	path := filepath.Join(dir, "divination_system.txt")
	require.NoError(t, os.WriteFile(path, []byte("新的人设"), 0600))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	fresh, err := store.Load(driven.PromptSystem)
	require.NoError(t, err)
	assert.Equal(t, "新的人设", fresh)
}

func TestPromptStore_CacheKeyedOnModTime(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptSystem)
	require.NoError(t, err)

	path := filepath.Join(dir, "divination_system.txt")
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("改过"), 0600))
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	cached, err := store.Load(driven.PromptSystem)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSystemPrompt, cached, "same mtime serves the cached text")

	store.Reload()
	fresh, err := store.Load(driven.PromptSystem)
	require.NoError(t, err)
	assert.Equal(t, "改过", fresh)
}

func TestPromptStore_DoesNotOverwriteExistingFiles(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("mine"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "disclaimer.txt"), []byte("仅供参考"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	prompt, err := store.Load(driven.PromptDisclaimer)
	require.NoError(t, err)

	assert.Equal(t, "仅供参考", prompt)
	data, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
}

func TestPromptStore_Load_ConcurrentAccess(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prompt, err := store.Load(driven.PromptQuestion)
			assert.NoError(t, err)
			assert.Equal(t, domain.DefaultQuestionPrompt, prompt)
		}()
	}
	wg.Wait()
}
