package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

func TestLoad_Unset(t *testing.T) {
	for _, k := range []string{
		"SUANMING_API_KEY", "SUANMING_BASE_URL", "SUANMING_MODEL", "SUANMING_PROVIDER", "SUANMING_SEED",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	o, err := Load()

	require.NoError(t, err)
	assert.Empty(t, o.APIKey)
	assert.Nil(t, o.Seed)
}

func TestLoad_AllSet(t *testing.T) {
	t.Setenv("SUANMING_API_KEY", "sk-env")
	t.Setenv("SUANMING_BASE_URL", "https://example.test/v1")
	t.Setenv("SUANMING_MODEL", "deepseek-reasoner")
	t.Setenv("SUANMING_PROVIDER", "openai")
	t.Setenv("SUANMING_SEED", "42")

	o, err := Load()

	require.NoError(t, err)
	assert.False(t, o.IsEmpty())
	assert.Equal(t, "sk-env", o.APIKey)
	assert.Equal(t, "https://example.test/v1", o.BaseURL)
	assert.Equal(t, "deepseek-reasoner", o.Model)
	assert.Equal(t, "openai", o.Provider)
	require.NotNil(t, o.Seed)
	assert.Equal(t, int64(42), *o.Seed)
}

func TestLoad_BadSeed(t *testing.T) {
	t.Setenv("SUANMING_SEED", "forty-two")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestOverrides_IsEmpty(t *testing.T) {
	assert.True(t, Overrides{}.IsEmpty())

	seed := int64(0)
	assert.False(t, Overrides{Seed: &seed}.IsEmpty())
}

func TestOverrides_Apply(t *testing.T) {
	settings := domain.DefaultAppSettings()
	seed := int64(-3)

	err := Overrides{APIKey: "sk-env", Model: "m", Seed: &seed}.Apply(&settings)

	require.NoError(t, err)
	assert.Equal(t, "sk-env", settings.LLM.APIKey)
	assert.Equal(t, "m", settings.LLM.Model)
	assert.Equal(t, domain.DefaultLLMBaseURL, settings.LLM.BaseURL)
	assert.Equal(t, int64(-3), settings.Cast.Seed)
}

func TestOverrides_Apply_EmptyKeepsSettings(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.LLM.APIKey = "sk-file"
	settings.Cast.Seed = 9
	before := settings

	require.NoError(t, Overrides{}.Apply(&settings))

	assert.Equal(t, before, settings)
}

func TestOverrides_Apply_ProviderSwitch(t *testing.T) {
	settings := domain.DefaultAppSettings()

	require.NoError(t, Overrides{Provider: "ollama"}.Apply(&settings))

	assert.Equal(t, domain.AIProviderOllama, settings.LLM.Provider)
	assert.Equal(t, "http://localhost:11434", settings.LLM.BaseURL)
	assert.Equal(t, domain.DefaultLLMModels()[domain.AIProviderOllama], settings.LLM.Model)
}

func TestOverrides_Apply_ProviderWithExplicitEndpoint(t *testing.T) {
	settings := domain.DefaultAppSettings()

	require.NoError(t, Overrides{Provider: "ollama", BaseURL: "http://gpu:11434", Model: "qwen2.5:32b"}.Apply(&settings))

	assert.Equal(t, "http://gpu:11434", settings.LLM.BaseURL)
	assert.Equal(t, "qwen2.5:32b", settings.LLM.Model)
}

func TestOverrides_Apply_InvalidProvider(t *testing.T) {
	settings := domain.DefaultAppSettings()

	err := Overrides{Provider: "anthropic"}.Apply(&settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
}
