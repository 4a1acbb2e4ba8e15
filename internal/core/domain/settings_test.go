package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIProvider_Properties(t *testing.T) {
	tests := []struct {
		provider AIProvider
		valid    bool
		needsKey bool
		local    bool
		desc     string
	}{
		{AIProviderOpenAI, true, true, false, "OpenAI-compatible (DeepSeek, OpenAI)"},
		{AIProviderOllama, true, false, true, "Ollama (local)"},
		{AIProvider(""), false, false, false, "Unknown"},
		{AIProvider("anthropic"), false, false, false, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.provider.IsValid())
			assert.Equal(t, tt.needsKey, tt.provider.RequiresAPIKey())
			assert.Equal(t, tt.local, tt.provider.IsLocal())
			assert.Equal(t, tt.desc, tt.provider.Description())
		})
	}
}

func TestAllLLMProviders_Order(t *testing.T) {
	assert.Equal(t, []AIProvider{AIProviderOpenAI, AIProviderOllama}, AllLLMProviders())
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings LLMSettings
		expected bool
	}{
		{"openai with key", LLMSettings{Provider: AIProviderOpenAI, APIKey: "sk-test"}, true},
		{"openai without key", LLMSettings{Provider: AIProviderOpenAI}, false},
		{"ollama without key", LLMSettings{Provider: AIProviderOllama}, true},
		{"invalid provider", LLMSettings{Provider: "bogus", APIKey: "k"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.IsConfigured())
		})
	}
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, AIProviderOpenAI, settings.LLM.Provider)
	assert.Equal(t, "deepseek-chat", settings.LLM.Model)
	assert.Equal(t, "https://api.deepseek.com/v1", settings.LLM.BaseURL)
	assert.InDelta(t, 0.7, settings.LLM.Temperature, 1e-9)
	assert.Equal(t, 2000, settings.LLM.MaxTokens)
	assert.Empty(t, settings.LLM.APIKey)
	assert.False(t, settings.LLM.IsConfigured())
	assert.Equal(t, DefaultLLMRequestsPerMin, settings.LLM.RequestsPerMinute)
	assert.Zero(t, settings.Cast.Seed)
}

func TestDefaultLLMModels_CoverAllProviders(t *testing.T) {
	models := DefaultLLMModels()
	urls := DefaultLLMBaseURLs()

	for _, p := range AllLLMProviders() {
		require.Contains(t, models, p)
		require.Contains(t, urls, p)
		assert.NotEmpty(t, models[p])
		assert.NotEmpty(t, urls[p])
	}
}
