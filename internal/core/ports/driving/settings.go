package driving

import (
	"context"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

// SettingsService reads and edits AppSettings through string keys such as
// "llm.model" or "cast.seed".
type SettingsService interface {
	// Get returns the stored settings with defaults filled in.
	Get() (*domain.AppSettings, error)

	// Save writes every field of settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for key. An unknown key or a bad value wraps
	// domain.ErrInvalidInput.
	Set(key, value string) error

	// Keys lists the keys Set and Reset accept, sorted.
	Keys() []string

	// Reset forgets the stored value so key reads as its default again.
	Reset(key string) error

	// SetLLMProvider switches provider and resets the base URL to its
	// default. An empty model selects the provider's default model.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	GetDefaults() domain.AppSettings

	// ValidateLLMConfig pings the configured provider.
	ValidateLLMConfig(ctx context.Context) error
}
