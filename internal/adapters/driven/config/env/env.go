// Package env overlays environment variables on the stored settings.
package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

// Overrides holds settings taken from the environment.
// Unset variables leave the stored value in place.
type Overrides struct {
	APIKey   string `env:"SUANMING_API_KEY"`
	BaseURL  string `env:"SUANMING_BASE_URL"`
	Model    string `env:"SUANMING_MODEL"`
	Provider string `env:"SUANMING_PROVIDER"`
	Seed     *int64 `env:"SUANMING_SEED"`
}

// Load reads Overrides from the process environment.
func Load() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// IsEmpty reports whether no variable was set.
func (o Overrides) IsEmpty() bool {
	return o == Overrides{}
}

// Apply writes the set overrides into settings.
// Switching provider without SUANMING_BASE_URL also switches to that provider's endpoint.
func (o Overrides) Apply(settings *domain.AppSettings) error {
	if o.Provider != "" {
		provider := domain.AIProvider(o.Provider)
		if !provider.IsValid() {
			return fmt.Errorf("%w: SUANMING_PROVIDER %q", domain.ErrInvalidInput, o.Provider)
		}
		if provider != settings.LLM.Provider {
			settings.LLM.Provider = provider
			settings.LLM.BaseURL = domain.DefaultLLMBaseURLs()[provider]
			settings.LLM.Model = domain.DefaultLLMModels()[provider]
		}
	}
	if o.BaseURL != "" {
		settings.LLM.BaseURL = o.BaseURL
	}
	if o.Model != "" {
		settings.LLM.Model = o.Model
	}
	if o.APIKey != "" {
		settings.LLM.APIKey = o.APIKey
	}
	if o.Seed != nil {
		settings.Cast.Seed = *o.Seed
	}
	return nil
}
