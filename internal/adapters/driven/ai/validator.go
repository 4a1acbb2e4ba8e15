package ai

import (
	"context"
	"fmt"
	"net/url"

	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator checks LLM settings offline first, then pings the provider.
type ConfigValidator struct{}

// NewConfigValidator creates a validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateLLM rejects a malformed base URL or an empty model without
// touching the network. Unconfigured settings pass.
func (v *ConfigValidator) ValidateLLM(ctx context.Context, config *domain.LLMSettings) error {
	if config == nil || !config.IsConfigured() {
		return nil
	}
	if err := checkBaseURL(config.BaseURL); err != nil {
		return err
	}
	if config.Model == "" {
		return fmt.Errorf("%w: model must not be empty", domain.ErrInvalidInput)
	}
	return ValidateLLMConfig(ctx, config)
}

// checkBaseURL accepts an empty URL, which means the provider default.
func checkBaseURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base URL %q must be an http(s) URL", domain.ErrInvalidInput, raw)
	}
	return nil
}
