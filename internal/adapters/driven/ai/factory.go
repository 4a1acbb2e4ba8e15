// Package ai builds the configured LLM adapter and checks that it answers.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/suanming/internal/adapters/driven/llm/ollama"
	"github.com/custodia-labs/suanming/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
)

// pingTimeout bounds a connectivity check.
const pingTimeout = 5 * time.Second

type constructor func(s *domain.LLMSettings, timeout time.Duration) (driven.LLMService, error)

var providers = map[domain.AIProvider]constructor{
	domain.AIProviderOpenAI: func(s *domain.LLMSettings, timeout time.Duration) (driven.LLMService, error) {
		return openai.NewLLMService(openai.LLMConfig{
			APIKey:            s.APIKey,
			BaseURL:           s.BaseURL,
			Model:             s.Model,
			Timeout:           timeout,
			RequestsPerMinute: s.RequestsPerMinute,
		})
	},
	domain.AIProviderOllama: func(s *domain.LLMSettings, timeout time.Duration) (driven.LLMService, error) {
		return ollama.NewLLMService(ollama.LLMConfig{
			BaseURL:           s.BaseURL,
			Model:             s.Model,
			Timeout:           timeout,
			RequestsPerMinute: s.RequestsPerMinute,
		}), nil
	},
}

// CreateLLMService returns the adapter for settings.Provider, or nil when
// the settings are not configured.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}
	build, ok := providers[settings.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: LLM provider %s", domain.ErrUnsupportedType, settings.Provider)
	}

	var timeout time.Duration
	if settings.TimeoutSeconds > 0 {
		timeout = time.Duration(settings.TimeoutSeconds) * time.Second
	}
	return build(settings, timeout)
}

// ValidateLLMConfig builds a throwaway adapter and pings it. Unconfigured
// settings pass.
func ValidateLLMConfig(ctx context.Context, settings *domain.LLMSettings) error {
	svc, err := CreateLLMService(settings)
	if err != nil || svc == nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%s at %s unreachable: %w", settings.Provider, baseURLOrDefault(settings), err)
	}
	return nil
}

func baseURLOrDefault(s *domain.LLMSettings) string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	if s.Provider == domain.AIProviderOllama {
		return ollama.DefaultBaseURL
	}
	return openai.DefaultBaseURL
}
