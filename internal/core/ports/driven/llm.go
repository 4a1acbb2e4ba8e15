package driven

import (
	"context"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

// LLMService answers chat requests. The interpretation service is its
// only caller and treats a nil LLMService as "interpretation disabled".
type LLMService interface {
	// Chat sends messages and returns the assistant's reply text.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName is recorded on every Reading.
	ModelName() string

	// Ping checks the provider answers without running a completion.
	Ping(ctx context.Context) error

	Close() error
}

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatOptions are per-request sampling limits. Zero leaves the provider default.
type ChatOptions struct {
	MaxTokens   int
	Temperature float64
}

// AIConfigValidator checks LLM settings before they are trusted.
type AIConfigValidator interface {
	// ValidateLLM returns nil for valid or unconfigured settings.
	ValidateLLM(ctx context.Context, config *domain.LLMSettings) error
}
