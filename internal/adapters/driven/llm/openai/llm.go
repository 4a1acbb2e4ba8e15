// Package openai talks to OpenAI-compatible chat completion APIs.
// DeepSeek is the default endpoint.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/suanming/internal/adapters/driven/llm/transport"
	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
	"github.com/custodia-labs/suanming/internal/logger"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

var log = logger.For("openai")

// Defaults applied by NewLLMService.
const (
	DefaultBaseURL    = domain.DefaultLLMBaseURL
	DefaultLLMModel   = domain.DefaultLLMModel
	DefaultLLMTimeout = domain.DefaultLLMTimeoutSecond * time.Second
)

// LLMConfig configures an OpenAI-compatible endpoint.
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// RequestsPerMinute caps chat requests. Zero is unlimited.
	RequestsPerMinute int
}

// LLMService answers chat requests through /chat/completions.
type LLMService struct {
	client *transport.Client
	model  string
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	Stream      bool      `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message      message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// NewLLMService creates an OpenAI-compatible service. An API key is required.
func NewLLMService(cfg LLMConfig) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultLLMTimeout
	}

	client := transport.New(transport.Config{
		Provider:          "openai",
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
		Header:            http.Header{"Authorization": {"Bearer " + cfg.APIKey}},
	})
	log.Debug("%s at %s, timeout %s", cfg.Model, client.BaseURL(), client.Timeout())
	return &LLMService{client: client, model: cfg.Model}, nil
}

// Chat returns the first choice of a non-streaming completion.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	req := completionRequest{
		Model:       s.model,
		Messages:    make([]message, len(messages)),
		MaxTokens:   max(opts.MaxTokens, 0),
		Temperature: max(opts.Temperature, 0),
	}
	for i, m := range messages {
		req.Messages[i] = message{Role: m.Role, Content: m.Content}
	}

	var resp completionResponse
	if err := s.client.PostJSON(ctx, "/chat/completions", req, &resp); err != nil {
		if transport.IsRateLimited(err) {
			log.Warn("rate limited by %s, pausing requests", s.client.BaseURL())
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no response choices returned")
	}

	choice := resp.Choices[0]
	log.Debug("%d prompt tokens, %d completion tokens, finish %s",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens, choice.FinishReason)
	return choice.Message.Content, nil
}

// ModelName returns the chat model.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping lists models, which checks the key without running inference.
func (s *LLMService) Ping(ctx context.Context) error {
	if err := s.client.Get(ctx, "/models"); err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	return nil
}

// Close releases idle connections.
func (s *LLMService) Close() error {
	return s.client.Close()
}
