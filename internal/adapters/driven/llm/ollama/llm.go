// Package ollama talks to a local Ollama server through /api/chat.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/suanming/internal/adapters/driven/llm/transport"
	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
	"github.com/custodia-labs/suanming/internal/logger"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

var log = logger.For("ollama")

// Defaults applied by NewLLMService.
const (
	DefaultBaseURL    = "http://localhost:11434"
	DefaultLLMModel   = "qwen2.5"
	DefaultLLMTimeout = domain.DefaultLLMTimeoutSecond * time.Second
)

// LLMConfig configures the Ollama server.
type LLMConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration

	// RequestsPerMinute caps chat requests. Zero is unlimited.
	RequestsPerMinute int
}

// LLMService answers chat requests with a local model.
type LLMService struct {
	client *transport.Client
	model  string
}

type options struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
	Stream   bool      `json:"stream"`
	Options  *options  `json:"options,omitempty"`
}

// chatResponse reports errors in-band with a 200 while a model loads.
type chatResponse struct {
	Message         message `json:"message"`
	Done            bool    `json:"done"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
	Error           string  `json:"error,omitempty"`
}

// NewLLMService creates an Ollama service. No key is needed.
func NewLLMService(cfg LLMConfig) *LLMService {
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
		Provider:          "ollama",
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
	})
	log.Debug("%s at %s, timeout %s", cfg.Model, client.BaseURL(), client.Timeout())
	return &LLMService{client: client, model: cfg.Model}
}

// Chat runs one non-streaming exchange.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	req := chatRequest{
		Model:    s.model,
		Messages: make([]message, len(messages)),
	}
	for i, m := range messages {
		req.Messages[i] = message{Role: m.Role, Content: m.Content}
	}
	if opts.MaxTokens > 0 || opts.Temperature > 0 {
		req.Options = &options{NumPredict: opts.MaxTokens, Temperature: opts.Temperature}
	}

	var resp chatResponse
	if err := s.client.PostJSON(ctx, "/api/chat", req, &resp); err != nil {
		if transport.IsRateLimited(err) {
			log.Warn("rate limited by %s, pausing requests", s.client.BaseURL())
		}
		return "", err
	}
	if resp.Error != "" {
		return "", errors.New("ollama error: " + resp.Error)
	}

	log.Debug("%d prompt tokens, %d completion tokens", resp.PromptEvalCount, resp.EvalCount)
	return resp.Message.Content, nil
}

// ModelName returns the chat model.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping lists local models to check the server is up.
func (s *LLMService) Ping(ctx context.Context) error {
	if err := s.client.Get(ctx, "/api/tags"); err != nil {
		return fmt.Errorf("ollama: ping failed: %w", err)
	}
	return nil
}

// Close releases idle connections.
func (s *LLMService) Close() error {
	return s.client.Close()
}
