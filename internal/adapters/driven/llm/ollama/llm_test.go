package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suanming/internal/core/ports/driven"
)

func TestNewLLMService_Defaults(t *testing.T) {
	svc := NewLLMService(LLMConfig{})

	assert.Equal(t, DefaultLLMModel, svc.ModelName())
	assert.Equal(t, DefaultBaseURL, svc.client.BaseURL())
	assert.Equal(t, DefaultLLMTimeout, svc.client.Timeout())
	assert.NoError(t, svc.Close())
}

func TestLLMService_Chat(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"吉"},"done":true,"eval_count":3}`))
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL, Model: "qwen2.5:7b"})

	reply, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: driven.RoleUser, Content: "乾为天"},
	}, driven.ChatOptions{MaxTokens: 100, Temperature: 0.5})

	require.NoError(t, err)
	assert.Equal(t, "吉", reply)
	assert.Equal(t, "qwen2.5:7b", got.Model)
	assert.False(t, got.Stream)
	require.NotNil(t, got.Options)
	assert.Equal(t, 100, got.Options.NumPredict)
	assert.InDelta(t, 0.5, got.Options.Temperature, 1e-9)
}

func TestLLMService_Chat_NoOptions(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"message":{"content":"ok"},"done":true}`))
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})

	_, err := svc.Chat(context.Background(), nil, driven.ChatOptions{})

	require.NoError(t, err)
	assert.NotContains(t, raw, "options")
}

func TestLLMService_Chat_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"http status", http.StatusNotFound, `model "x" not found`, "status 404"},
		{"error field", http.StatusOK, `{"error":"model is loading"}`, "model is loading"},
		{"bad json", http.StatusOK, `not-json`, "decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			svc := NewLLMService(LLMConfig{BaseURL: server.URL})

			_, err := svc.Chat(context.Background(), nil, driven.ChatOptions{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLLMService_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	assert.NoError(t, NewLLMService(LLMConfig{BaseURL: server.URL}).Ping(context.Background()))
	assert.Error(t, NewLLMService(LLMConfig{BaseURL: server.URL + "/missing"}).Ping(context.Background()))
}

func TestLLMService_Ping_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewLLMService(LLMConfig{BaseURL: url}).Ping(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping failed")
}
