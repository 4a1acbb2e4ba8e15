package domain

// AIProvider names the service that writes interpretations.
type AIProvider string

const (
	// AIProviderOpenAI speaks the OpenAI chat completion API. DeepSeek,
	// OpenAI and most hosted gateways qualify.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderOllama is a local Ollama server.
	AIProviderOllama AIProvider = "ollama"
)

// Defaults for a fresh install. DeepSeek exposes an OpenAI-compatible API.
const (
	DefaultLLMBaseURL        = "https://api.deepseek.com/v1"
	DefaultLLMModel          = "deepseek-chat"
	DefaultLLMTemperature    = 0.7
	DefaultLLMMaxTokens      = 2000
	DefaultLLMTimeoutSecond  = 120
	DefaultLLMRequestsPerMin = 20
)

type providerInfo struct {
	description string
	model       string
	baseURL     string
	needsKey    bool
	local       bool
}

// providers is ordered as AllLLMProviders reports them.
var providers = []struct {
	id   AIProvider
	info providerInfo
}{
	{AIProviderOpenAI, providerInfo{
		description: "OpenAI-compatible (DeepSeek, OpenAI)",
		model:       DefaultLLMModel,
		baseURL:     DefaultLLMBaseURL,
		needsKey:    true,
	}},
	{AIProviderOllama, providerInfo{
		description: "Ollama (local)",
		model:       "qwen2.5",
		baseURL:     "http://localhost:11434",
		local:       true,
	}},
}

func (p AIProvider) info() (providerInfo, bool) {
	for _, e := range providers {
		if e.id == p {
			return e.info, true
		}
	}
	return providerInfo{}, false
}

// IsValid reports whether p is a known provider.
func (p AIProvider) IsValid() bool {
	_, ok := p.info()
	return ok
}

// RequiresAPIKey reports whether p refuses requests without a key.
func (p AIProvider) RequiresAPIKey() bool {
	i, _ := p.info()
	return i.needsKey
}

// IsLocal reports whether p runs on this machine.
func (p AIProvider) IsLocal() bool {
	i, _ := p.info()
	return i.local
}

func (p AIProvider) String() string {
	return string(p)
}

// Description is the label shown in provider pickers.
func (p AIProvider) Description() string {
	if i, ok := p.info(); ok {
		return i.description
	}
	return "Unknown"
}

// AllLLMProviders lists the known providers.
func AllLLMProviders() []AIProvider {
	out := make([]AIProvider, len(providers))
	for i, e := range providers {
		out[i] = e.id
	}
	return out
}

// DefaultLLMModels maps each provider to the model used when none is set.
func DefaultLLMModels() map[AIProvider]string {
	out := make(map[AIProvider]string, len(providers))
	for _, e := range providers {
		out[e.id] = e.info.model
	}
	return out
}

// DefaultLLMBaseURLs maps each provider to its usual endpoint.
func DefaultLLMBaseURLs() map[AIProvider]string {
	out := make(map[AIProvider]string, len(providers))
	for _, e := range providers {
		out[e.id] = e.info.baseURL
	}
	return out
}

// LLMSettings configures interpretation.
type LLMSettings struct {
	Provider    AIProvider
	Model       string
	BaseURL     string
	APIKey      string
	Temperature float64
	MaxTokens   int

	// TimeoutSeconds bounds one request.
	TimeoutSeconds int

	// RequestsPerMinute caps calls to the provider. Zero is unlimited.
	RequestsPerMinute int
}

// IsConfigured reports whether an interpretation can be attempted: the
// provider is known and, where one is needed, a key is present.
func (l LLMSettings) IsConfigured() bool {
	return l.Provider.IsValid() && (!l.Provider.RequiresAPIKey() || l.APIKey != "")
}

// CastSettings holds the defaults for `cast`.
type CastSettings struct {
	// Seed makes casts reproducible. Zero draws a fresh seed each time.
	Seed int64

	// Quiet turns off line by line narration.
	Quiet bool
}

// AppSettings is everything `settings show` prints.
type AppSettings struct {
	LLM  LLMSettings
	Cast CastSettings
}

// DefaultAppSettings is the state before any key is set. The API key is
// empty, so interpretation is unavailable until the user adds one.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Provider:          AIProviderOpenAI,
			Model:             DefaultLLMModel,
			BaseURL:           DefaultLLMBaseURL,
			Temperature:       DefaultLLMTemperature,
			MaxTokens:         DefaultLLMMaxTokens,
			TimeoutSeconds:    DefaultLLMTimeoutSecond,
			RequestsPerMinute: DefaultLLMRequestsPerMin,
		},
	}
}
