package services

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
	"github.com/custodia-labs/suanming/internal/core/ports/driving"
)

var _ driving.SettingsService = (*SettingsService)(nil)

//nolint:gosec // G101: key names, not credentials.
const (
	keyLLMProvider    = "llm.provider"
	keyLLMModel       = "llm.model"
	keyLLMBaseURL     = "llm.base_url"
	keyLLMAPIKey      = "llm.api_key"
	keyLLMTemperature = "llm.temperature"
	keyLLMMaxTokens   = "llm.max_tokens"
	keyLLMTimeout     = "llm.timeout_seconds"
	keyLLMRateLimit   = "llm.requests_per_minute"
	keyCastSeed       = "cast.seed"
	keyCastQuiet      = "cast.quiet"
)

// parser turns the text given to `settings set` into the stored value.
type parser func(key, value string) (any, error)

var parsers = map[string]parser{
	keyLLMProvider:    parseProvider,
	keyLLMModel:       parseText,
	keyLLMBaseURL:     parseText,
	keyLLMAPIKey:      parseText,
	keyLLMTemperature: parseTemperature,
	keyLLMMaxTokens:   parsePositive,
	keyLLMTimeout:     parsePositive,
	keyLLMRateLimit:   parseCount,
	keyCastSeed:       parseSeed,
	keyCastQuiet:      parseFlag,
}

func invalid(key, want string) error {
	return fmt.Errorf("%w: %s must be %s", domain.ErrInvalidInput, key, want)
}

func parseText(_, value string) (any, error) { return value, nil }

func parseProvider(_, value string) (any, error) {
	p := domain.AIProvider(value)
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, value)
	}
	return p.String(), nil
}

func parseTemperature(key, value string) (any, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 || f > 2 {
		return nil, invalid(key, "a number between 0 and 2")
	}
	return f, nil
}

func parsePositive(key, value string) (any, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return nil, invalid(key, "a positive integer")
	}
	return n, nil
}

func parseCount(key, value string) (any, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return nil, invalid(key, "zero (unlimited) or a positive integer")
	}
	return n, nil
}

func parseSeed(key, value string) (any, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, invalid(key, "an integer")
	}
	return n, nil
}

func parseFlag(key, value string) (any, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, invalid(key, "true or false")
	}
	return b, nil
}

// SettingsService reads and writes the llm.* and cast.* keys. Keys that
// are missing or hold the wrong type read as their defaults.
type SettingsService struct {
	store     driven.ConfigStore
	validator driven.AIConfigValidator
}

// NewSettingsService creates a SettingsService. validator may be nil, in
// which case ValidateLLMConfig always succeeds.
func NewSettingsService(store driven.ConfigStore, validator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{store: store, validator: validator}
}

// Get assembles the settings from the store over the defaults. Model and
// base URL default per provider.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	def := domain.DefaultAppSettings()
	provider := s.provider(def.LLM.Provider)

	return &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider:          provider,
			Model:             s.text(keyLLMModel, defaultModelFor(provider)),
			BaseURL:           s.text(keyLLMBaseURL, domain.DefaultLLMBaseURLs()[provider]),
			APIKey:            s.store.GetString(keyLLMAPIKey),
			Temperature:       s.float(keyLLMTemperature, def.LLM.Temperature),
			MaxTokens:         s.positive(keyLLMMaxTokens, def.LLM.MaxTokens),
			TimeoutSeconds:    s.positive(keyLLMTimeout, def.LLM.TimeoutSeconds),
			RequestsPerMinute: s.count(keyLLMRateLimit, def.LLM.RequestsPerMinute),
		},
		Cast: domain.CastSettings{
			Seed:  s.seed(keyCastSeed, def.Cast.Seed),
			Quiet: s.flag(keyCastQuiet, def.Cast.Quiet),
		},
	}, nil
}

// Save writes every key. An empty API key leaves the stored one alone.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	llm := settings.LLM
	values := []struct {
		key string
		val any
	}{
		{keyLLMProvider, llm.Provider.String()},
		{keyLLMModel, llm.Model},
		{keyLLMBaseURL, llm.BaseURL},
		{keyLLMAPIKey, llm.APIKey},
		{keyLLMTemperature, llm.Temperature},
		{keyLLMMaxTokens, llm.MaxTokens},
		{keyLLMTimeout, llm.TimeoutSeconds},
		{keyLLMRateLimit, llm.RequestsPerMinute},
		{keyCastSeed, settings.Cast.Seed},
		{keyCastQuiet, settings.Cast.Quiet},
	}
	for _, v := range values {
		if v.key == keyLLMAPIKey && llm.APIKey == "" {
			continue
		}
		if err := s.store.Set(v.key, v.val); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Keys lists the keys accepted by Set, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(parsers))
	for k := range parsers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	parse, ok := parsers[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	stored, err := parse(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	if err := s.store.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes key from the store so it reads as its default again.
func (s *SettingsService) Reset(key string) error {
	if _, ok := parsers[key]; !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := s.store.Unset(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// SetLLMProvider switches provider, resetting the base URL to the
// provider's. An empty model selects the provider default.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid LLM provider: %s", provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("API key required for %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	if model == "" {
		model = defaultModelFor(provider)
	}
	settings.LLM.Provider = provider
	settings.LLM.Model = model
	settings.LLM.BaseURL = domain.DefaultLLMBaseURLs()[provider]
	settings.LLM.APIKey = apiKey
	return s.Save(settings)
}

// GetDefaults returns the settings of a fresh install.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateLLMConfig pings the configured provider.
func (s *SettingsService) ValidateLLMConfig(ctx context.Context) error {
	if s.validator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if !settings.LLM.IsConfigured() {
		return fmt.Errorf("%w: provider %s is not configured", domain.ErrLLMUnavailable, settings.LLM.Provider)
	}
	return s.validator.ValidateLLM(ctx, &settings.LLM)
}

func defaultModelFor(provider domain.AIProvider) string {
	if model, ok := domain.DefaultLLMModels()[provider]; ok {
		return model
	}
	return domain.DefaultLLMModel
}

func (s *SettingsService) provider(def domain.AIProvider) domain.AIProvider {
	if p := domain.AIProvider(s.store.GetString(keyLLMProvider)); p.IsValid() {
		return p
	}
	return def
}

func (s *SettingsService) text(key, def string) string {
	if v := s.store.GetString(key); v != "" {
		return v
	}
	return def
}

// positive reads an int where zero means unset.
func (s *SettingsService) positive(key string, def int) int {
	if n := s.store.GetInt(key); n > 0 {
		return n
	}
	return def
}

// seed reads an integer where zero is a real value. A missing key or a
// value of the wrong type reads as def.
func (s *SettingsService) seed(key string, def int64) int64 {
	raw, ok := s.store.Get(key)
	if !ok {
		return def
	}
	n := s.store.GetInt64(key)
	if n == 0 && !isZeroNumber(raw) {
		return def
	}
	return n
}

// count reads a non-negative int where zero is a real value.
func (s *SettingsService) count(key string, def int) int {
	if n := s.seed(key, int64(def)); n >= 0 {
		return int(n)
	}
	return def
}

func (s *SettingsService) float(key string, def float64) float64 {
	raw, ok := s.store.Get(key)
	if !ok {
		return def
	}
	f := s.store.GetFloat(key)
	if f == 0 && !isZeroNumber(raw) {
		return def
	}
	return f
}

func (s *SettingsService) flag(key string, def bool) bool {
	if _, ok := s.store.Get(key); !ok {
		return def
	}
	return s.store.GetBool(key)
}

func isZeroNumber(raw any) bool {
	switch v := raw.(type) {
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	default:
		return false
	}
}
