package settings

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suanming/internal/core/domain"
)

// MockSettingsService is a mock implementation of driving.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsService) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockSettingsService) Keys() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockSettingsService) Reset(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockSettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	args := m.Called(provider, model, apiKey)
	return args.Error(0)
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	args := m.Called()
	return args.Get(0).(domain.AppSettings)
}

func (m *MockSettingsService) ValidateLLMConfig(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func createTestSettings() *domain.AppSettings {
	s := domain.DefaultAppSettings()
	return &s
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedView returns a view that has processed its initial load.
func loadedView(t *testing.T, svc *MockSettingsService) *View {
	t.Helper()
	view := NewView(nil, svc)
	cmd := view.Init()
	require.NotNil(t, cmd)
	view.Update(cmd())
	require.NotNil(t, view.Settings())
	return view
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil)

	require.NotNil(t, view)
	assert.Nil(t, view.Settings())
	assert.Empty(t, view.Selected())
	assert.False(t, view.Editing())
}

func TestView_Init_LoadsSettings(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(createTestSettings(), nil)

	view := loadedView(t, svc)

	assert.Equal(t, domain.DefaultLLMModel, view.Settings().LLM.Model)
	assert.Equal(t, "llm.provider", view.Selected())
	svc.AssertExpectations(t)
}

func TestView_Init_NoService(t *testing.T) {
	view := NewView(nil, nil)

	view.Update(view.Init()())

	assert.ErrorIs(t, view.Err(), errNoService)
	assert.Contains(t, view.View(), "settings service not available")
}

func TestView_Init_Error(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(nil, errors.New("read failed"))
	view := NewView(nil, svc)

	view.Update(view.Init()())

	assert.EqualError(t, view.Err(), "read failed")
	assert.Nil(t, view.Settings())
}

func TestView_ListsEveryKey(t *testing.T) {
	svc := new(MockSettingsService)
	settings := createTestSettings()
	settings.Cast.Seed = 42
	settings.LLM.APIKey = "sk-0123456789abcd"
	svc.On("Get").Return(settings, nil)

	out := loadedView(t, svc).View()

	for _, want := range []string{
		"llm.provider",
		"openai (OpenAI-compatible (DeepSeek, OpenAI))",
		"deepseek-chat",
		"••••abcd",
		"llm.requests_per_minute",
		"cast.seed",
		"42",
		"enter edit · r reset",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "sk-0123456789abcd")
}

func TestView_ToggleQuiet(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(createTestSettings(), nil)
	svc.On("Set", "cast.quiet", "true").Return(nil)
	view := loadedView(t, svc)

	for view.Selected() != "cast.quiet" {
		view.Update(keyMsg("j"))
	}
	_, cmd := view.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	_, reload := view.Update(cmd())

	assert.NoError(t, view.Err())
	require.NotNil(t, reload)
	view.Update(reload())
	assert.Contains(t, view.View(), "Set cast.quiet = true")
	svc.AssertExpectations(t)
}

func TestView_EditModel(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(createTestSettings(), nil)
	svc.On("Set", "llm.model", "deepseek-reasoner").Return(nil)
	view := loadedView(t, svc)

	view.Update(keyMsg("j"))
	view.Update(keyMsg("enter"))
	require.True(t, view.Editing())
	assert.Contains(t, view.View(), "enter save")

	for range len("deepseek-chat") {
		view.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	for _, r := range "deepseek-reasoner" {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := view.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	view.Update(cmd())

	assert.False(t, view.Editing())
	svc.AssertExpectations(t)
}

func TestView_EditorEscCancels(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(createTestSettings(), nil)
	view := loadedView(t, svc)

	view.Update(keyMsg("j"))
	view.Update(keyMsg("enter"))
	_, cmd := view.Update(keyMsg("esc"))

	assert.Nil(t, cmd)
	assert.False(t, view.Editing())
	svc.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestView_SaveError(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(createTestSettings(), nil)
	svc.On("Set", "cast.quiet", "true").Return(errors.New("disk full"))
	view := loadedView(t, svc)

	for view.Selected() != "cast.quiet" {
		view.Update(keyMsg("j"))
	}
	_, cmd := view.Update(keyMsg("enter"))
	view.Update(cmd())

	assert.EqualError(t, view.Err(), "disk full")
	assert.Contains(t, view.View(), "disk full")
}

func TestView_CycleProvider(t *testing.T) {
	svc := new(MockSettingsService)
	settings := createTestSettings()
	settings.LLM.APIKey = "sk-test"
	svc.On("Get").Return(settings, nil)
	svc.On("SetLLMProvider", domain.AIProviderOllama, "qwen2.5", "sk-test").Return(nil)
	view := loadedView(t, svc)

	_, cmd := view.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	view.Update(cmd())

	assert.NoError(t, view.Err())
	svc.AssertExpectations(t)
}

func TestView_ResetKey(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(createTestSettings(), nil)
	svc.On("Reset", "llm.model").Return(nil)
	view := loadedView(t, svc)

	view.Update(keyMsg("j"))
	_, cmd := view.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	view.Update(cmd())

	assert.Equal(t, "llm.model", view.Selected())
	svc.AssertExpectations(t)
}

func TestView_EscReturnsToMenu(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(createTestSettings(), nil)
	view := loadedView(t, svc)

	_, cmd := view.Update(keyMsg("esc"))

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_Reset(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(createTestSettings(), nil)
	view := loadedView(t, svc)
	view.Update(keyMsg("j"))
	view.Update(keyMsg("enter"))

	view.Reset()

	assert.False(t, view.Editing())
	assert.NoError(t, view.Err())
	assert.Equal(t, "llm.model", view.Selected())
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		f    field
		want string
	}{
		{field{kind: kindSecret}, "(not set)"},
		{field{value: "short", kind: kindSecret}, "••••"},
		{field{value: "sk-0123456789abcd", kind: kindSecret}, "••••abcd"},
		{field{value: ""}, "(default)"},
		{field{value: "0", note: "random"}, "0 (random)"},
		{field{value: "20"}, "20"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, display(tt.f))
	}
}

func TestNextProvider(t *testing.T) {
	assert.Equal(t, domain.AIProviderOllama, nextProvider(domain.AIProviderOpenAI))
	assert.Equal(t, domain.AIProviderOpenAI, nextProvider(domain.AIProviderOllama))
	assert.Equal(t, domain.AIProviderOpenAI, nextProvider("unknown"))
}
