// Package settings is the TUI settings editor: one row per settings key.
package settings

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driving"
)

var errNoService = errors.New("settings service not available")

// kind says what enter does on a row.
type kind int

const (
	kindText   kind = iota // open the editor
	kindSecret             // open the editor, masked
	kindToggle             // flip a bool
	kindCycle              // move to the next provider
)

type field struct {
	key   string
	label string
	value string
	note  string
	kind  kind
}

var resetKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset"))

// View lists every setting. Enter edits, toggles or cycles the selected
// row; r resets it to the default.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	svc    driving.SettingsService

	settings *domain.AppSettings
	fields   []field
	cursor   int

	editing bool
	input   textinput.Model

	err    error
	notice string

	width  int
	height int
}

// NewView creates the settings view. svc may be nil; the view then only
// reports that settings are unavailable.
func NewView(s *styles.Styles, svc driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	in := textinput.New()
	in.CharLimit = 256
	return &View{styles: s, keys: keymap.DefaultKeyMap(), svc: svc, input: in}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	svc := v.svc
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: errNoService}
		}
		s, err := svc.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// Settings returns the loaded settings, nil until loaded.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last load or save error.
func (v *View) Err() error {
	return v.err
}

// Editing reports whether the value editor is open.
func (v *View) Editing() bool {
	return v.editing
}

// Selected returns the key under the cursor, empty before load.
func (v *View) Selected() string {
	if v.cursor >= len(v.fields) {
		return ""
	}
	return v.fields[v.cursor].key
}

// Update handles load results, save results and keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.SettingsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.settings = msg.Settings
			v.fields = fieldsOf(msg.Settings)
			v.cursor = min(v.cursor, max(len(v.fields)-1, 0))
		}

	case messages.SettingsSaved:
		v.err = msg.Err
		if msg.Err != nil {
			v.notice = ""
			return v, nil
		}
		return v, v.Init()

	case tea.KeyMsg:
		if v.editing {
			return v.updateEditor(msg)
		}
		return v.updateList(msg)
	}
	return v, nil
}

func (v *View) updateList(msg tea.KeyMsg) (*View, tea.Cmd) {
	if key.Matches(msg, v.keys.Back) {
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	}
	if len(v.fields) == 0 {
		return v, nil
	}

	f := v.fields[v.cursor]
	switch {
	case key.Matches(msg, v.keys.Up):
		v.cursor = max(v.cursor-1, 0)
	case key.Matches(msg, v.keys.Down):
		v.cursor = min(v.cursor+1, len(v.fields)-1)
	case key.Matches(msg, resetKey):
		v.notice = "Reset " + f.key
		return v, v.save(func(svc driving.SettingsService) error { return svc.Reset(f.key) })
	case key.Matches(msg, v.keys.Select):
		return v.activate(f)
	}
	return v, nil
}

func (v *View) activate(f field) (*View, tea.Cmd) {
	v.err = nil
	switch f.kind {
	case kindToggle:
		next := strconv.FormatBool(f.value != "true")
		v.notice = "Set " + f.key + " = " + next
		return v, v.set(f.key, next)

	case kindCycle:
		next := nextProvider(v.settings.LLM.Provider)
		apiKey := v.settings.LLM.APIKey
		v.notice = "Switched to " + next.Description()
		return v, v.save(func(svc driving.SettingsService) error {
			return svc.SetLLMProvider(next, domain.DefaultLLMModels()[next], apiKey)
		})

	default:
		v.editing = true
		v.input.Placeholder = f.label
		v.input.EchoMode = textinput.EchoNormal
		v.input.SetValue(f.value)
		if f.kind == kindSecret {
			v.input.EchoMode = textinput.EchoPassword
			v.input.SetValue("")
		}
		v.input.CursorEnd()
		return v, v.input.Focus()
	}
}

func (v *View) updateEditor(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.closeEditor()
		return v, nil
	case key.Matches(msg, v.keys.Select):
		f := v.fields[v.cursor]
		value := strings.TrimSpace(v.input.Value())
		v.closeEditor()
		v.notice = "Set " + f.key
		return v, v.set(f.key, value)
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) closeEditor() {
	v.editing = false
	v.input.Blur()
	v.input.SetValue("")
}

func (v *View) set(k, value string) tea.Cmd {
	return v.save(func(svc driving.SettingsService) error { return svc.Set(k, value) })
}

func (v *View) save(apply func(driving.SettingsService) error) tea.Cmd {
	svc := v.svc
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Err: errNoService}
		}
		return messages.SettingsSaved{Err: apply(svc)}
	}
}

// View renders the list, or the editor for the selected row.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("设置 Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}
	if v.settings == nil {
		if v.err == nil {
			b.WriteString(v.styles.Muted.Render("Loading settings..."))
			b.WriteString("\n")
		}
		return b.String()
	}

	width := 0
	for _, f := range v.fields {
		width = max(width, len(f.key))
	}
	for i, f := range v.fields {
		row := f.key + strings.Repeat(" ", width-len(f.key)+2) + display(f)
		if i == v.cursor {
			b.WriteString("> " + v.styles.Selected.Render(row) + "\n")
		} else {
			b.WriteString("  " + v.styles.Normal.Render(row) + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case v.editing:
		b.WriteString(v.styles.Subtitle.Render(v.fields[v.cursor].label))
		b.WriteString("\n")
		b.WriteString(v.styles.InputField.Render(v.input.View()))
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("enter save · esc cancel"))
	case v.notice != "" && v.err == nil:
		b.WriteString(v.styles.Success.Render(v.notice + ". LLM changes apply on next start."))
	default:
		b.WriteString(v.styles.Help.Render("enter edit · r reset · esc back"))
	}
	return b.String()
}

func display(f field) string {
	switch {
	case f.kind == kindSecret && f.value == "":
		return "(not set)"
	case f.kind == kindSecret && len(f.value) <= 8:
		return "••••"
	case f.kind == kindSecret:
		return "••••" + f.value[len(f.value)-4:]
	case f.value == "":
		return "(default)"
	case f.note != "":
		return f.value + " (" + f.note + ")"
	}
	return f.value
}

// fieldsOf lays out s in the order the rows are shown.
func fieldsOf(s *domain.AppSettings) []field {
	llm := s.LLM
	when := func(cond bool, note string) string {
		if cond {
			return note
		}
		return ""
	}

	return []field{
		{"llm.provider", "Provider", llm.Provider.String(), llm.Provider.Description(), kindCycle},
		{"llm.model", "Model", llm.Model, "", kindText},
		{"llm.base_url", "Base URL", llm.BaseURL, "", kindText},
		{"llm.api_key", "API key", llm.APIKey, "", kindSecret},
		{"llm.temperature", "Temperature (0-2)", strconv.FormatFloat(llm.Temperature, 'f', -1, 64), "", kindText},
		{"llm.max_tokens", "Max tokens", strconv.Itoa(llm.MaxTokens), "", kindText},
		{"llm.timeout_seconds", "Timeout in seconds", strconv.Itoa(llm.TimeoutSeconds), "", kindText},
		{"llm.requests_per_minute", "Requests per minute, 0 for unlimited",
			strconv.Itoa(llm.RequestsPerMinute), when(llm.RequestsPerMinute == 0, "unlimited"), kindText},
		{"cast.quiet", "Quiet", strconv.FormatBool(s.Cast.Quiet), "", kindToggle},
		{"cast.seed", "Seed, 0 for random", strconv.FormatInt(s.Cast.Seed, 10), when(s.Cast.Seed == 0, "random"), kindText},
	}
}

func nextProvider(p domain.AIProvider) domain.AIProvider {
	all := domain.AllLLMProviders()
	for i, q := range all {
		if q == p {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.Width = max(width/2, 20)
}

// Reset closes the editor and clears messages. The cursor is kept.
func (v *View) Reset() {
	v.closeEditor()
	v.err = nil
	v.notice = ""
}
