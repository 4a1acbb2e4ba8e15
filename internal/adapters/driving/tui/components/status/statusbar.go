// Package status renders the one-line bar under every view.
package status

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/styles"
)

// State is what the left side of the bar reports.
type State string

const (
	StateReady State = "ready"
	StateNote  State = "note"
	StateBusy  State = "busy"
	StateError State = "error"
)

// Bar shows a state on the left and the active view's key hints on the right.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	spinner spinner.Model

	view    messages.ViewType
	state   State
	message string
	width   int
}

// NewBar creates a bar. Nil arguments fall back to the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Spinner

	return &Bar{
		styles:  s,
		keymap:  km,
		spinner: sp,
		view:    messages.ViewMenu,
		state:   StateReady,
		width:   80,
	}
}

// Note shows msg until the next state change.
func (b *Bar) Note(msg string) {
	b.state, b.message = StateNote, msg
}

// Fail shows err.
func (b *Bar) Fail(err error) {
	b.state, b.message = StateError, err.Error()
}

// Busy starts the spinner next to msg. The returned command drives it.
func (b *Bar) Busy(msg string) tea.Cmd {
	b.state, b.message = StateBusy, msg
	return b.spinner.Tick
}

// Done leaves the busy state, keeping msg as a note. An empty msg
// clears the bar.
func (b *Bar) Done(msg string) {
	if msg == "" {
		b.Clear()
		return
	}
	b.Note(msg)
}

// Update advances the spinner while busy. Ticks arriving after Done are
// dropped, which stops the animation.
func (b *Bar) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || b.state != StateBusy {
		return nil
	}
	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(tick)
	return cmd
}

// View renders the bar padded to the current width.
func (b *Bar) View() string {
	left := b.renderState()
	right := b.renderHints()

	gap := max(b.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return b.styles.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) renderState() string {
	switch b.state {
	case StateBusy:
		return b.spinner.View() + " " + b.styles.Muted.Render(b.message+"...")
	case StateError:
		return b.styles.Error.Render("Error: " + b.message)
	case StateNote:
		return b.styles.Normal.Render(b.message)
	default:
		return b.styles.Muted.Render(b.view.String())
	}
}

func (b *Bar) renderHints() string {
	bindings := b.Bindings()
	hints := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return b.styles.Help.Render(strings.Join(hints, " · "))
}

// Bindings returns the hints for the active view.
func (b *Bar) Bindings() []key.Binding {
	return b.keymap.ForView(b.view)
}

// SetView switches the hints to view.
func (b *Bar) SetView(view messages.ViewType) {
	b.view = view
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// Message returns the text shown with the state.
func (b *Bar) Message() string {
	return b.message
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear returns to the ready state.
func (b *Bar) Clear() {
	b.state, b.message = StateReady, ""
}
