// Package manual is the notation entry view. The figure is drawn while
// the user types, top line first.
package manual

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suanming/internal/core/domain"
)

var symbolBars = map[rune]string{
	domain.SymbolYang:         "━━━━━━━",
	domain.SymbolYin:          "━━━ ━━━",
	domain.SymbolYangChanging: "━━━━━━━ ○",
	domain.SymbolYinChanging:  "━━━ ━━━ ×",
}

// View reads a six-symbol notation and submits it on enter.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	field  *input.Field
	err    error
	width  int
	height int
}

// NewView creates the view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		field:  input.NewNotationField(s),
		width:  80,
		height: 24,
	}
}

// Init focuses the input.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.field.Focus(), v.field.Init())
}

// Reset clears the input and any rejection.
func (v *View) Reset() {
	v.field.Reset()
	v.err = nil
}

// SetError shows why the last submission was rejected. It clears on the
// next keystroke.
func (v *View) SetError(err error) {
	v.err = err
}

// Err returns the shown rejection.
func (v *View) Err() error {
	return v.err
}

// Value returns the current input.
func (v *View) Value() string {
	return v.field.Value()
}

// Update submits on enter, leaves on esc and otherwise edits the input.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, v.keys.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case key.Matches(k, v.keys.Select):
			notation := strings.TrimSpace(v.field.Value())
			if notation == "" {
				return v, nil
			}
			return v, func() tea.Msg { return messages.NotationSubmitted{Notation: notation} }
		}
		v.err = nil
	}

	var cmd tea.Cmd
	v.field, cmd = v.field.Update(msg)
	return v, cmd
}

// View renders the legend, the input and the live figure.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("手动输入"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Six symbols, bottom line first:"))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("  +  少阳 young yang    -  少阴 young yin"))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("  A  老阴 old yin       B  老阳 old yang"))
	b.WriteString("\n\n")
	b.WriteString(v.field.View())
	b.WriteString("\n\n")

	value := strings.TrimSpace(v.field.Value())
	for _, row := range Sketch(value) {
		b.WriteString("  " + v.styles.Line.Render(row) + "\n")
	}
	if status := v.status(value); status != "" {
		b.WriteString("\n" + status + "\n")
	}
	return b.String()
}

func (v *View) status(value string) string {
	if v.err != nil {
		return v.styles.Error.Render(v.err.Error())
	}
	if value == "" {
		return ""
	}
	code, changing, err := domain.ParseNotation(value)
	if err != nil {
		return v.styles.Muted.Render(fmt.Sprintf("%d/%d", len([]rune(value)), domain.LineCount))
	}
	msg := "code " + string(code)
	if changing.Len() > 0 {
		positions := make([]string, 0, changing.Len())
		for _, p := range changing.Positions() {
			positions = append(positions, fmt.Sprint(p+1))
		}
		msg += ", changing " + strings.Join(positions, " ")
	}
	return v.styles.Success.Render(msg)
}

// Sketch draws the typed symbols as lines, top first. An unknown symbol
// is drawn as "?".
func Sketch(notation string) []string {
	runes := []rune(notation)
	rows := make([]string, 0, len(runes))
	for i := len(runes) - 1; i >= 0; i-- {
		bar, ok := symbolBars[runes[i]]
		if !ok {
			bar = "   ?"
		}
		rows = append(rows, bar)
	}
	return rows
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.field.SetWidth(width / 2)
}
