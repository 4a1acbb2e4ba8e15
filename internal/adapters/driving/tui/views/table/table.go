// Package table shows the hexagram and trigram reference tables.
package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suanming/internal/adapters/driving/render"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suanming/internal/core/ports/driving"
)

// chrome is the rows taken by the title, rule and position line.
const chrome = 5

// View scrolls one table at a time; t switches between them.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	symbols  driving.SymbolService
	port     viewport.Model
	trigrams bool
	rows     int
	width    int
}

// NewView creates a table view backed by symbols.
func NewView(s *styles.Styles, symbols driving.SymbolService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	v := &View{
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		symbols: symbols,
		port:    viewport.New(80, 24-chrome),
		width:   80,
	}
	v.fill()
	return v
}

// fill renders the current table into the viewport and scrolls to the top.
func (v *View) fill() {
	v.rows = 0
	v.port.SetContent("")
	v.port.GotoTop()
	if v.symbols == nil {
		return
	}

	plain := render.New(false)
	text := plain.Hexagrams(v.symbols.Hexagrams())
	if v.trigrams {
		text = plain.Trigrams(v.symbols.Trigrams())
	}
	text = strings.TrimRight(text, "\n")
	v.rows = strings.Count(text, "\n") + 1
	v.port.SetContent(text)
}

// ShowingTrigrams reports whether the trigram table is shown.
func (v *View) ShowingTrigrams() bool {
	return v.trigrams
}

// Offset returns the index of the first visible row.
func (v *View) Offset() int {
	return v.port.YOffset
}

// Rows returns the number of rows in the current table.
func (v *View) Rows() int {
	return v.rows
}

// Init implements the view contract.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update scrolls, switches tables or leaves.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.port.LineUp(1)
		case key.Matches(msg, v.keys.Down):
			v.port.LineDown(1)
		case key.Matches(msg, v.keys.PageUp):
			v.port.ViewUp()
		case key.Matches(msg, v.keys.PageDown):
			v.port.ViewDown()
		case key.Matches(msg, v.keys.Top):
			v.port.GotoTop()
		case key.Matches(msg, v.keys.Bottom):
			v.port.GotoBottom()
		case key.Matches(msg, v.keys.Trigrams):
			v.trigrams = !v.trigrams
			v.fill()
		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

// View renders the visible part of the table.
func (v *View) View() string {
	var b strings.Builder

	title := "六十四卦"
	if v.trigrams {
		title = "八卦"
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(strings.Repeat("─", min(max(v.width-4, 1), 40))))
	b.WriteString("\n\n")

	if v.rows == 0 {
		b.WriteString(v.styles.Muted.Render("(No symbols loaded)"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.styles.Normal.Render(v.port.View()))
	b.WriteString("\n")
	if v.rows > v.port.Height {
		last := min(v.port.YOffset+v.port.Height, v.rows)
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %d-%d of %d", v.port.YOffset+1, last, v.rows)))
		b.WriteString("\n")
	}
	return b.String()
}

// SetDimensions resizes the viewport and keeps the offset in range.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.port.Width = width
	v.port.Height = max(height-chrome, 1)
	v.port.SetYOffset(v.port.YOffset)
}
