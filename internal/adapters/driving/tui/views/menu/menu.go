// Package menu is the TUI start screen.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/styles"
)

// Entry is one line of the menu. Choosing it emits Msg; a nil Msg quits.
type Entry struct {
	Hanzi   string
	English string
	Msg     tea.Msg
}

func open(v messages.ViewType) tea.Msg { return messages.ViewChanged{View: v} }

// Entries in display order. The digit shortcut is the 1-based position.
var Entries = []Entry{
	{"金钱起卦", "Cast coins", messages.CastRequested{}},
	{"手动输入", "Manual notation", open(messages.ViewManual)},
	{"六十四卦", "Hexagram table", open(messages.ViewTable)},
	{"设置", "Settings", open(messages.ViewSettings)},
	{"帮助", "Help", open(messages.ViewHelp)},
	{"退出", "Quit", nil},
}

// View lists Entries with a cursor.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	cursor int
	width  int
	height int
	ready  bool
}

// NewView creates the menu. Nil arguments use the defaults.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keys: km, width: 80, height: 24}
}

// Init implements the view contract; the menu has nothing to load.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update moves the cursor or fires an entry.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.cursor = max(v.cursor-1, 0)
		case key.Matches(msg, v.keys.Down):
			v.cursor = min(v.cursor+1, len(Entries)-1)
		case key.Matches(msg, v.keys.Select):
			return v, choose(Entries[v.cursor])
		case key.Matches(msg, v.keys.Cast):
			return v, choose(Entries[0])
		case key.Matches(msg, v.keys.Help):
			return v, choose(Entries[4])
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		default:
			if i, ok := digit(msg); ok {
				v.cursor = i
				return v, choose(Entries[i])
			}
		}
	}
	return v, nil
}

func choose(e Entry) tea.Cmd {
	if e.Msg == nil {
		return tea.Quit
	}
	return func() tea.Msg { return e.Msg }
}

func digit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	i := int(msg.Runes[0] - '1')
	return i, i >= 0 && i < len(Entries)
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("算命 suanming"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("周易金钱卦"))
	b.WriteString("\n\n")

	for i, e := range Entries {
		label := fmt.Sprintf("%d  %s  %s", i+1, padHanzi(e.Hanzi), e.English)
		if i == v.cursor {
			b.WriteString("> " + v.styles.Selected.Render(label) + "\n")
			continue
		}
		b.WriteString("  " + v.styles.Normal.Render(label) + "\n")
	}
	return b.String()
}

// padHanzi pads to four characters; each Hanzi is two columns wide.
func padHanzi(s string) string {
	return s + strings.Repeat("  ", max(4-len([]rune(s)), 0))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the cursor position.
func (v *View) Selected() int {
	return v.cursor
}
