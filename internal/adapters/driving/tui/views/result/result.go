// Package result provides the casting result view for the TUI.
package result

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suanming/internal/adapters/driving/render"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suanming/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suanming/internal/core/domain"
)

const (
	yangBar = "━━━━━━━"
	yinBar  = "━━━ ━━━"
)

// View shows a casting result and, on request, its interpretation.
type View struct {
	styles    *styles.Styles
	keys      *keymap.KeyMap
	question  *input.Field
	plain     *render.Renderer
	canAsk    bool
	asking    bool
	waiting   bool
	result    *domain.CastingResult
	reading   *domain.Reading
	err       error
	width     int
	height    int
	scrollTop int
}

// NewView creates a result view. canAsk enables the interpret key.
func NewView(s *styles.Styles, canAsk bool) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	q := input.NewQuestionField(s)
	q.Blur()
	return &View{
		styles:   s,
		keys:     keymap.DefaultKeyMap(),
		question: q,
		plain:    render.New(false),
		canAsk:   canAsk,
		width:    80,
		height:   24,
	}
}

// SetResult shows result and clears any previous reading.
func (v *View) SetResult(result domain.CastingResult) {
	v.result = &result
	v.reading = nil
	v.err = nil
	v.asking = false
	v.waiting = false
	v.scrollTop = 0
	v.question.Reset()
	v.question.Blur()
}

// Result returns the shown result, nil before the first cast.
func (v *View) Result() *domain.CastingResult {
	return v.result
}

// Reading returns the interpretation, nil until one arrives.
func (v *View) Reading() *domain.Reading {
	return v.reading
}

// Asking reports whether the question input is active.
func (v *View) Asking() bool {
	return v.asking
}

// Waiting reports whether an interpretation is in flight.
func (v *View) Waiting() bool {
	return v.waiting
}

// Err returns the last interpretation error.
func (v *View) Err() error {
	return v.err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the result view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.InterpretCompleted:
		v.waiting = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.reading = &msg.Reading
		return v, nil

	case tea.KeyMsg:
		if v.asking {
			return v.updateAsking(msg)
		}
		return v.updateViewing(msg)
	}

	return v, nil
}

func (v *View) updateAsking(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.asking = false
		v.question.Blur()
		return v, nil
	case tea.KeyEnter:
		q := strings.TrimSpace(v.question.Value())
		if q == "" {
			return v, nil
		}
		v.asking = false
		v.waiting = true
		v.err = nil
		v.question.Blur()
		return v, func() tea.Msg {
			return messages.InterpretRequested{Question: q}
		}
	}

	var cmd tea.Cmd
	v.question, cmd = v.question.Update(msg)
	return v, cmd
}

func (v *View) updateViewing(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	case key.Matches(msg, v.keys.Cast):
		return v, func() tea.Msg { return messages.CastRequested{} }
	case key.Matches(msg, v.keys.Interpret):
		if !v.canAsk || v.waiting || v.result == nil {
			return v, nil
		}
		v.asking = true
		return v, v.question.Focus()
	case key.Matches(msg, v.keys.Up):
		v.scrollTop = max(v.scrollTop-1, 0)
	case key.Matches(msg, v.keys.Down):
		v.scrollTop++
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	}
	return v, nil
}

// View renders the result view.
func (v *View) View() string {
	if v.result == nil {
		return v.styles.Muted.Render("No cast yet.") + "\n\n" + v.renderHelp()
	}

	var b strings.Builder
	b.WriteString(v.renderResult())

	switch {
	case v.asking:
		b.WriteString("\n")
		b.WriteString(v.question.View())
		b.WriteString("\n")
	case v.waiting:
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("正在解读..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	case v.reading != nil:
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("AI解读"))
		b.WriteString("\n")
		b.WriteString(v.renderReading())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderResult() string {
	r := v.result
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("起卦结果"))
	b.WriteString("\n\n")

	if len(r.Draws) > 0 {
		for _, d := range r.Draws {
			style := v.styles.Muted
			if d.Line.Changing {
				style = v.styles.ChangingLine
			}
			b.WriteString(style.Render(v.plain.LineDraw(d)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	primary := v.renderFigure("主卦", r.Primary, r.Lines())
	if !r.HasChanges() {
		b.WriteString(primary)
		b.WriteString("\n")
		return b.String()
	}

	var changed [domain.LineCount]domain.Line
	for i := range changed {
		changed[i] = domain.Line{Value: r.Changed.Code.Value(i)}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		primary, "    ", v.renderFigure("变卦", r.Changed, changed)))
	b.WriteString("\n\n")

	positions := make([]string, 0, r.Changing.Len())
	for _, p := range r.Changing.Positions() {
		positions = append(positions, fmt.Sprintf("第%d爻", p+1))
	}
	b.WriteString(v.styles.Normal.Render("变爻: " + strings.Join(positions, " ")))
	b.WriteString("\n")
	return b.String()
}

func (v *View) renderFigure(label string, fig domain.Figure, lines [domain.LineCount]domain.Line) string {
	var b strings.Builder

	name := v.styles.Subtitle.Render(fig.Name)
	if !fig.Known {
		name = v.styles.Error.Render(fig.Name)
	}
	fmt.Fprintf(&b, "%s: %s (%s)\n", label, name, fig.TrigramNames())

	for i := domain.LineCount - 1; i >= 0; i-- {
		bar := yinBar
		if lines[i].Value == domain.Yang {
			bar = yangBar
		}
		b.WriteString("  " + v.styles.ForLine(lines[i]).Render(bar) + "\n")
	}

	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("上 %s(%s) %s", fig.Upper.Name, fig.Upper.Element, fig.Upper.Glyph)))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("下 %s(%s) %s", fig.Lower.Name, fig.Lower.Element, fig.Lower.Glyph)))
	return b.String()
}

func (v *View) renderReading() string {
	width := v.width - 4
	if width < 20 {
		width = 20
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(v.reading.Interpretation)
	lines := strings.Split(wrapped, "\n")

	visible := v.height - 24
	if visible < 5 {
		visible = 5
	}
	maxTop := len(lines) - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if v.scrollTop > maxTop {
		v.scrollTop = maxTop
	}
	end := v.scrollTop + visible
	if end > len(lines) {
		end = len(lines)
	}
	return v.styles.Normal.Render(strings.Join(lines[v.scrollTop:end], "\n"))
}

func (v *View) renderHelp() string {
	if v.asking {
		return v.styles.Help.Render("[enter] ask  [esc] cancel")
	}
	help := "[c] cast again  [esc] menu  [q] quit"
	if v.canAsk {
		help = "[c] cast again  [i] interpret  [j/k] scroll  [esc] menu  [q] quit"
	}
	return v.styles.Help.Render(help)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.question.SetWidth(width / 2)
}
