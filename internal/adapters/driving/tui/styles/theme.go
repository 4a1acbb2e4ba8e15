// Package styles holds the TUI palette and the lipgloss styles built from it.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

// Palette is the set of colours the styles draw from. The defaults are
// ink-and-paper tones.
type Palette struct {
	Accent  lipgloss.Color // titles and hexagram names
	Gold    lipgloss.Color // subtitles and selection
	Paper   lipgloss.Color // body text and yang lines
	Ink     lipgloss.Color // hints, yin lines and trigram rows
	Amber   lipgloss.Color // changing lines
	Jade    lipgloss.Color
	Alarm   lipgloss.Color
	Outline lipgloss.Color
}

// DefaultPalette returns the built-in colours.
func DefaultPalette() *Palette {
	return &Palette{
		Accent:  lipgloss.Color("#C0392B"),
		Gold:    lipgloss.Color("#D4A017"),
		Paper:   lipgloss.Color("#E8E2D0"),
		Ink:     lipgloss.Color("#7F7A6E"),
		Amber:   lipgloss.Color("#F39C12"),
		Jade:    lipgloss.Color("#7DAA6E"),
		Alarm:   lipgloss.Color("#E74C3C"),
		Outline: lipgloss.Color("#4A4639"),
	}
}

// Styles are the rendered styles shared by every view.
type Styles struct {
	palette *Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	// Hexagram lines.
	Line         lipgloss.Style
	ChangingLine lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Spinner    lipgloss.Style
}

// NewStyles builds styles from p. A nil palette uses DefaultPalette.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		palette:  p,
		Title:    fg(p.Accent).Bold(true),
		Subtitle: fg(p.Gold).Bold(true),
		Normal:   fg(p.Paper),
		Muted:    fg(p.Ink),
		Selected: fg(p.Gold).Bold(true),
		Help:     fg(p.Ink),
		Error:    fg(p.Alarm),
		Success:  fg(p.Jade),

		Line:         fg(p.Paper),
		ChangingLine: fg(p.Amber).Bold(true),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Outline).
			Padding(0, 1),
		StatusBar: fg(p.Ink).Padding(0, 1),
		Spinner:   fg(p.Amber),
	}
}

// DefaultStyles returns styles for the default palette.
func DefaultStyles() *Styles {
	return NewStyles(DefaultPalette())
}

// Palette returns the colours these styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}

// ForLine picks the style for one hexagram line.
func (s *Styles) ForLine(l domain.Line) lipgloss.Style {
	if l.Changing {
		return s.ChangingLine
	}
	return s.Line
}
