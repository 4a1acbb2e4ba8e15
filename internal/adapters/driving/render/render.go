// Package render formats casting results for the terminal.
//
// Plain output reproduces the classic result block line for line. Pretty
// output adds colour and a drawing of the lines, top line first.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
)

// Line drawings.
const (
	yangBar = "━━━━━━━"
	yinBar  = "━━━ ━━━"

	// Old yang is marked ○, old yin ×.
	oldYangMark = "○"
	oldYinMark  = "×"
)

const header = "====== 起卦结果 ======"

// Renderer handles output formatting.
type Renderer struct {
	pretty bool
}

// New creates a new renderer.
func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Pretty reports whether the renderer adds colour and figures.
func (r *Renderer) Pretty() bool {
	return r.pretty
}

// LineDraw formats one coin draw, e.g. "第1爻: 硬币结果 正正反 -> 七 少阳".
func (r *Renderer) LineDraw(d domain.LineDraw) string {
	label := d.Line.Label()
	if r.pretty && d.Line.Changing {
		label = color.YellowString(label)
	}
	return fmt.Sprintf("第%d爻: 硬币结果 %s -> %s", d.Position+1, d.CoinFaces(), label)
}

// Result formats the result block. The changed hexagram and changing
// positions are shown only when some line changes.
func (r *Renderer) Result(result domain.CastingResult) string {
	var sb strings.Builder

	sb.WriteString(r.heading(header) + "\n")
	r.writeFigure(&sb, "主卦", result.Primary)

	if r.pretty {
		sb.WriteString("\n")
		sb.WriteString(r.Lines(result.Lines()))
	}

	if result.HasChanges() {
		sb.WriteString("\n")
		r.writeFigure(&sb, "变卦", result.Changed)

		sb.WriteString("\n变爻位置:\n")
		for _, p := range result.Changing.Positions() {
			fmt.Fprintf(&sb, "第%d爻\n", p+1)
		}
	}

	return sb.String()
}

func (r *Renderer) writeFigure(sb *strings.Builder, label string, fig domain.Figure) {
	name := fig.Name
	if r.pretty {
		if fig.Known {
			name = color.GreenString(name)
		} else {
			name = color.RedString(name)
		}
	}
	fmt.Fprintf(sb, "%s: %s (%s)\n", label, name, fig.TrigramNames())
	fmt.Fprintf(sb, "上卦: %s\n", trigramLine(fig.Upper))
	fmt.Fprintf(sb, "下卦: %s\n", trigramLine(fig.Lower))
}

func trigramLine(t domain.Trigram) string {
	return fmt.Sprintf("%s(%s) %s", t.Name, t.Element, t.Glyph)
}

// Lines draws six lines top first, marking changing lines.
func (r *Renderer) Lines(lines [domain.LineCount]domain.Line) string {
	var sb strings.Builder
	for i := domain.LineCount - 1; i >= 0; i-- {
		line := lines[i]
		bar := yinBar
		if line.Value == domain.Yang {
			bar = yangBar
		}
		mark := " "
		if line.Changing {
			mark = oldYinMark
			if line.Value == domain.Yang {
				mark = oldYangMark
			}
		}
		if r.pretty && line.Changing {
			bar = color.YellowString(bar)
		}
		fmt.Fprintf(&sb, "  %s %s\n", bar, mark)
	}
	return sb.String()
}

// Reading formats an interpretation below its result block.
func (r *Renderer) Reading(reading domain.Reading) string {
	var sb strings.Builder
	sb.WriteString(r.Result(reading.Result))
	fmt.Fprintf(&sb, "\n%s\n", r.heading("====== AI解读 ======"))
	if reading.Model != "" && r.pretty {
		sb.WriteString(color.HiBlackString("模型: "+reading.Model) + "\n")
	}
	sb.WriteString(reading.Interpretation)
	sb.WriteString("\n")
	return sb.String()
}

// Hexagrams formats the hexagram table, one figure per row.
func (r *Renderer) Hexagrams(figures []domain.Figure) string {
	var sb strings.Builder
	if r.pretty {
		sb.WriteString(color.CyanString("六十四卦") + "\n")
		sb.WriteString(strings.Repeat("─", 40) + "\n")
	}
	for _, fig := range figures {
		number := "--"
		if fig.Known {
			number = fmt.Sprintf("%2d", fig.Number)
		}
		fmt.Fprintf(&sb, "%s  %s  %s%s  %s\n",
			number, fig.Code, fig.Upper.Glyph, fig.Lower.Glyph, fig.Name)
	}
	return sb.String()
}

// Trigrams formats the trigram table.
func (r *Renderer) Trigrams(trigrams []domain.Trigram) string {
	var sb strings.Builder
	if r.pretty {
		sb.WriteString(color.CyanString("八卦") + "\n")
		sb.WriteString(strings.Repeat("─", 20) + "\n")
	}
	for _, t := range trigrams {
		fmt.Fprintf(&sb, "%s  %s\n", t.Code, trigramLine(t))
	}
	return sb.String()
}

func (r *Renderer) heading(s string) string {
	if r.pretty {
		return color.CyanString(s)
	}
	return s
}

// Ensure Narrator implements the interface.
var _ driven.Narrator = (*Narrator)(nil)

// Narrator writes each line draw to w as it happens.
type Narrator struct {
	w io.Writer
	r *Renderer
}

// NewNarrator creates a narrator writing through r.
func NewNarrator(w io.Writer, r *Renderer) *Narrator {
	return &Narrator{w: w, r: r}
}

// LineCast writes one narration line.
func (n *Narrator) LineCast(d domain.LineDraw) {
	fmt.Fprintln(n.w, n.r.LineDraw(d))
}
