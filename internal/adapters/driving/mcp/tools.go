package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/suanming/internal/adapters/driving/render"
	"github.com/custodia-labs/suanming/internal/core/domain"
)

// CastInput is the input schema for the cast_hexagram tool.
type CastInput struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for a reproducible cast"`
}

// ParseInput is the input schema for the parse_notation tool.
type ParseInput struct {
	Notation string `json:"notation" jsonschema:"six symbols bottom first: + young yang, - young yin, A old yin, B old yang"`
}

// ResolveInput is the input schema for the resolve_hexagram tool.
type ResolveInput struct {
	Code     string `json:"code" jsonschema:"six binary digits, bottom line first, 1 for yang"`
	Changing []int  `json:"changing,omitempty" jsonschema:"optional changing line numbers, 1 (bottom) to 6 (top)"`
}

// InterpretInput is the input schema for the interpret_hexagram tool.
type InterpretInput struct {
	Question string `json:"question" jsonschema:"what the cast is about"`
	Notation string `json:"notation,omitempty" jsonschema:"optional manual notation; a fresh coin cast is used when empty"`
	Seed     *int64 `json:"seed,omitempty" jsonschema:"optional seed for a reproducible cast"`
}

// TrigramOutput describes a resolved trigram.
type TrigramOutput struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Glyph   string `json:"glyph"`
	Element string `json:"element"`
}

// FigureOutput describes a resolved hexagram.
type FigureOutput struct {
	Code   string        `json:"code"`
	Number int           `json:"number"`
	Name   string        `json:"name"`
	Upper  TrigramOutput `json:"upper"`
	Lower  TrigramOutput `json:"lower"`
	Known  bool          `json:"known"`
}

// LineOutput describes one line of the primary hexagram.
type LineOutput struct {
	Number   int    `json:"number"`
	Label    string `json:"label"`
	Changing bool   `json:"changing"`
	Coins    string `json:"coins,omitempty"`
}

// ResultOutput is the output schema shared by the casting tools.
type ResultOutput struct {
	Method        string       `json:"method"`
	Notation      string       `json:"notation"`
	Primary       FigureOutput `json:"primary"`
	Changed       FigureOutput `json:"changed"`
	ChangingLines []int        `json:"changing_lines"`
	Lines         []LineOutput `json:"lines"`
	Text          string       `json:"text"`
}

// InterpretOutput is the output schema for the interpret_hexagram tool.
type InterpretOutput struct {
	Result         ResultOutput `json:"result"`
	Prompt         string       `json:"prompt"`
	Interpretation string       `json:"interpretation"`
	Model          string       `json:"model,omitempty"`
}

var plain = render.New(false)

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cast_hexagram",
		Description: "Cast a hexagram with the three-coin method",
	}, s.handleCast)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_notation",
		Description: "Resolve a hexagram from six-symbol manual notation such as +++AB-",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_hexagram",
		Description: "Resolve a binary hexagram code and optional changing lines",
	}, s.handleResolve)
}

func (s *Server) registerInterpretTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "interpret_hexagram",
		Description: "Cast or parse a hexagram and ask the configured language model to interpret it",
	}, s.handleInterpret)
}

// handleCast handles the cast_hexagram tool invocation.
func (s *Server) handleCast(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CastInput,
) (*mcp.CallToolResult, ResultOutput, error) {
	result := s.ports.Casting.Cast(domain.CastOptions{Quiet: true, Seed: input.Seed})
	return nil, toResultOutput(result), nil
}

// handleParse handles the parse_notation tool invocation.
func (s *Server) handleParse(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ResultOutput, error) {
	result, err := s.ports.Casting.Manual(strings.TrimSpace(input.Notation))
	if err != nil {
		return nil, ResultOutput{}, err
	}
	return nil, toResultOutput(result), nil
}

// handleResolve handles the resolve_hexagram tool invocation.
func (s *Server) handleResolve(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResultOutput, error) {
	code, err := domain.ParseCode(strings.TrimSpace(input.Code))
	if err != nil {
		return nil, ResultOutput{}, err
	}

	positions := make([]int, len(input.Changing))
	for i, n := range input.Changing {
		positions[i] = n - 1
	}
	changing, err := domain.NewChangingSet(positions...)
	if err != nil {
		return nil, ResultOutput{}, fmt.Errorf("changing lines must be 1-6: %w", err)
	}

	return nil, toResultOutput(s.ports.Casting.Resolve(code, changing)), nil
}

// handleInterpret handles the interpret_hexagram tool invocation.
func (s *Server) handleInterpret(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InterpretInput,
) (*mcp.CallToolResult, InterpretOutput, error) {
	if !s.ports.Interpretation.Available() {
		return nil, InterpretOutput{}, domain.ErrLLMUnavailable
	}

	result, err := s.castFor(input.Notation, input.Seed)
	if err != nil {
		return nil, InterpretOutput{}, err
	}

	reading, err := s.ports.Interpretation.Interpret(ctx, result, input.Question)
	if err != nil {
		return nil, InterpretOutput{}, err
	}

	return nil, InterpretOutput{
		Result:         toResultOutput(reading.Result),
		Prompt:         reading.Prompt,
		Interpretation: reading.Interpretation,
		Model:          reading.Model,
	}, nil
}

// castFor parses notation when given, otherwise casts quietly.
// Narration is always off; it would corrupt the stdio transport.
func (s *Server) castFor(notation string, seed *int64) (domain.CastingResult, error) {
	if n := strings.TrimSpace(notation); n != "" {
		return s.ports.Casting.Manual(n)
	}
	return s.ports.Casting.Cast(domain.CastOptions{Quiet: true, Seed: seed}), nil
}

func toResultOutput(result domain.CastingResult) ResultOutput {
	changing := make([]int, 0, result.Changing.Len())
	for _, p := range result.Changing.Positions() {
		changing = append(changing, p+1)
	}

	lines := make([]LineOutput, 0, domain.LineCount)
	for i, line := range result.Lines() {
		out := LineOutput{Number: i + 1, Label: line.Label(), Changing: line.Changing}
		if i < len(result.Draws) {
			out.Coins = result.Draws[i].CoinFaces()
		}
		lines = append(lines, out)
	}

	return ResultOutput{
		Method:        string(result.Method),
		Notation:      result.Notation(),
		Primary:       toFigureOutput(result.Primary),
		Changed:       toFigureOutput(result.Changed),
		ChangingLines: changing,
		Lines:         lines,
		Text:          plain.Result(result),
	}
}

func toFigureOutput(fig domain.Figure) FigureOutput {
	return FigureOutput{
		Code:   string(fig.Code),
		Number: fig.Number,
		Name:   fig.Name,
		Upper:  toTrigramOutput(fig.Upper),
		Lower:  toTrigramOutput(fig.Lower),
		Known:  fig.Known,
	}
}

func toTrigramOutput(t domain.Trigram) TrigramOutput {
	return TrigramOutput{
		Code:    string(t.Code),
		Name:    t.Name,
		Glyph:   t.Glyph,
		Element: t.Element,
	}
}
