package mcp

import (
	"context"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

// Two figures used across the tests: 水天需 and 雷天大壮.
var (
	xuFigure = domain.Figure{
		Code:   "111010",
		Number: 5,
		Name:   "水天需",
		Upper:  domain.Trigram{Code: "010", Name: "坎", Glyph: "☵", Element: "水"},
		Lower:  domain.Trigram{Code: "111", Name: "乾", Glyph: "☰", Element: "天"},
		Known:  true,
	}
	dazhuangFigure = domain.Figure{
		Code:   "111100",
		Number: 34,
		Name:   "雷天大壮",
		Upper:  domain.Trigram{Code: "100", Name: "震", Glyph: "☳", Element: "雷"},
		Lower:  domain.Trigram{Code: "111", Name: "乾", Glyph: "☰", Element: "天"},
		Known:  true,
	}
)

func xuResult(method domain.CastMethod) domain.CastingResult {
	return domain.CastingResult{
		Method:   method,
		Primary:  xuFigure,
		Changing: domain.ChangingSet(0).With(3).With(4),
		Changed:  dazhuangFigure,
	}
}

// mockCastingService is a mock implementation of driving.CastingService.
type mockCastingService struct {
	result domain.CastingResult
	err    error

	castOpts     []domain.CastOptions
	notation     string
	resolveCode  domain.HexagramCode
	resolveLines domain.ChangingSet
}

func (m *mockCastingService) Cast(opts domain.CastOptions) domain.CastingResult {
	m.castOpts = append(m.castOpts, opts)
	return m.result
}

func (m *mockCastingService) Manual(notation string) (domain.CastingResult, error) {
	m.notation = notation
	return m.result, m.err
}

func (m *mockCastingService) Resolve(code domain.HexagramCode, changing domain.ChangingSet) domain.CastingResult {
	m.resolveCode = code
	m.resolveLines = changing
	return m.result
}

// mockSymbolService is a mock implementation of driving.SymbolService.
type mockSymbolService struct {
	figures  []domain.Figure
	trigrams []domain.Trigram
}

func (m *mockSymbolService) Hexagram(code domain.HexagramCode) domain.Figure {
	for _, f := range m.figures {
		if f.Code == code {
			return f
		}
	}
	return domain.Figure{
		Code:  code,
		Name:  domain.UnknownHexagramName,
		Upper: domain.UnknownTrigram(code.Upper()),
		Lower: domain.UnknownTrigram(code.Lower()),
	}
}

func (m *mockSymbolService) Trigram(code domain.TrigramCode) domain.Trigram {
	for _, t := range m.trigrams {
		if t.Code == code {
			return t
		}
	}
	return domain.UnknownTrigram(code)
}

func (m *mockSymbolService) Hexagrams() []domain.Figure {
	return m.figures
}

func (m *mockSymbolService) Trigrams() []domain.Trigram {
	return m.trigrams
}

func newMockSymbols() *mockSymbolService {
	return &mockSymbolService{
		figures:  []domain.Figure{xuFigure, dazhuangFigure},
		trigrams: []domain.Trigram{xuFigure.Upper, dazhuangFigure.Upper, xuFigure.Lower},
	}
}

// mockInterpretationService is a mock implementation of driving.InterpretationService.
type mockInterpretationService struct {
	available bool
	reply     string
	err       error

	question string
}

func (m *mockInterpretationService) Prompt(_ domain.CastingResult, question string) (string, error) {
	return "prompt: " + question, m.err
}

func (m *mockInterpretationService) Interpret(
	_ context.Context,
	result domain.CastingResult,
	question string,
) (domain.Reading, error) {
	m.question = question
	if m.err != nil {
		return domain.Reading{}, m.err
	}
	return domain.Reading{
		Result:         result,
		Question:       question,
		Prompt:         "prompt: " + question,
		Interpretation: m.reply,
		Model:          "test-model",
	}, nil
}

func (m *mockInterpretationService) Available() bool {
	return m.available
}
