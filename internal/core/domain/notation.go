package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Manual notation symbols.
const (
	// SymbolYang is a stable yang line.
	SymbolYang = '+'
	// SymbolYin is a stable yin line.
	SymbolYin = '-'
	// SymbolYinChanging is a yin line about to become yang.
	SymbolYinChanging = 'A'
	// SymbolYangChanging is a yang line about to become yin.
	SymbolYangChanging = 'B'
)

// ParseError reports why a manual notation string was rejected.
// Position is -1 for length errors.
type ParseError struct {
	Input    string
	Position int
	Char     rune
	Length   int
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("notation %q must be exactly %d characters, got %d", e.Input, LineCount, e.Length)
	}
	return fmt.Sprintf("notation %q has invalid character %q at position %d (use +, -, A or B)",
		e.Input, e.Char, e.Position)
}

// Unwrap lets callers match ErrInvalidNotation with errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrInvalidNotation
}

// ParseNotation decodes a six-symbol manual notation, bottom line first.
//
//	+  yang
//	-  yin
//	A  yin, changing to yang
//	B  yang, changing to yin
func ParseNotation(input string) (HexagramCode, ChangingSet, error) {
	n := utf8.RuneCountInString(input)
	if n != LineCount {
		return "", 0, &ParseError{Input: input, Position: -1, Length: n}
	}

	var lines [LineCount]Line
	var changing ChangingSet
	pos := 0
	for _, r := range input {
		line, ok := lineForSymbol(r)
		if !ok {
			return "", 0, &ParseError{Input: input, Position: pos, Char: r, Length: n}
		}
		lines[pos] = line
		if line.Changing {
			changing = changing.With(pos)
		}
		pos++
	}

	return CodeFromLines(lines), changing, nil
}

func lineForSymbol(r rune) (Line, bool) {
	switch r {
	case SymbolYang:
		return Line{Value: Yang}, true
	case SymbolYin:
		return Line{Value: Yin}, true
	case SymbolYinChanging:
		return Line{Value: Yin, Changing: true}, true
	case SymbolYangChanging:
		return Line{Value: Yang, Changing: true}, true
	default:
		return Line{}, false
	}
}

// FormatNotation encodes a code and changing set back into manual notation.
// ParseNotation(FormatNotation(c, s)) returns (c, s) for every valid code.
func FormatNotation(code HexagramCode, changing ChangingSet) string {
	var b strings.Builder
	b.Grow(LineCount)
	for i := 0; i < len(code); i++ {
		yang := code.Value(i) == Yang
		switch {
		case yang && changing.Has(i):
			b.WriteRune(SymbolYangChanging)
		case yang:
			b.WriteRune(SymbolYang)
		case changing.Has(i):
			b.WriteRune(SymbolYinChanging)
		default:
			b.WriteRune(SymbolYin)
		}
	}
	return b.String()
}
