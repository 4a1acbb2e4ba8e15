package driving

import "github.com/custodia-labs/suanming/internal/core/domain"

// CastingService produces casting results from either front end.
// Both front ends return the same CastingResult shape.
type CastingService interface {
	// Cast tosses three coins six times, bottom line first.
	Cast(opts domain.CastOptions) domain.CastingResult

	// Manual parses a six-symbol notation such as "+++AB-".
	// Returns a *domain.ParseError on malformed input.
	Manual(notation string) (domain.CastingResult, error)

	// Resolve builds the result for an already known code and changing set.
	Resolve(code domain.HexagramCode, changing domain.ChangingSet) domain.CastingResult
}

// SymbolService resolves codes against the reference tables.
type SymbolService interface {
	// Hexagram resolves a code; unknown codes yield the unknown sentinel.
	Hexagram(code domain.HexagramCode) domain.Figure

	// Trigram resolves a three-digit code.
	Trigram(code domain.TrigramCode) domain.Trigram

	// Hexagrams lists all 64 figures in King Wen order, unknown codes last.
	Hexagrams() []domain.Figure

	// Trigrams lists all 8 trigrams in ascending code order.
	Trigrams() []domain.Trigram
}
