package driven

import "github.com/custodia-labs/suanming/internal/core/domain"

// ReferenceTable provides the fixed hexagram and trigram reference data.
// Implementations are read-only and safe for concurrent use.
type ReferenceTable interface {
	// Hexagram returns the entry for a six-digit code.
	// The boolean is false when the code is absent from the table.
	Hexagram(code domain.HexagramCode) (domain.HexagramEntry, bool)

	// Trigram returns the entry for a three-digit code.
	// The boolean is false when the code is absent from the table.
	Trigram(code domain.TrigramCode) (domain.Trigram, bool)
}
