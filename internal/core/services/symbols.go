package services

import (
	"sort"

	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
	"github.com/custodia-labs/suanming/internal/core/ports/driving"
	"github.com/custodia-labs/suanming/internal/logger"
)

// Ensure SymbolService implements the interface.
var _ driving.SymbolService = (*SymbolService)(nil)

var symbolLog = logger.For("symbols")

// SymbolService resolves codes against a reference table.
// Lookups never fail: missing entries resolve to the unknown sentinels.
type SymbolService struct {
	table driven.ReferenceTable
}

// NewSymbolService creates a new symbol service.
func NewSymbolService(table driven.ReferenceTable) *SymbolService {
	return &SymbolService{table: table}
}

// Hexagram resolves a six-digit code and both of its trigrams.
func (s *SymbolService) Hexagram(code domain.HexagramCode) domain.Figure {
	fig := domain.Figure{
		Code: code,
		Name: domain.UnknownHexagramName,
	}
	if len(code) != domain.LineCount {
		symbolLog.Warn("hexagram code %q has %d digits", code, len(code))
		fig.Upper = domain.UnknownTrigram("")
		fig.Lower = domain.UnknownTrigram("")
		return fig
	}

	fig.Lower = s.Trigram(code.Lower())
	fig.Upper = s.Trigram(code.Upper())

	entry, ok := s.table.Hexagram(code)
	if !ok {
		symbolLog.Debug("hexagram %s not in table", code)
		return fig
	}
	fig.Number = entry.Number
	fig.Name = entry.Name
	fig.Known = true
	return fig
}

// Trigram resolves a three-digit code.
// The table covers all eight codes, so a miss means the table is damaged.
func (s *SymbolService) Trigram(code domain.TrigramCode) domain.Trigram {
	tri, ok := s.table.Trigram(code)
	if !ok {
		symbolLog.Warn("trigram %q missing from reference table", code)
		return domain.UnknownTrigram(code)
	}
	tri.Code = code
	return tri
}

// Hexagrams lists every figure in King Wen order. Codes missing from the
// table sort last in binary order.
func (s *SymbolService) Hexagrams() []domain.Figure {
	codes := domain.AllCodes()
	figures := make([]domain.Figure, 0, len(codes))
	for _, code := range codes {
		figures = append(figures, s.Hexagram(code))
	}

	sort.SliceStable(figures, func(i, j int) bool {
		a, b := figures[i], figures[j]
		if a.Known != b.Known {
			return a.Known
		}
		return a.Number < b.Number
	})
	return figures
}

// Trigrams lists the eight trigrams in ascending code order.
func (s *SymbolService) Trigrams() []domain.Trigram {
	codes := domain.AllTrigramCodes()
	trigrams := make([]domain.Trigram, 0, len(codes))
	for _, code := range codes {
		trigrams = append(trigrams, s.Trigram(code))
	}
	return trigrams
}
