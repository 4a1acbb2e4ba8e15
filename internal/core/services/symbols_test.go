package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

// stubTable is a partial reference table.
type stubTable struct {
	hexagrams map[domain.HexagramCode]domain.HexagramEntry
	trigrams  map[domain.TrigramCode]domain.Trigram
}

func (s *stubTable) Hexagram(code domain.HexagramCode) (domain.HexagramEntry, bool) {
	e, ok := s.hexagrams[code]
	return e, ok
}

func (s *stubTable) Trigram(code domain.TrigramCode) (domain.Trigram, bool) {
	t, ok := s.trigrams[code]
	return t, ok
}

func newStubTable() *stubTable {
	return &stubTable{
		hexagrams: map[domain.HexagramCode]domain.HexagramEntry{
			"111111": {Number: 1, Name: "乾为天"},
			"000000": {Number: 2, Name: "坤为地"},
			"111010": {Number: 5, Name: "水天需"},
			"111100": {Number: 34, Name: "雷天大壮"},
		},
		trigrams: map[domain.TrigramCode]domain.Trigram{
			"111": {Name: "乾", Glyph: "☰", Element: "天"},
			"000": {Name: "坤", Glyph: "☷", Element: "地"},
			"100": {Name: "震", Glyph: "☳", Element: "雷"},
			"001": {Name: "艮", Glyph: "☶", Element: "山"},
			"010": {Name: "坎", Glyph: "☵", Element: "水"},
			"101": {Name: "离", Glyph: "☲", Element: "火"},
			"011": {Name: "巽", Glyph: "☴", Element: "风"},
			"110": {Name: "兑", Glyph: "☱", Element: "泽"},
		},
	}
}

func TestSymbolService_Hexagram_Known(t *testing.T) {
	service := NewSymbolService(newStubTable())

	fig := service.Hexagram("111010")

	assert.True(t, fig.Known)
	assert.Equal(t, 5, fig.Number)
	assert.Equal(t, "水天需", fig.Name)
	assert.Equal(t, domain.HexagramCode("111010"), fig.Code)
	assert.Equal(t, "乾", fig.Lower.Name)
	assert.Equal(t, domain.TrigramCode("111"), fig.Lower.Code)
	assert.Equal(t, "坎", fig.Upper.Name)
	assert.Equal(t, "☵", fig.Upper.Glyph)
	assert.Equal(t, "坎乾", fig.TrigramNames())
}

func TestSymbolService_Hexagram_UnknownStillResolvesTrigrams(t *testing.T) {
	service := NewSymbolService(newStubTable())

	fig := service.Hexagram("101010")

	assert.False(t, fig.Known)
	assert.Zero(t, fig.Number)
	assert.Equal(t, domain.UnknownHexagramName, fig.Name)
	assert.Equal(t, "离", fig.Lower.Name)
	assert.Equal(t, "坎", fig.Upper.Name)
}

func TestSymbolService_Hexagram_WrongLength(t *testing.T) {
	service := NewSymbolService(newStubTable())

	fig := service.Hexagram("1110")

	assert.False(t, fig.Known)
	assert.Equal(t, domain.UnknownHexagramName, fig.Name)
	assert.True(t, fig.Upper.IsUnknown())
	assert.True(t, fig.Lower.IsUnknown())
}

func TestSymbolService_Trigram_Missing(t *testing.T) {
	table := newStubTable()
	delete(table.trigrams, "010")
	service := NewSymbolService(table)

	tri := service.Trigram("010")

	assert.True(t, tri.IsUnknown())
	assert.Equal(t, domain.TrigramCode("010"), tri.Code)
	assert.Equal(t, domain.UnknownGlyph, tri.Glyph)

	fig := service.Hexagram("111010")
	assert.True(t, fig.Known)
	assert.True(t, fig.Upper.IsUnknown())
}

func TestSymbolService_Hexagrams_KnownFirstInSequence(t *testing.T) {
	service := NewSymbolService(newStubTable())

	figures := service.Hexagrams()

	require.Len(t, figures, 64)
	assert.Equal(t, 1, figures[0].Number)
	assert.Equal(t, 2, figures[1].Number)
	assert.Equal(t, 5, figures[2].Number)
	assert.Equal(t, 34, figures[3].Number)
	for _, fig := range figures[4:] {
		assert.False(t, fig.Known)
	}

	seen := make(map[domain.HexagramCode]bool)
	for _, fig := range figures {
		seen[fig.Code] = true
	}
	assert.Len(t, seen, 64)
}

func TestSymbolService_Trigrams(t *testing.T) {
	service := NewSymbolService(newStubTable())

	trigrams := service.Trigrams()

	require.Len(t, trigrams, 8)
	assert.Equal(t, "坤", trigrams[0].Name)
	assert.Equal(t, "乾", trigrams[7].Name)
	for _, tri := range trigrams {
		assert.False(t, tri.IsUnknown())
	}
}
