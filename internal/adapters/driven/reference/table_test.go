package reference

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

func TestDefault_CoversAllCodes(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	hexagrams, trigrams := table.Len()
	assert.Equal(t, 64, hexagrams)
	assert.Equal(t, 8, trigrams)

	for _, code := range domain.AllCodes() {
		entry, ok := table.Hexagram(code)
		require.True(t, ok, code)
		assert.NotEmpty(t, entry.Name)
	}
	for _, code := range domain.AllTrigramCodes() {
		tri, ok := table.Trigram(code)
		require.True(t, ok, code)
		assert.Equal(t, code, tri.Code)
		assert.NotEmpty(t, tri.Name)
		assert.NotEmpty(t, tri.Glyph)
		assert.NotEmpty(t, tri.Element)
	}
}

func TestDefault_ParsedOnce(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestDefault_KnownEntries(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	tests := []struct {
		code   domain.HexagramCode
		number int
		name   string
	}{
		{"111111", 1, "乾为天"},
		{"000000", 2, "坤为地"},
		{"111010", 5, "水天需"},
		{"111100", 34, "雷天大壮"},
		{"101010", 63, "水火既济"},
		{"010101", 64, "火水未济"},
		{"000011", 20, "风地观"},
		{"011000", 46, "地风升"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			entry, ok := table.Hexagram(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.number, entry.Number)
			assert.Equal(t, tt.name, entry.Name)
		})
	}
}

// Codes are bottom line first: 巽 has its broken line at the bottom and
// 兑 at the top.
func TestDefault_TrigramCodesBottomFirst(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	want := map[domain.TrigramCode]string{
		"111": "乾", "000": "坤", "100": "震", "001": "艮",
		"010": "坎", "101": "离", "011": "巽", "110": "兑",
	}
	for code, name := range want {
		tri, ok := table.Trigram(code)
		require.True(t, ok, code)
		assert.Equal(t, name, tri.Name, "trigram %s", code)
	}
}

// Hexagram names begin with the upper element then the lower element,
// or "<name>为<element>" when both halves are the same trigram.
func TestDefault_NamesAgreeWithTrigrams(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	for _, code := range domain.AllCodes() {
		entry, _ := table.Hexagram(code)
		upper, _ := table.Trigram(code.Upper())
		lower, _ := table.Trigram(code.Lower())

		prefix := upper.Element + lower.Element
		if upper.Code == lower.Code {
			prefix = upper.Name + "为" + upper.Element
		}
		assert.True(t, strings.HasPrefix(entry.Name, prefix), "%s %s", code, entry.Name)
	}
}

func TestDefault_UniqueNamesAndNumbers(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	names := make(map[string]bool)
	numbers := make(map[int]bool)
	for _, code := range domain.AllCodes() {
		entry, _ := table.Hexagram(code)
		assert.False(t, names[entry.Name], entry.Name)
		assert.False(t, numbers[entry.Number], entry.Number)
		names[entry.Name] = true
		numbers[entry.Number] = true
	}
	for n := 1; n <= 64; n++ {
		assert.True(t, numbers[n], n)
	}
}

func TestParse_DecodeError(t *testing.T) {
	_, err := Parse([]byte("[[hexagram"), trigramData)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode hexagram table")
}

func TestParse_DuplicateCodeReported(t *testing.T) {
	hex := string(hexagramData) + `
[[hexagram]]
number = 65
code = "000011"
name = "风地观"
`
	_, err := Parse([]byte(hex), trigramData)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Problems, 1)
	assert.Contains(t, verr.Problems[0], "000011: duplicate code")
}

func TestParse_CollectsEveryProblem(t *testing.T) {
	hex := `
[[hexagram]]
number = 1
code = "111111"
name = "乾为天"

[[hexagram]]
number = 1
code = "000000"
name = "坤为地"

[[hexagram]]
number = 3
code = "100010"
name = "乾为天"

[[hexagram]]
number = 4
code = "1x0001"
name = "山水蒙"
`
	tri := `
[[trigram]]
code = "111"
name = "乾"
glyph = "☰"
element = "天"

[[trigram]]
code = "111"
name = "乾"
glyph = "☰"
element = "天"
`
	_, err := Parse([]byte(hex), []byte(tri))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	joined := strings.Join(verr.Problems, "\n")
	assert.Contains(t, joined, "trigram 111: duplicate code")
	assert.Contains(t, joined, "trigram 000: missing")
	assert.Contains(t, joined, "number 1 already used by 111111")
	assert.Contains(t, joined, `name "乾为天" already used by 111111`)
	assert.Contains(t, joined, "hexagram 4:")
	assert.Contains(t, joined, "hexagrams missing:")
	assert.Contains(t, err.Error(), "problem(s)")
}

func TestTable_Miss(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	_, ok := table.Hexagram("11111")
	assert.False(t, ok)
	_, ok = table.Trigram("1111")
	assert.False(t, ok)
}
