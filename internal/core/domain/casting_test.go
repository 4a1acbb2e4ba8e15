package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastingResult_Lines(t *testing.T) {
	set, err := NewChangingSet(3, 4)
	require.NoError(t, err)
	result := CastingResult{
		Primary:  Figure{Code: "111010"},
		Changing: set,
	}

	lines := result.Lines()

	assert.Equal(t, Line{Value: Yang}, lines[0])
	assert.Equal(t, Line{Value: Yin, Changing: true}, lines[3])
	assert.Equal(t, Line{Value: Yang, Changing: true}, lines[4])
	assert.Equal(t, Line{Value: Yin}, lines[5])
	assert.True(t, result.HasChanges())
	assert.Equal(t, "+++AB-", result.Notation())
}

func TestCastingResult_NoChanges(t *testing.T) {
	result := CastingResult{Primary: Figure{Code: "000000"}, Changed: Figure{Code: "000000"}}

	assert.False(t, result.HasChanges())
	assert.Equal(t, "------", result.Notation())
}

func TestCastingResult_JSON(t *testing.T) {
	set, err := NewChangingSet(1)
	require.NoError(t, err)
	result := CastingResult{
		Method:   CastMethodManual,
		Primary:  Figure{Code: "010000", Name: "地水师", Number: 7, Known: true},
		Changing: set,
		Changed:  Figure{Code: "000000", Name: "坤为地", Number: 2, Known: true},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"method":"manual"`)
	assert.Contains(t, string(data), `"changing":[1]`)
	assert.NotContains(t, string(data), `"draws"`)
}

func TestTrigram_Unknown(t *testing.T) {
	tri := UnknownTrigram("101")

	assert.True(t, tri.IsUnknown())
	assert.Equal(t, TrigramCode("101"), tri.Code)
	assert.False(t, Trigram{Name: "离", Glyph: "☲"}.IsUnknown())
}

func TestFigure_TrigramNames(t *testing.T) {
	fig := Figure{Upper: Trigram{Name: "坎"}, Lower: Trigram{Name: "乾"}}
	assert.Equal(t, "坎乾", fig.TrigramNames())
}
