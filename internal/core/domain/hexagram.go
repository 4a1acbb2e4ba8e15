package domain

// Sentinels returned when a code has no reference entry.
const (
	// UnknownHexagramName is the name of a hexagram missing from the table.
	UnknownHexagramName = "未知卦"

	// UnknownTrigramName is the name, and element, of a trigram missing from the table.
	UnknownTrigramName = "未知"

	// UnknownGlyph is the glyph of a trigram missing from the table.
	UnknownGlyph = "?"
)

// Trigram is a resolved three-line figure.
type Trigram struct {
	Code    TrigramCode `json:"code"`
	Name    string      `json:"name"`
	Glyph   string      `json:"glyph"`
	Element string      `json:"element"`
}

// UnknownTrigram returns the sentinel resolution for code.
func UnknownTrigram(code TrigramCode) Trigram {
	return Trigram{
		Code:    code,
		Name:    UnknownTrigramName,
		Glyph:   UnknownGlyph,
		Element: UnknownTrigramName,
	}
}

// IsUnknown reports whether t is the sentinel resolution.
func (t Trigram) IsUnknown() bool {
	return t.Name == UnknownTrigramName && t.Glyph == UnknownGlyph
}

// HexagramEntry is one row of the hexagram reference table.
type HexagramEntry struct {
	// Number is the position in the King Wen sequence (1-64).
	Number int
	Name   string
}

// Figure is a hexagram code resolved against the reference tables.
type Figure struct {
	Code HexagramCode `json:"code"`

	// Number is the King Wen sequence number, 0 when the code is unknown.
	Number int    `json:"number"`
	Name   string `json:"name"`

	Upper Trigram `json:"upper"`
	Lower Trigram `json:"lower"`

	// Known is false when Name is UnknownHexagramName.
	Known bool `json:"known"`
}

// TrigramNames returns the upper and lower trigram names joined, e.g. "坎乾".
func (f Figure) TrigramNames() string {
	return f.Upper.Name + f.Lower.Name
}
