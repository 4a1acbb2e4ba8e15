// Package reference provides the hexagram and trigram reference tables.
//
// The tables ship embedded as TOML and are validated when parsed. A table
// that fails validation is never used: duplicates and gaps are reported,
// not resolved.
package reference

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
)

// Ensure Table implements the interface.
var _ driven.ReferenceTable = (*Table)(nil)

var (
	//go:embed data/hexagrams.toml
	hexagramData []byte

	//go:embed data/trigrams.toml
	trigramData []byte
)

const hexagramCount = 64

// hexagramFile is the on-disk shape of hexagrams.toml.
type hexagramFile struct {
	Hexagrams []hexagramRow `toml:"hexagram"`
}

type hexagramRow struct {
	Number int    `toml:"number"`
	Code   string `toml:"code"`
	Name   string `toml:"name"`
}

// trigramFile is the on-disk shape of trigrams.toml.
type trigramFile struct {
	Trigrams []trigramRow `toml:"trigram"`
}

type trigramRow struct {
	Code    string `toml:"code"`
	Name    string `toml:"name"`
	Glyph   string `toml:"glyph"`
	Element string `toml:"element"`
}

// ValidationError lists every problem found in a reference table.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("reference table: %d problem(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// Unwrap returns domain.ErrInvalidReference.
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidReference
}

func (e *ValidationError) addf(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// Table is an immutable, validated pair of lookup tables.
type Table struct {
	hexagrams map[domain.HexagramCode]domain.HexagramEntry
	trigrams  map[domain.TrigramCode]domain.Trigram
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded tables, parsed once.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(hexagramData, trigramData)
	})
	return defaultTable, defaultErr
}

// Parse decodes and validates TOML hexagram and trigram tables.
// Validation problems are returned as a *ValidationError.
func Parse(hexData, triData []byte) (*Table, error) {
	var hf hexagramFile
	if err := toml.Unmarshal(hexData, &hf); err != nil {
		return nil, fmt.Errorf("decode hexagram table: %w", err)
	}
	var tf trigramFile
	if err := toml.Unmarshal(triData, &tf); err != nil {
		return nil, fmt.Errorf("decode trigram table: %w", err)
	}

	verr := &ValidationError{}
	table := &Table{
		hexagrams: make(map[domain.HexagramCode]domain.HexagramEntry, len(hf.Hexagrams)),
		trigrams:  make(map[domain.TrigramCode]domain.Trigram, len(tf.Trigrams)),
	}
	table.loadTrigrams(tf.Trigrams, verr)
	table.loadHexagrams(hf.Hexagrams, verr)

	if len(verr.Problems) > 0 {
		return nil, verr
	}
	return table, nil
}

func (t *Table) loadTrigrams(rows []trigramRow, verr *ValidationError) {
	names := make(map[string]string)
	for i, row := range rows {
		code, err := domain.ParseTrigramCode(row.Code)
		if err != nil {
			verr.addf("trigram %d: %v", i+1, err)
			continue
		}
		if _, dup := t.trigrams[code]; dup {
			verr.addf("trigram %s: duplicate code", code)
			continue
		}
		if row.Name == "" || row.Glyph == "" || row.Element == "" {
			verr.addf("trigram %s: name, glyph and element are required", code)
			continue
		}
		if other, dup := names[row.Name]; dup {
			verr.addf("trigram %s: name %q already used by %s", code, row.Name, other)
			continue
		}
		names[row.Name] = string(code)
		t.trigrams[code] = domain.Trigram{
			Code:    code,
			Name:    row.Name,
			Glyph:   row.Glyph,
			Element: row.Element,
		}
	}

	for _, code := range domain.AllTrigramCodes() {
		if _, ok := t.trigrams[code]; !ok {
			verr.addf("trigram %s: missing", code)
		}
	}
}

func (t *Table) loadHexagrams(rows []hexagramRow, verr *ValidationError) {
	names := make(map[string]domain.HexagramCode)
	numbers := make(map[int]domain.HexagramCode)
	for i, row := range rows {
		code, err := domain.ParseCode(row.Code)
		if err != nil {
			verr.addf("hexagram %d: %v", i+1, err)
			continue
		}
		if existing, dup := t.hexagrams[code]; dup {
			verr.addf("hexagram %s: duplicate code, named both %q and %q", code, existing.Name, row.Name)
			continue
		}
		if row.Name == "" {
			verr.addf("hexagram %s: name is required", code)
			continue
		}
		if other, dup := names[row.Name]; dup {
			verr.addf("hexagram %s: name %q already used by %s", code, row.Name, other)
			continue
		}
		if row.Number < 1 || row.Number > hexagramCount {
			verr.addf("hexagram %s: number %d out of range", code, row.Number)
			continue
		}
		if other, dup := numbers[row.Number]; dup {
			verr.addf("hexagram %s: number %d already used by %s", code, row.Number, other)
			continue
		}
		names[row.Name] = code
		numbers[row.Number] = code
		t.hexagrams[code] = domain.HexagramEntry{Number: row.Number, Name: row.Name}
	}

	var missing []string
	for _, code := range domain.AllCodes() {
		if _, ok := t.hexagrams[code]; !ok {
			missing = append(missing, string(code))
		}
	}
	if len(missing) > 0 {
		verr.addf("hexagrams missing: %s", strings.Join(missing, ", "))
	}
}

// Hexagram looks up a hexagram by its bottom-first code.
func (t *Table) Hexagram(code domain.HexagramCode) (domain.HexagramEntry, bool) {
	entry, ok := t.hexagrams[code]
	return entry, ok
}

// Trigram looks up a trigram by its bottom-first code.
func (t *Table) Trigram(code domain.TrigramCode) (domain.Trigram, bool) {
	tri, ok := t.trigrams[code]
	return tri, ok
}

// Len returns the number of hexagram and trigram entries.
func (t *Table) Len() (hexagrams, trigrams int) {
	return len(t.hexagrams), len(t.trigrams)
}
