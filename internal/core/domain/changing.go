package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ChangingSet is the set of line positions (0-5) whose value flips when the
// changed hexagram is derived. The zero value is the empty set.
type ChangingSet uint8

const fullChangingSet ChangingSet = 1<<LineCount - 1

// NewChangingSet builds a set from positions. It returns ErrInvalidInput
// when a position falls outside 0-5.
func NewChangingSet(positions ...int) (ChangingSet, error) {
	var s ChangingSet
	for _, p := range positions {
		if p < 0 || p >= LineCount {
			return 0, fmt.Errorf("%w: line position %d out of range 0-%d", ErrInvalidInput, p, LineCount-1)
		}
		s = s.With(p)
	}
	return s, nil
}

// With returns a copy of the set that also contains position p.
// Positions outside 0-5 are ignored.
func (s ChangingSet) With(p int) ChangingSet {
	if p < 0 || p >= LineCount {
		return s
	}
	return s | 1<<uint(p)
}

// Has reports whether position p is in the set.
func (s ChangingSet) Has(p int) bool {
	if p < 0 || p >= LineCount {
		return false
	}
	return s&(1<<uint(p)) != 0
}

// Len returns the number of changing lines.
func (s ChangingSet) Len() int {
	n := 0
	for p := 0; p < LineCount; p++ {
		if s.Has(p) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no line is changing.
func (s ChangingSet) IsEmpty() bool {
	return s&fullChangingSet == 0
}

// Positions returns the members in ascending order.
func (s ChangingSet) Positions() []int {
	positions := make([]int, 0, LineCount)
	for p := 0; p < LineCount; p++ {
		if s.Has(p) {
			positions = append(positions, p)
		}
	}
	return positions
}

// String formats the set as "{3,4}".
func (s ChangingSet) String() string {
	parts := make([]string, 0, LineCount)
	for _, p := range s.Positions() {
		parts = append(parts, strconv.Itoa(p))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// MarshalJSON encodes the set as an ascending array of positions.
func (s ChangingSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Positions())
}

// UnmarshalJSON decodes an array of positions.
func (s *ChangingSet) UnmarshalJSON(data []byte) error {
	var positions []int
	if err := json.Unmarshal(data, &positions); err != nil {
		return err
	}
	set, err := NewChangingSet(positions...)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

// Flip returns a new code equal to code except that every position in
// changing has its bit inverted. An empty set yields an equal code.
func Flip(code HexagramCode, changing ChangingSet) HexagramCode {
	if changing.IsEmpty() {
		return code
	}
	b := []byte(code)
	for _, p := range changing.Positions() {
		if p < len(b) {
			b[p] = byte(LineValue(b[p]).Flip())
		}
	}
	return HexagramCode(b)
}
