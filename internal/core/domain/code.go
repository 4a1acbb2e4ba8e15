package domain

import "fmt"

const (
	// LineCount is the number of lines in a hexagram.
	LineCount = 6

	// TrigramLineCount is the number of lines in a trigram.
	TrigramLineCount = 3
)

// HexagramCode is a six-character binary code, index 0 being the bottom line.
// A value obtained from ParseCode or one of the casting front ends always
// holds exactly six '0'/'1' characters.
type HexagramCode string

// TrigramCode is a three-character binary code, index 0 being the bottom line.
type TrigramCode string

// ParseCode validates s as a hexagram code.
func ParseCode(s string) (HexagramCode, error) {
	if err := checkBinary(s, LineCount); err != nil {
		return "", err
	}
	return HexagramCode(s), nil
}

// ParseTrigramCode validates s as a trigram code.
func ParseTrigramCode(s string) (TrigramCode, error) {
	if err := checkBinary(s, TrigramLineCount); err != nil {
		return "", err
	}
	return TrigramCode(s), nil
}

func checkBinary(s string, n int) error {
	if len(s) != n {
		return fmt.Errorf("%w: %q must have %d digits, got %d", ErrInvalidCode, s, n, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return fmt.Errorf("%w: %q has %q at position %d", ErrInvalidCode, s, s[i], i)
		}
	}
	return nil
}

// CodeFromLines builds a code from bottom-to-top line values.
func CodeFromLines(lines [LineCount]Line) HexagramCode {
	b := make([]byte, LineCount)
	for i, l := range lines {
		b[i] = byte(l.Value)
	}
	return HexagramCode(b)
}

// Lower returns the bottom trigram, positions 0-2.
func (c HexagramCode) Lower() TrigramCode {
	return TrigramCode(c[:TrigramLineCount])
}

// Upper returns the top trigram, positions 3-5.
func (c HexagramCode) Upper() TrigramCode {
	return TrigramCode(c[TrigramLineCount:])
}

// Value returns the polarity of the line at position i.
func (c HexagramCode) Value(i int) LineValue {
	return LineValue(c[i])
}

// AllCodes enumerates the 64 hexagram codes in ascending binary order.
func AllCodes() []HexagramCode {
	codes := make([]HexagramCode, 0, 1<<LineCount)
	for n := 0; n < 1<<LineCount; n++ {
		codes = append(codes, HexagramCode(fmt.Sprintf("%06b", n)))
	}
	return codes
}

// AllTrigramCodes enumerates the 8 trigram codes in ascending binary order.
func AllTrigramCodes() []TrigramCode {
	codes := make([]TrigramCode, 0, 1<<TrigramLineCount)
	for n := 0; n < 1<<TrigramLineCount; n++ {
		codes = append(codes, TrigramCode(fmt.Sprintf("%03b", n)))
	}
	return codes
}
