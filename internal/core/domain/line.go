package domain

// Coin is the face shown by a single coin toss.
type Coin int

const (
	// Tails is the reverse face (反).
	Tails Coin = iota
	// Heads is the obverse face (正).
	Heads
)

// String returns the Chinese label used when narrating a toss.
func (c Coin) String() string {
	if c == Heads {
		return "正"
	}
	return "反"
}

// LineValue is the polarity of a single hexagram line.
type LineValue byte

const (
	// Yin is a broken line, encoded as '0'.
	Yin LineValue = '0'
	// Yang is a solid line, encoded as '1'.
	Yang LineValue = '1'
)

// Flip returns the opposite polarity.
func (v LineValue) Flip() LineValue {
	if v == Yang {
		return Yin
	}
	return Yang
}

// String returns the polarity name.
func (v LineValue) String() string {
	if v == Yang {
		return "yang"
	}
	return "yin"
}

// Line is one of the six positions of a hexagram.
type Line struct {
	Value    LineValue `json:"value"`
	Changing bool      `json:"changing"`
}

// Numeral returns the traditional line number: 6 old yin, 7 young yang,
// 8 young yin, 9 old yang.
func (l Line) Numeral() int {
	switch {
	case l.Value == Yang && l.Changing:
		return 9
	case l.Value == Yang:
		return 7
	case l.Changing:
		return 6
	default:
		return 8
	}
}

// Label returns the Chinese numeral and line kind, e.g. "九 老阳".
func (l Line) Label() string {
	switch l.Numeral() {
	case 9:
		return "九 老阳"
	case 7:
		return "七 少阳"
	case 6:
		return "六 老阴"
	default:
		return "八 少阴"
	}
}

// ClassifyToss maps three coin faces to a line.
//
// The heads count alone decides the result:
//
//	3 heads -> yin, changing (1/8)
//	2 heads -> yang         (3/8)
//	1 head  -> yin          (3/8)
//	0 heads -> yang, changing (1/8)
func ClassifyToss(coins [3]Coin) Line {
	heads := 0
	for _, c := range coins {
		if c == Heads {
			heads++
		}
	}

	switch heads {
	case 3:
		return Line{Value: Yin, Changing: true}
	case 2:
		return Line{Value: Yang}
	case 1:
		return Line{Value: Yin}
	default:
		return Line{Value: Yang, Changing: true}
	}
}

// LineDraw records how one line of a coin cast was produced.
type LineDraw struct {
	// Position is the 0-based line index, 0 being the bottom line.
	Position int `json:"position"`

	// Coins holds the three toss results in the order they were drawn.
	Coins [3]Coin `json:"coins"`

	// Line is the classified result.
	Line Line `json:"line"`
}

// CoinFaces renders the tosses as a string such as "正正反".
func (d LineDraw) CoinFaces() string {
	return d.Coins[0].String() + d.Coins[1].String() + d.Coins[2].String()
}
