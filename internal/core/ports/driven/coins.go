package driven

import "github.com/custodia-labs/suanming/internal/core/domain"

// CoinFlipper produces independent fair coin tosses.
// Each call must return Heads or Tails with probability 1/2.
type CoinFlipper interface {
	// Flip tosses one coin.
	Flip() domain.Coin
}

// FlipperFactory builds a deterministic flipper for seed.
type FlipperFactory func(seed int64) CoinFlipper

// Narrator is the adapter side of domain.CastOptions.Narrator.
type Narrator = domain.LineObserver
