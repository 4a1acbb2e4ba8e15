// Package random provides the coin source used by the caster.
//
// Flipper is deterministic with respect to its seed: two flippers built
// with the same seed produce the same sequence of faces, which makes a
// cast reproducible with --seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"

	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
)

// Ensure Flipper implements the interface.
var _ driven.CoinFlipper = (*Flipper)(nil)

// Flipper is a fair coin backed by a seeded math/rand source.
// It is safe for concurrent use.
type Flipper struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewFlipper creates a flipper seeded with seed.
func NewFlipper(seed int64) *Flipper {
	return &Flipper{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewRandomFlipper creates a flipper with a fresh seed from crypto/rand.
func NewRandomFlipper() (*Flipper, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewFlipper(seed), nil
}

// Flip tosses the coin once.
func (f *Flipper) Flip() domain.Coin {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rng.Intn(2) == 1 {
		return domain.Heads
	}
	return domain.Tails
}

// Seed returns the seed the flipper was created with.
func (f *Flipper) Seed() int64 {
	return f.seed
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
