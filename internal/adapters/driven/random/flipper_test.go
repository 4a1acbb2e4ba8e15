package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

func TestFlipper_SameSeedSameSequence(t *testing.T) {
	a := NewFlipper(42)
	b := NewFlipper(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Flip(), b.Flip(), "flip %d", i)
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestFlipper_DifferentSeedsDiverge(t *testing.T) {
	a := NewFlipper(1)
	b := NewFlipper(2)

	same := 0
	for i := 0; i < 64; i++ {
		if a.Flip() == b.Flip() {
			same++
		}
	}
	assert.Less(t, same, 64)
}

func TestFlipper_Fair(t *testing.T) {
	f := NewFlipper(20240601)

	const n = 20000
	heads := 0
	for i := 0; i < n; i++ {
		if f.Flip() == domain.Heads {
			heads++
		}
	}
	assert.InDelta(t, 0.5, float64(heads)/n, 0.02)
}

func TestFlipper_LineRates(t *testing.T) {
	f := NewFlipper(99)

	const n = 20000
	changing, yang := 0, 0
	for i := 0; i < n; i++ {
		line := domain.ClassifyToss([3]domain.Coin{f.Flip(), f.Flip(), f.Flip()})
		if line.Changing {
			changing++
		}
		if line.Value == domain.Yang {
			yang++
		}
	}
	assert.InDelta(t, 0.25, float64(changing)/n, 0.02)
	assert.InDelta(t, 0.5, float64(yang)/n, 0.02)
}

func TestFlipper_ConcurrentUse(t *testing.T) {
	f := NewFlipper(7)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				c := f.Flip()
				assert.True(t, c == domain.Heads || c == domain.Tails)
			}
		}()
	}
	wg.Wait()
}

func TestNewRandomFlipper(t *testing.T) {
	f, err := NewRandomFlipper()

	require.NoError(t, err)
	require.NotNil(t, f)
	replay := NewFlipper(f.Seed())
	for i := 0; i < 20; i++ {
		assert.Equal(t, replay.Flip(), f.Flip())
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
