package services

import (
	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
	"github.com/custodia-labs/suanming/internal/core/ports/driving"
	"github.com/custodia-labs/suanming/internal/logger"
)

// Ensure CastingService implements the interface.
var _ driving.CastingService = (*CastingService)(nil)

var castLog = logger.For("casting")

// CastingService builds casting results from coin tosses or manual notation.
// It holds no state between calls.
type CastingService struct {
	coins    driven.CoinFlipper
	symbols driving.SymbolService
	seeded  driven.FlipperFactory
}

// NewCastingService creates a new casting service.
func NewCastingService(coins driven.CoinFlipper, symbols driving.SymbolService) *CastingService {
	return &CastingService{
		coins:   coins,
		symbols: symbols,
	}
}

// SetFlipperFactory sets the constructor used for casts that carry a seed.
// Without one, seeded casts use the default coins.
func (s *CastingService) SetFlipperFactory(f driven.FlipperFactory) {
	s.seeded = f
}

func (s *CastingService) flipperFor(opts domain.CastOptions) driven.CoinFlipper {
	if opts.Seed != nil && s.seeded != nil {
		castLog.Debug("using seed %d", *opts.Seed)
		return s.seeded(*opts.Seed)
	}
	return s.coins
}

// DrawLine tosses three coins and classifies them.
func DrawLine(coins driven.CoinFlipper) ([3]domain.Coin, domain.Line) {
	var toss [3]domain.Coin
	for i := range toss {
		toss[i] = coins.Flip()
	}
	return toss, domain.ClassifyToss(toss)
}

// Cast tosses the coins for all six lines, bottom line first.
func (s *CastingService) Cast(opts domain.CastOptions) domain.CastingResult {
	logger.Section("Coin Cast")

	var lines [domain.LineCount]domain.Line
	var changing domain.ChangingSet
	draws := make([]domain.LineDraw, 0, domain.LineCount)
	coins := s.flipperFor(opts)

	for pos := 0; pos < domain.LineCount; pos++ {
		toss, line := DrawLine(coins)
		lines[pos] = line
		if line.Changing {
			changing = changing.With(pos)
		}

		draw := domain.LineDraw{Position: pos, Coins: toss, Line: line}
		draws = append(draws, draw)
		castLog.Debug("line %d: %s -> %s", pos+1, draw.CoinFaces(), line.Label())

		if !opts.Quiet && opts.Narrator != nil {
			opts.Narrator.LineCast(draw)
		}
	}

	result := s.Resolve(domain.CodeFromLines(lines), changing)
	result.Method = domain.CastMethodCoins
	result.Draws = draws
	return result
}

// Manual parses a six-symbol notation into a casting result.
func (s *CastingService) Manual(notation string) (domain.CastingResult, error) {
	logger.Section("Manual Notation")

	code, changing, err := domain.ParseNotation(notation)
	if err != nil {
		castLog.Debug("rejected notation %q: %v", notation, err)
		return domain.CastingResult{}, err
	}

	result := s.Resolve(code, changing)
	result.Method = domain.CastMethodManual
	return result, nil
}

// Resolve derives the changed code and resolves both figures.
func (s *CastingService) Resolve(code domain.HexagramCode, changing domain.ChangingSet) domain.CastingResult {
	changed := domain.Flip(code, changing)
	castLog.Debug("primary %s, changing %s, changed %s", code, changing, changed)

	return domain.CastingResult{
		Primary:  s.symbols.Hexagram(code),
		Changing: changing,
		Changed:  s.symbols.Hexagram(changed),
	}
}
