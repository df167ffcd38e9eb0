// Package randomizer implements the piece-sequence generators. All variants
// share the same contract: Next consumes exactly one piece and Preview peeks
// at upcoming pieces without consuming them.
//
// Randomizers are seeded explicitly and never touch global random state, so
// two instances with the same seed produce identical sequences.
package randomizer

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/tiehuis/tetrs/internal/core"
)

// Randomizer is implemented by all piece-sequence generators.
type Randomizer interface {
	// Next advances the sequence and returns the next piece type.
	Next() core.PieceType

	// Preview returns the next n piece types without consuming them.
	// Repeated calls without an intervening Next return the same result.
	Preview(n int) []core.PieceType
}

// sequence provides the lookahead plumbing shared by every variant. The
// variant supplies gen, which produces one raw piece per call.
type sequence struct {
	rng       *rand.Rand
	lookahead []core.PieceType
	gen       func() core.PieceType
}

func (s *sequence) Next() core.PieceType {
	if len(s.lookahead) == 0 {
		return s.gen()
	}
	p := s.lookahead[0]
	s.lookahead = s.lookahead[1:]
	return p
}

func (s *sequence) Preview(n int) []core.PieceType {
	for len(s.lookahead) < n {
		s.lookahead = append(s.lookahead, s.gen())
	}
	out := make([]core.PieceType, n)
	copy(out, s.lookahead[:n])
	return out
}

var variants = map[string]func(seed int64) Randomizer{
	"bag":        func(seed int64) Randomizer { return NewBag(seed) },
	"memoryless": func(seed int64) Randomizer { return NewMemoryless(seed) },
	"gameboy":    func(seed int64) Randomizer { return NewGameboy(seed) },
	"tgm1":       func(seed int64) Randomizer { return NewTGM1(seed) },
	"tgm2":       func(seed int64) Randomizer { return NewTGM2(seed) },
}

// New returns a freshly seeded randomizer registered under the given name.
// Known names are "bag", "memoryless", "gameboy", "tgm1" and "tgm2".
func New(name string, seed int64) (Randomizer, error) {
	f, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("randomizer: unknown randomizer %q", name)
	}
	return f(seed), nil
}

// Names returns the registered randomizer names, sorted.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
