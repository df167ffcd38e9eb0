package randomizer

import (
	"math/rand"

	"github.com/tiehuis/tetrs/internal/core"
)

// Gameboy reproduces the Game Boy sequence: instead of picking a piece
// directly it rolls an increment from the previous piece, which biases the
// sequence against immediate repeats without excluding them.
type Gameboy struct {
	sequence
	prev int
}

// NewGameboy returns a gameboy randomizer seeded with the given value.
func NewGameboy(seed int64) *Gameboy {
	g := &Gameboy{}
	g.rng = rand.New(rand.NewSource(seed))
	g.prev = g.rng.Intn(core.PieceCount)
	g.gen = g.next
	return g
}

func (g *Gameboy) next() core.PieceType {
	// A roll of 6*7-3 split into buckets of 5 makes an increment of zero
	// (an immediate repeat) the least likely outcome.
	roll := 6*core.PieceCount - 3
	g.prev = (g.prev + g.rng.Intn(roll)/5 + 1) % core.PieceCount
	return core.PieceType(g.prev)
}
