package randomizer

import (
	"math/rand"

	"github.com/tiehuis/tetrs/internal/core"
)

// Memoryless draws every piece uniformly and independently, as the earliest
// games did.
type Memoryless struct {
	sequence
}

// NewMemoryless returns a memoryless randomizer seeded with the given value.
func NewMemoryless(seed int64) *Memoryless {
	m := &Memoryless{}
	m.rng = rand.New(rand.NewSource(seed))
	m.gen = m.next
	return m
}

func (m *Memoryless) next() core.PieceType {
	return core.PieceType(m.rng.Intn(core.PieceCount))
}
