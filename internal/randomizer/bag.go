package randomizer

import (
	"math/rand"

	"github.com/tiehuis/tetrs/internal/core"
)

// Bag deals a shuffled permutation of all seven pieces, reshuffling once the
// bag empties. Every piece appears exactly once per seven draws and the
// worst-case gap between sightings of a piece is 13.
type Bag struct {
	sequence
	head int
	data [core.PieceCount]core.PieceType
}

// NewBag returns a bag randomizer seeded with the given value.
func NewBag(seed int64) *Bag {
	b := &Bag{}
	b.rng = rand.New(rand.NewSource(seed))
	copy(b.data[:], core.Variants())
	b.shuffle()
	b.gen = b.next
	return b
}

func (b *Bag) shuffle() {
	b.rng.Shuffle(len(b.data), func(i, j int) {
		b.data[i], b.data[j] = b.data[j], b.data[i]
	})
}

func (b *Bag) next() core.PieceType {
	p := b.data[b.head]
	b.head++
	if b.head == len(b.data) {
		b.shuffle()
		b.head = 0
	}
	return p
}
