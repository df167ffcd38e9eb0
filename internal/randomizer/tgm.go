package randomizer

import (
	"math/rand"

	"github.com/tiehuis/tetrs/internal/core"
)

// tgmHistory is the rolling-history scheme shared by the TGM variants: each
// draw is rerolled while it matches a recently dealt piece, up to a bounded
// number of rolls, after which the repeat is accepted.
type tgmHistory struct {
	sequence
	history [4]core.PieceType
	rolls   int
	first   bool
}

func (t *tgmHistory) next() core.PieceType {
	var piece core.PieceType

	if t.first {
		// The first piece is rerolled away from S, Z and O so the
		// opening never forces an overhang.
		for i := 0; i < t.rolls; i++ {
			piece = core.PieceType(t.rng.Intn(core.PieceCount))
			if piece != core.PieceS && piece != core.PieceZ && piece != core.PieceO {
				break
			}
		}
		t.first = false
	} else {
		for i := 0; i < t.rolls; i++ {
			piece = core.PieceType(t.rng.Intn(core.PieceCount))
			if !t.inHistory(piece) {
				break
			}
		}
	}

	copy(t.history[1:], t.history[:len(t.history)-1])
	t.history[0] = piece
	return piece
}

func (t *tgmHistory) inHistory(p core.PieceType) bool {
	for _, h := range t.history {
		if h == p {
			return true
		}
	}
	return false
}

// TGM1 seeds its history with four Z pieces and rolls four times.
type TGM1 struct {
	tgmHistory
}

// NewTGM1 returns a TGM1 randomizer seeded with the given value.
func NewTGM1(seed int64) *TGM1 {
	t := &TGM1{}
	t.rng = rand.New(rand.NewSource(seed))
	t.history = [4]core.PieceType{core.PieceZ, core.PieceZ, core.PieceZ, core.PieceZ}
	t.rolls = 4
	t.first = true
	t.gen = t.next
	return t
}

// TGM2 seeds its history with S, Z, S, Z and rolls six times, which spreads
// the distribution further than TGM1.
type TGM2 struct {
	tgmHistory
}

// NewTGM2 returns a TGM2 randomizer seeded with the given value.
func NewTGM2(seed int64) *TGM2 {
	t := &TGM2{}
	t.rng = rand.New(rand.NewSource(seed))
	t.history = [4]core.PieceType{core.PieceS, core.PieceZ, core.PieceS, core.PieceZ}
	t.rolls = 6
	t.first = true
	t.gen = t.next
	return t
}
