package wallkick

import (
	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/rotation"
)

// TGM3 extends TGM with the I and T floorkicks introduced in Terror
// Instinct. Everything else falls back to the TGM behaviour.
type TGM3 struct{}

var (
	tgm3IFloorkick = []core.Offset{
		{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -2},
	}
	tgm3IKicks = []core.Offset{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 0},
	}
	tgm3TFloorkick = []core.Offset{
		{X: 0, Y: 0}, {X: 0, Y: -1},
	}
)

// Test implements Kick.
func (k TGM3) Test(p PieceView, f FieldView, d core.Rotation) []core.Offset {
	if p.Type == core.PieceI {
		// A grounded I may climb out of a well; a floating one only
		// slides sideways.
		for _, c := range p.RS.Data(p.Type, p.R) {
			if f.Occupied(p.X+c.X, p.Y+c.Y+1) {
				return tgm3IFloorkick
			}
		}
		return tgm3IKicks
	}

	if p.Type == core.PieceT {
		if kick, ok := k.tGroove(p, f); ok {
			return kick
		}
	}

	return TGM{}.Test(p, f, d)
}

// tGroove detects a stem-up T wedged in a one-wide groove. Such a piece can
// only escape upwards, so it gets a floorkick and nothing else.
func (TGM3) tGroove(p PieceView, f FieldView) ([]core.Offset, bool) {
	lo := rotation.Min(p.RS, p.Type, p.R)
	hi := rotation.Max(p.RS, p.Type, p.R)
	mp := rotation.MinP(p.RS, p.Type, p.R)
	cells := p.RS.Data(p.Type, p.R)

	// Stem-up is the only three-wide orientation whose first occupied
	// cell is the lone stem.
	if hi.X-lo.X != 2 || pieceHas(cells, mp.X+1, mp.Y) {
		return nil, false
	}

	// Cell below the stem column, one row under the flat side.
	bx, by := p.X+mp.X, p.Y+mp.Y+2

	if by >= f.Height() || bx-1 < 0 || bx+1 >= f.Width() {
		return nil, false
	}

	if f.Occupied(bx-1, by) && f.Occupied(bx+1, by) {
		return tgm3TFloorkick, true
	}
	return noKick, true
}
