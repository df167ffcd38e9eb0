package wallkick

import (
	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/rotation"
)

// TGM implements the TGM1/TGM2 kicks. The I piece never kicks, and the
// three-wide pieces refuse to kick when a frozen cell obstructs their middle
// column, which preserves the classic "no kick out of a notch" behaviour.
type TGM struct{}

var tgmKicks = []core.Offset{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0},
}

// Test implements Kick.
func (TGM) Test(p PieceView, f FieldView, d core.Rotation) []core.Offset {
	if p.Type == core.PieceI {
		return noKick
	}

	if p.Type == core.PieceL || p.Type == core.PieceJ || p.Type == core.PieceT {
		lo := rotation.Min(p.RS, p.Type, p.R)
		hi := rotation.Max(p.RS, p.Type, p.R)

		// Three-wide orientation: a frozen cell in the middle column of
		// the bounding box, or just above it, pins the piece in place.
		if hi.X-lo.X == 2 {
			cells := p.RS.Data(p.Type, p.R)
			cx := lo.X + 1
			for cy := lo.Y - 1; cy <= hi.Y; cy++ {
				if pieceHas(cells, cx, cy) {
					continue
				}
				if f.Occupied(p.X+cx, p.Y+cy) {
					return noKick
				}
			}
		}
	}

	switch d {
	case core.R90, core.R270:
		return tgmKicks
	default:
		return noKick
	}
}

func pieceHas(cells []core.Offset, x, y int) bool {
	for _, c := range cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}
