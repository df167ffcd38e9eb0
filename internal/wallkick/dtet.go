package wallkick

import "github.com/tiehuis/tetrs/internal/core"

// DTET implements the symmetric kicks from the DTET series. Both rotation
// directions probe sideways first, then the diagonals one row down.
type DTET struct{}

var dtetRight = []core.Offset{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: -1, Y: 1},
}

var dtetLeft = []core.Offset{
	{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 1}, {X: 1, Y: 1},
}

// Test implements Kick.
func (DTET) Test(p PieceView, f FieldView, d core.Rotation) []core.Offset {
	switch d {
	case core.R90:
		return dtetRight
	case core.R270:
		return dtetLeft
	default:
		return noKick
	}
}
