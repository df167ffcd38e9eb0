package wallkick

import "github.com/tiehuis/tetrs/internal/core"

// Empty performs no kicks. Rotations succeed or fail in place.
type Empty struct{}

// Test implements Kick.
func (Empty) Test(p PieceView, f FieldView, d core.Rotation) []core.Offset {
	return noKick
}
