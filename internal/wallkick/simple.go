package wallkick

import "github.com/tiehuis/tetrs/internal/core"

// Simple tries a single-cell nudge right then left, for every piece and
// rotation alike.
type Simple struct{}

var simpleKicks = []core.Offset{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0},
}

// Test implements Kick.
func (Simple) Test(p PieceView, f FieldView, d core.Rotation) []core.Offset {
	return simpleKicks
}
