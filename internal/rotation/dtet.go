package rotation

import "github.com/tiehuis/tetrs/internal/core"

// DTET is the rotation system from the DTET series. Pieces sit one row
// lower than in SRS and the lateral orientations are symmetric.
type DTET struct{}

// Data implements System.
func (DTET) Data(t core.PieceType, r core.Rotation) []core.Offset {
	return dtetTable.data(t, r)
}

var dtetTable = table{
	core.PieceI: {
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	core.PieceT: {
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
	},
	core.PieceL: {
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 2}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
	},
	core.PieceJ: {
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 2}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
	},
	core.PieceS: {
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	core.PieceZ: {
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
	},
	core.PieceO: {
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
	},
}
