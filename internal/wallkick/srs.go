package wallkick

import "github.com/tiehuis/tetrs/internal/core"

// SRS implements the guideline Super Rotation System kicks. The I piece has
// its own tables and the O piece never kicks.
type SRS struct{}

// Test implements Kick.
func (SRS) Test(p PieceView, f FieldView, d core.Rotation) []core.Offset {
	if p.Type == core.PieceO {
		return noKick
	}
	switch d {
	case core.R90:
		if p.Type == core.PieceI {
			return srsRightI[p.R][:]
		}
		return srsRightJLSTZ[p.R][:]
	case core.R270:
		if p.Type == core.PieceI {
			return srsLeftI[p.R][:]
		}
		return srsLeftJLSTZ[p.R][:]
	default:
		return noKick
	}
}

// Kick data indexed by the orientation rotated from.
var srsRightJLSTZ = [core.RotationCount][5]core.Offset{
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
}

var srsLeftJLSTZ = [core.RotationCount][5]core.Offset{
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var srsRightI = [core.RotationCount][5]core.Offset{
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {2, -1}},
}

var srsLeftI = [core.RotationCount][5]core.Offset{
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
}
