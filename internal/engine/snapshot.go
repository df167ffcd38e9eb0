package engine

import "github.com/tiehuis/tetrs/internal/core"

// PieceState is the renderable description of a piece: type, position and
// orientation, with no behaviour attached.
type PieceState struct {
	Type core.PieceType
	X, Y int
	R    core.Rotation
}

// Snapshot is a read-only copy of everything a renderer or test needs:
// the grid, the active and ghost pieces, the hold slot, the preview queue,
// statistics and the running flag. It shares no memory with the engine.
type Snapshot struct {
	Width  int
	Height int
	Hidden int
	Cells  [][]core.PieceType

	Piece PieceState
	Ghost PieceState

	Hold    core.PieceType
	Preview []core.PieceType

	Stats   Statistics
	Running bool
	Ticks   uint64
}

// Snapshot captures the current state. The active piece's cells are not
// merged into the grid; renderers overlay Piece and Ghost themselves.
func (e *Engine) Snapshot() Snapshot {
	cells := make([][]core.PieceType, e.field.Height())
	for y := range cells {
		row := make([]core.PieceType, e.field.Width())
		for x := range row {
			row[x] = e.field.At(x, y)
		}
		cells[y] = row
	}

	ghost := e.piece.Ghost(e.field)

	return Snapshot{
		Width:   e.field.Width(),
		Height:  e.field.Height(),
		Hidden:  e.field.Hidden(),
		Cells:   cells,
		Piece:   PieceState{Type: e.piece.Type, X: e.piece.X, Y: e.piece.Y, R: e.piece.R},
		Ghost:   PieceState{Type: ghost.Type, X: ghost.X, Y: ghost.Y, R: ghost.R},
		Hold:    e.hold,
		Preview: e.Preview(),
		Stats:   e.stats,
		Running: e.running,
		Ticks:   e.ticks,
	}
}
