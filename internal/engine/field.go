package engine

import (
	"fmt"

	"github.com/tiehuis/tetrs/internal/core"
)

// Field is the playfield grid. Row 0 is the topmost (hidden) row and y grows
// downward. Dimensions are fixed for the field's lifetime; only Freeze,
// ClearLines and Set mutate it.
type Field struct {
	width  int
	height int
	hidden int
	spawnX int
	spawnY int
	cells  [][]core.PieceType
}

// NewField returns an empty field. height counts all rows including the
// hidden region at the top.
func NewField(width, height, hidden, spawnX, spawnY int) *Field {
	f := &Field{
		width:  width,
		height: height,
		hidden: hidden,
		spawnX: spawnX,
		spawnY: spawnY,
		cells:  make([][]core.PieceType, height),
	}
	for y := range f.cells {
		f.cells[y] = emptyRow(width)
	}
	return f
}

func emptyRow(width int) []core.PieceType {
	row := make([]core.PieceType, width)
	for x := range row {
		row[x] = core.PieceNone
	}
	return row
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the total number of rows, hidden region included.
func (f *Field) Height() int { return f.height }

// Hidden returns the number of hidden rows at the top.
func (f *Field) Hidden() int { return f.hidden }

// Spawn returns the spawn anchor for new pieces.
func (f *Field) Spawn() (x, y int) { return f.spawnX, f.spawnY }

// At returns the cell value at (x, y), or PieceNone when out of bounds.
func (f *Field) At(x, y int) core.PieceType {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return core.PieceNone
	}
	return f.cells[y][x]
}

// Set writes a cell value directly. Used by test fixtures and the schema
// bridge; gameplay mutates the field only through Freeze and ClearLines.
func (f *Field) Set(x, y int, t core.PieceType) {
	f.cells[y][x] = t
}

// Occupied reports whether (x, y) is a frozen cell. Out-of-bounds
// coordinates count as occupied so pieces cannot leave the field.
func (f *Field) Occupied(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return true
	}
	return f.cells[y][x] != core.PieceNone
}

// ClearLines removes every full row, shifts the rows above down and inserts
// fresh empty rows at the top. Returns the number of rows cleared. Full rows
// are identified against the grid as it was on entry, so simultaneous clears
// never skip newly adjacent rows.
func (f *Field) ClearLines() int {
	kept := f.cells[:0]
	for _, row := range f.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}
	cleared := f.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]core.PieceType, 0, f.height)
	for i := 0; i < cleared; i++ {
		rows = append(rows, emptyRow(f.width))
	}
	rows = append(rows, kept...)
	f.cells = rows
	return cleared
}

func rowFull(row []core.PieceType) bool {
	for _, c := range row {
		if c == core.PieceNone {
			return false
		}
	}
	return true
}

// Freeze writes the piece's cells into the grid and consumes the piece: its
// type is reset to PieceNone so any further use trips the geometry lookup.
// Panics if a target cell is already occupied, which indicates broken engine
// sequencing rather than a runtime condition.
func (f *Field) Freeze(p *Piece) {
	for _, c := range p.Cells() {
		if f.Occupied(c.X, c.Y) {
			panic(fmt.Sprintf("engine: freeze of %v overlaps frozen cell (%d, %d)", p.Type, c.X, c.Y))
		}
		f.cells[c.Y][c.X] = p.Type
	}
	p.Type = core.PieceNone
}
