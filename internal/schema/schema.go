// Package schema converts between game state and a textual field notation,
// used by tests to assert exact board states. The notation encloses each row
// in '|' characters, marks frozen cells with '#' and active piece cells with
// '@':
//
//	|          |
//	|  #       |
//	| # @@     |
//	|## @@     |
//	------------
//
// Leading and trailing whitespace per line is ignored, so differently
// indented strings produce the same schema.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/engine"
	"github.com/tiehuis/tetrs/internal/rotation"
)

const (
	cellEmpty  = ' '
	cellFrozen = '#'
	cellPiece  = '@'
)

// Schema is a parsed textual field, row-major with row 0 at the top.
type Schema struct {
	cells  [][]byte
	width  int
	height int
}

// FromString parses the textual notation. Border characters '|' and '-' are
// stripped; remaining rows must be equally wide and contain only ' ', '#'
// and '@'.
func FromString(s string) (*Schema, error) {
	var rows [][]byte
	for _, line := range strings.Split(s, "\n") {
		row := []byte(strings.Trim(strings.TrimSpace(line), "|-"))
		if len(row) == 0 {
			continue
		}
		for _, c := range row {
			if c != cellEmpty && c != cellFrozen && c != cellPiece {
				return nil, fmt.Errorf("schema: unknown character %q", c)
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New("schema: empty input")
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, errors.New("schema: uneven row lengths")
		}
	}

	return &Schema{cells: rows, width: width, height: len(rows)}, nil
}

// FromState renders a field and an active piece into a schema. Returns an
// error if the piece overlaps a frozen cell, which indicates broken engine
// sequencing.
func FromState(f *engine.Field, p *engine.Piece) (*Schema, error) {
	rows := make([][]byte, f.Height())
	for y := range rows {
		row := make([]byte, f.Width())
		for x := range row {
			frozen := f.Occupied(x, y)
			active := p != nil && p.Occupies(x, y)
			switch {
			case frozen && active:
				return nil, fmt.Errorf("schema: piece overlaps frozen cell (%d, %d)", x, y)
			case frozen:
				row[x] = cellFrozen
			case active:
				row[x] = cellPiece
			default:
				row[x] = cellEmpty
			}
		}
		rows[y] = row
	}
	return &Schema{cells: rows, width: f.Width(), height: f.Height()}, nil
}

// FromSnapshot renders an engine snapshot, overlaying the active piece onto
// the grid.
func FromSnapshot(snap engine.Snapshot, rs rotation.System) (*Schema, error) {
	f := engine.NewField(snap.Width, snap.Height, snap.Hidden, 0, 0)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			f.Set(x, y, snap.Cells[y][x])
		}
	}
	var p *engine.Piece
	if snap.Piece.Type != core.PieceNone {
		p = engine.NewPiece(snap.Piece.Type, f, rs)
		p.X, p.Y, p.R = snap.Piece.X, snap.Piece.Y, snap.Piece.R
	}
	return FromState(f, p)
}

// ToState builds a field and active piece from the schema. The field takes
// the schema's exact dimensions with no hidden rows. The piece's type and
// orientation are recovered by matching its '@' cells against the rotation
// system's tables; ambiguous shapes resolve to the lowest matching rotation.
func (s *Schema) ToState(rs rotation.System) (*engine.Field, *engine.Piece, error) {
	f := engine.NewField(s.width, s.height, 0, s.width/2-2, 0)

	var px, py = -1, -1
	for y, row := range s.cells {
		for x, c := range row {
			switch c {
			case cellFrozen:
				f.Set(x, y, core.PieceI)
			case cellPiece:
				if px < 0 {
					px, py = x, y
				}
			}
		}
	}

	if px < 0 {
		return f, nil, nil
	}

	p, err := s.matchPiece(f, rs, px, py)
	if err != nil {
		return nil, nil, err
	}
	return f, p, nil
}

// matchPiece identifies which piece the '@' cells form, anchored at the
// first piece cell in scan order (top to bottom, left to right).
func (s *Schema) matchPiece(f *engine.Field, rs rotation.System, px, py int) (*engine.Piece, error) {
	total := 0
	for _, row := range s.cells {
		for _, c := range row {
			if c == cellPiece {
				total++
			}
		}
	}
	if total != 4 {
		return nil, fmt.Errorf("schema: %d piece cells, want 4", total)
	}

	for _, ty := range core.Variants() {
		for _, ro := range core.Rotations() {
			mp := rotation.MinP(rs, ty, ro)
			ox, oy := px-mp.X, py-mp.Y

			if s.matches(rs.Data(ty, ro), ox, oy) {
				p := engine.NewPiece(ty, f, rs)
				p.X, p.Y, p.R = ox, oy, ro
				if p.Collides(f) {
					return nil, errors.New("schema: matched piece collides with field")
				}
				return p, nil
			}
		}
	}
	return nil, errors.New("schema: piece cells match no known shape")
}

func (s *Schema) matches(cells []core.Offset, ox, oy int) bool {
	for _, c := range cells {
		x, y := ox+c.X, oy+c.Y
		if x < 0 || x >= s.width || y < 0 || y >= s.height {
			return false
		}
		if s.cells[y][x] != cellPiece {
			return false
		}
	}
	return true
}

// String renders the schema in the bordered notation.
func (s *Schema) String() string {
	var b strings.Builder
	for _, row := range s.cells {
		b.WriteByte('|')
		b.Write(row)
		b.WriteString("|\n")
	}
	b.WriteString(strings.Repeat("-", s.width+2))
	return b.String()
}

// Equal compares two schemas cell by cell, aligning both at their bottom row
// so a schema showing only the lower part of a field still compares equal to
// the full rendering, provided the extra top rows are empty.
func (s *Schema) Equal(o *Schema) bool {
	if s.width != o.width {
		return false
	}
	tall, short := s, o
	if o.height > s.height {
		tall, short = o, s
	}
	diff := tall.height - short.height

	for y := 0; y < diff; y++ {
		for _, c := range tall.cells[y] {
			if c != cellEmpty {
				return false
			}
		}
	}
	for y := 0; y < short.height; y++ {
		for x := 0; x < short.width; x++ {
			if short.cells[y][x] != tall.cells[y+diff][x] {
				return false
			}
		}
	}
	return true
}
