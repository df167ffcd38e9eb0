// Package rotation defines the geometry tables of the supported rotation
// systems. A rotation system maps a (piece type, orientation) pair to the
// set of cell offsets the piece occupies relative to its position.
//
// Systems are pure lookup data: they are constructed once, shared by every
// piece using them, and never mutated.
package rotation

import (
	"fmt"
	"sort"

	"github.com/tiehuis/tetrs/internal/core"
)

// System is implemented by all rotation systems.
type System interface {
	// Data returns the cell offsets for the given piece type and
	// orientation. The returned slice is shared static data and must not
	// be modified. Panics for PieceNone, which has no geometry.
	Data(t core.PieceType, r core.Rotation) []core.Offset
}

// table holds the offsets for all seven pieces across four orientations.
// Indexed by [PieceType][Rotation].
type table [core.PieceCount][core.RotationCount][4]core.Offset

func (tb *table) data(t core.PieceType, r core.Rotation) []core.Offset {
	if t < 0 || t >= core.PieceCount {
		panic(fmt.Sprintf("rotation: no geometry for piece %v", t))
	}
	return tb[t][r][:]
}

// Min returns the minimum (x, y) offsets over all cells of the piece. The
// components are taken independently, so the result need not be an occupied
// cell.
func Min(s System, t core.PieceType, r core.Rotation) core.Offset {
	cells := s.Data(t, r)
	m := cells[0]
	for _, c := range cells[1:] {
		m.X = min(m.X, c.X)
		m.Y = min(m.Y, c.Y)
	}
	return m
}

// Max returns the maximum (x, y) offsets over all cells of the piece.
func Max(s System, t core.PieceType, r core.Rotation) core.Offset {
	cells := s.Data(t, r)
	m := cells[0]
	for _, c := range cells[1:] {
		m.X = max(m.X, c.X)
		m.Y = max(m.Y, c.Y)
	}
	return m
}

// MinP returns the offset of the first occupied cell, scanning row by row
// from y = 0 and left to right within a row. This is subtly different from
// Min, which combines components from distinct cells.
func MinP(s System, t core.PieceType, r core.Rotation) core.Offset {
	cells := s.Data(t, r)
	m := cells[0]
	for _, c := range cells[1:] {
		if c.Y < m.Y || (c.Y == m.Y && c.X < m.X) {
			m = c
		}
	}
	return m
}

var systems = map[string]System{
	"srs":    SRS{},
	"dtet":   DTET{},
	"ars":    ARS{},
	"tengen": Tengen{},
}

// New returns the rotation system registered under the given name.
// Known names are "srs", "dtet", "ars" and "tengen".
func New(name string) (System, error) {
	s, ok := systems[name]
	if !ok {
		return nil, fmt.Errorf("rotation: unknown system %q", name)
	}
	return s, nil
}

// Names returns the registered system names, sorted.
func Names() []string {
	names := make([]string, 0, len(systems))
	for name := range systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
