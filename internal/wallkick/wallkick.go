// Package wallkick implements the kick tables applied when a naive rotation
// collides. A kick returns an ordered list of translations to try; the first
// one that yields a non-colliding placement wins, and an exhausted list
// leaves the piece unchanged.
//
// Kicks only produce candidate offsets. The uniform try-in-order resolution
// lives with the piece, so every variant is pure data plus an occasional
// field probe.
package wallkick

import (
	"fmt"
	"sort"

	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/rotation"
)

// FieldView is the read-only view of a playfield a kick may probe. Occupied
// reports whether the cell at (x, y) is frozen or out of bounds.
type FieldView interface {
	Occupied(x, y int) bool
	Width() int
	Height() int
}

// PieceView describes the piece being rotated: its type, current absolute
// position, current orientation and the rotation system providing its
// geometry. It is a plain value so kicks stay decoupled from the engine.
type PieceView struct {
	Type core.PieceType
	X, Y int
	R    core.Rotation
	RS   rotation.System
}

// Kick is implemented by all wallkick variants. Test returns the ordered
// candidate translations for rotating p by d, where d is R90 for clockwise
// and R270 for anticlockwise. The returned slice is shared static data and
// must not be modified.
type Kick interface {
	Test(p PieceView, f FieldView, d core.Rotation) []core.Offset
}

var noKick = []core.Offset{{X: 0, Y: 0}}

var kicks = map[string]Kick{
	"srs":    SRS{},
	"empty":  Empty{},
	"simple": Simple{},
	"dtet":   DTET{},
	"tgm":    TGM{},
	"tgm3":   TGM3{},
}

// New returns the wallkick registered under the given name. Known names are
// "srs", "empty", "simple", "dtet", "tgm" and "tgm3".
func New(name string) (Kick, error) {
	k, ok := kicks[name]
	if !ok {
		return nil, fmt.Errorf("wallkick: unknown kick %q", name)
	}
	return k, nil
}

// Names returns the registered kick names, sorted.
func Names() []string {
	names := make([]string, 0, len(kicks))
	for name := range kicks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
