package engine

import (
	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/rotation"
	"github.com/tiehuis/tetrs/internal/wallkick"
)

// Piece is a positioned, rotated instance of a piece type bound to a
// rotation system. All movement goes through operations that validate
// collision against a field; none of them mutate the field.
type Piece struct {
	Type core.PieceType
	X, Y int
	R    core.Rotation
	rs   rotation.System
}

// NewPiece returns a piece of the given type at the field's spawn anchor in
// its spawn orientation. The caller checks for spawn collision.
func NewPiece(t core.PieceType, f *Field, rs rotation.System) *Piece {
	x, y := f.Spawn()
	return &Piece{Type: t, X: x, Y: y, R: core.R0, rs: rs}
}

// RotationSystem returns the system providing this piece's geometry.
func (p *Piece) RotationSystem() rotation.System { return p.rs }

// Cells returns the absolute cells the piece occupies.
func (p *Piece) Cells() []core.Offset {
	cells := p.rs.Data(p.Type, p.R)
	out := make([]core.Offset, len(cells))
	for i, c := range cells {
		out[i] = core.Offset{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}

// Occupies reports whether the piece covers the absolute cell (x, y).
func (p *Piece) Occupies(x, y int) bool {
	if p.Type == core.PieceNone {
		return false
	}
	for _, c := range p.rs.Data(p.Type, p.R) {
		if p.X+c.X == x && p.Y+c.Y == y {
			return true
		}
	}
	return false
}

// Collides reports whether any occupied cell overlaps a frozen cell or lies
// out of bounds. A PieceNone sentinel never collides.
func (p *Piece) Collides(f *Field) bool {
	return p.collidesAt(f, 0, 0, p.R)
}

func (p *Piece) collidesAt(f *Field, dx, dy int, r core.Rotation) bool {
	if p.Type == core.PieceNone {
		return false
	}
	for _, c := range p.rs.Data(p.Type, r) {
		if f.Occupied(p.X+dx+c.X, p.Y+dy+c.Y) {
			return true
		}
	}
	return false
}

// Shift attempts to move one cell in the given direction, applying the move
// only if the destination is collision free. Returns whether it moved.
// Failure is a normal outcome, not an error.
func (p *Piece) Shift(f *Field, d core.Direction) bool {
	if p.Type == core.PieceNone {
		return false
	}
	var dx, dy int
	switch d {
	case core.Left:
		dx = -1
	case core.Right:
		dx = 1
	case core.Down:
		dy = 1
	case core.Up:
		dy = -1
	}
	if p.collidesAt(f, dx, dy, p.R) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// ShiftExtend shifts repeatedly in the given direction until blocked,
// leaving the piece at the furthest valid position.
func (p *Piece) ShiftExtend(f *Field, d core.Direction) {
	for p.Shift(f, d) {
	}
}

// Rotate attempts the naive rotation by delta d (R90 clockwise, R270
// anticlockwise) at the current position. No kicks are tried; that is
// RotateWithKick's job.
func (p *Piece) Rotate(f *Field, d core.Rotation) bool {
	target := (p.R + d) % core.RotationCount
	if p.collidesAt(f, 0, 0, target) {
		return false
	}
	p.R = target
	return true
}

// RotateWithKick rotates by delta d, resolving collisions with the kick's
// ordered offset list: the first non-colliding candidate is applied. If the
// list is exhausted the piece is left entirely unchanged. The same
// resolution runs for every kick variant; variants differ only in the
// offsets they produce.
func (p *Piece) RotateWithKick(f *Field, k wallkick.Kick, d core.Rotation) bool {
	view := wallkick.PieceView{Type: p.Type, X: p.X, Y: p.Y, R: p.R, RS: p.rs}
	target := (p.R + d) % core.RotationCount
	for _, o := range k.Test(view, f, d) {
		if !p.collidesAt(f, o.X, o.Y, target) {
			p.X += o.X
			p.Y += o.Y
			p.R = target
			return true
		}
	}
	return false
}

// Ghost returns a copy of the piece dropped to its lowest reachable
// position, leaving the original untouched.
func (p *Piece) Ghost(f *Field) Piece {
	g := *p
	g.ShiftExtend(f, core.Down)
	return g
}
