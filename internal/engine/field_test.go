package engine

import (
	"testing"

	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/rotation"
)

func testField() *Field {
	return NewField(10, 25, 3, 3, 0)
}

func fillRow(f *Field, y int) {
	for x := 0; x < f.Width(); x++ {
		f.Set(x, y, core.PieceI)
	}
}

func TestFieldOccupiedBounds(t *testing.T) {
	f := testField()

	if f.Occupied(0, 0) {
		t.Error("empty in-bounds cell reported occupied")
	}
	for _, c := range []core.Offset{{X: -1, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 25}} {
		if !f.Occupied(c.X, c.Y) {
			t.Errorf("out-of-bounds (%d, %d) reported free", c.X, c.Y)
		}
	}
}

func TestClearLinesNone(t *testing.T) {
	f := testField()
	f.Set(0, 24, core.PieceT)

	if n := f.ClearLines(); n != 0 {
		t.Fatalf("ClearLines() = %d, want 0", n)
	}
	if f.At(0, 24) != core.PieceT {
		t.Error("partial row was disturbed")
	}
}

func TestClearLinesSingle(t *testing.T) {
	f := testField()
	fillRow(f, 24)
	f.Set(4, 23, core.PieceS)

	if n := f.ClearLines(); n != 1 {
		t.Fatalf("ClearLines() = %d, want 1", n)
	}
	// The surviving cell shifts down one row.
	if f.At(4, 24) != core.PieceS {
		t.Error("row above the clear did not shift down")
	}
	if f.At(4, 23) != core.PieceNone {
		t.Error("vacated cell not emptied")
	}
}

func TestClearLinesNonAdjacent(t *testing.T) {
	f := testField()
	fillRow(f, 24)
	fillRow(f, 22)
	f.Set(0, 23, core.PieceZ)

	if n := f.ClearLines(); n != 2 {
		t.Fatalf("ClearLines() = %d, want 2", n)
	}
	if f.At(0, 24) != core.PieceZ {
		t.Error("partial row did not settle on the floor")
	}
}

func TestClearLinesTetris(t *testing.T) {
	f := testField()
	for y := 21; y <= 24; y++ {
		fillRow(f, y)
	}

	if n := f.ClearLines(); n != 4 {
		t.Fatalf("ClearLines() = %d, want 4", n)
	}
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.At(x, y) != core.PieceNone {
				t.Fatalf("cell (%d, %d) not empty after full clear", x, y)
			}
		}
	}
}

func TestFreezeWritesAndConsumes(t *testing.T) {
	f := testField()
	rs, _ := rotation.New("srs")
	p := NewPiece(core.PieceO, f, rs)
	p.ShiftExtend(f, core.Down)

	f.Freeze(p)

	if p.Type != core.PieceNone {
		t.Error("freeze did not consume the piece")
	}
	if !f.Occupied(4, 24) || !f.Occupied(5, 24) {
		t.Error("frozen cells missing from the grid")
	}
}

func TestFreezeOverlapPanics(t *testing.T) {
	f := testField()
	rs, _ := rotation.New("srs")
	p := NewPiece(core.PieceO, f, rs)
	f.Set(4, 1, core.PieceI)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overlapping freeze")
		}
	}()
	f.Freeze(p)
}
