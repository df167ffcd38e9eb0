package rotation

import (
	"testing"

	"github.com/tiehuis/tetrs/internal/core"
)

func TestNewKnownSystems(t *testing.T) {
	for _, name := range []string{"srs", "dtet", "ars", "tengen"} {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q) returned error: %v", name, err)
		}
	}
}

func TestNewUnknownSystem(t *testing.T) {
	if _, err := New("nintendo"); err == nil {
		t.Fatal("expected error for unknown system")
	}
}

func TestNames(t *testing.T) {
	want := []string{"ars", "dtet", "srs", "tengen"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestDataCellCount(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range core.Variants() {
			for _, r := range core.Rotations() {
				cells := s.Data(p, r)
				if len(cells) != 4 {
					t.Errorf("%s: %v %v has %d cells", name, p, r, len(cells))
				}
				seen := map[core.Offset]bool{}
				for _, c := range cells {
					if c.X < 0 || c.X > 3 || c.Y < 0 || c.Y > 3 {
						t.Errorf("%s: %v %v cell %v outside 4x4 box", name, p, r, c)
					}
					if seen[c] {
						t.Errorf("%s: %v %v has duplicate cell %v", name, p, r, c)
					}
					seen[c] = true
				}
			}
		}
	}
}

func TestDataPanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for PieceNone")
		}
	}()
	SRS{}.Data(core.PieceNone, core.R0)
}

func TestMinMax(t *testing.T) {
	s := SRS{}

	tests := []struct {
		piece    core.PieceType
		rotation core.Rotation
		min, max core.Offset
	}{
		{core.PieceI, core.R0, core.Offset{X: 0, Y: 1}, core.Offset{X: 3, Y: 1}},
		{core.PieceI, core.R90, core.Offset{X: 2, Y: 0}, core.Offset{X: 2, Y: 3}},
		{core.PieceT, core.R0, core.Offset{X: 0, Y: 0}, core.Offset{X: 2, Y: 1}},
		{core.PieceO, core.R270, core.Offset{X: 1, Y: 0}, core.Offset{X: 2, Y: 1}},
	}
	for _, tt := range tests {
		if got := Min(s, tt.piece, tt.rotation); got != tt.min {
			t.Errorf("Min(%v, %v) = %v, want %v", tt.piece, tt.rotation, got, tt.min)
		}
		if got := Max(s, tt.piece, tt.rotation); got != tt.max {
			t.Errorf("Max(%v, %v) = %v, want %v", tt.piece, tt.rotation, got, tt.max)
		}
	}
}

func TestMinP(t *testing.T) {
	s := SRS{}

	tests := []struct {
		piece    core.PieceType
		rotation core.Rotation
		want     core.Offset
	}{
		// T spawns with the stem up, so the first occupied cell sits at
		// (1, 0) rather than the combined minimum (0, 0).
		{core.PieceT, core.R0, core.Offset{X: 1, Y: 0}},
		{core.PieceT, core.R180, core.Offset{X: 0, Y: 1}},
		{core.PieceI, core.R90, core.Offset{X: 2, Y: 0}},
		{core.PieceZ, core.R0, core.Offset{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		if got := MinP(s, tt.piece, tt.rotation); got != tt.want {
			t.Errorf("MinP(%v, %v) = %v, want %v", tt.piece, tt.rotation, got, tt.want)
		}
	}
}
