package schema

import (
	"strings"
	"testing"

	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/rotation"
)

const fixture = `
	|          |
	|  #       |
	| # @@     |
	|## @@     |
	------------
`

func srs(t *testing.T) rotation.System {
	t.Helper()
	rs, err := rotation.New("srs")
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

func TestFromStringRejectsBadInput(t *testing.T) {
	if _, err := FromString(""); err == nil {
		t.Error("empty input accepted")
	}
	if _, err := FromString("|##|\n|#|"); err == nil {
		t.Error("uneven rows accepted")
	}
	if _, err := FromString("|#?|"); err == nil {
		t.Error("unknown character accepted")
	}
}

func TestToStateRecoversPiece(t *testing.T) {
	s, err := FromString(fixture)
	if err != nil {
		t.Fatal(err)
	}

	f, p, err := s.ToState(srs(t))
	if err != nil {
		t.Fatal(err)
	}
	if p == nil {
		t.Fatal("no piece recovered")
	}
	if p.Type != core.PieceO {
		t.Errorf("piece type = %v, want O", p.Type)
	}
	if !f.Occupied(2, 1) || !f.Occupied(0, 3) {
		t.Error("frozen cells missing from recovered field")
	}
	if f.Occupied(3, 2) {
		t.Error("piece cell leaked into the frozen grid")
	}
}

func TestToStateRecoversTPiece(t *testing.T) {
	s, err := FromString(`
		|   @      |
		|  @@@     |
		|          |
		------------
	`)
	if err != nil {
		t.Fatal(err)
	}

	_, p, err := s.ToState(srs(t))
	if err != nil {
		t.Fatal(err)
	}
	if p.Type != core.PieceT || p.R != core.R0 {
		t.Errorf("recovered %v %v, want T R0", p.Type, p.R)
	}
}

func TestRoundTrip(t *testing.T) {
	s, err := FromString(fixture)
	if err != nil {
		t.Fatal(err)
	}

	f, p, err := s.ToState(srs(t))
	if err != nil {
		t.Fatal(err)
	}

	back, err := FromState(f, p)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equal(back) {
		t.Errorf("round trip changed the schema:\n%s\nvs\n%s", s, back)
	}
}

func TestEqualIgnoresEmptyTopRows(t *testing.T) {
	a, err := FromString(`
		|          |
		|  @@      |
		|  @@ #    |
		------------
	`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromString(`
		|  @@      |
		|  @@ #    |
		------------
	`)
	if err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) || !b.Equal(a) {
		t.Error("schemas differing only by empty top rows compare unequal")
	}

	c, err := FromString(`
		| #        |
		|  @@      |
		|  @@ #    |
		------------
	`)
	if err != nil {
		t.Fatal(err)
	}
	if c.Equal(b) {
		t.Error("non-empty extra row compared equal")
	}
}

func TestStringRendersBorders(t *testing.T) {
	s, err := FromString(fixture)
	if err != nil {
		t.Fatal(err)
	}

	out := s.String()
	if !strings.HasPrefix(out, "|") {
		t.Error("missing left border")
	}
	if !strings.HasSuffix(out, strings.Repeat("-", 12)) {
		t.Error("missing bottom border")
	}

	reparsed, err := FromString(out)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equal(reparsed) {
		t.Error("rendered schema does not reparse to itself")
	}
}

func TestPieceCellCountValidation(t *testing.T) {
	s, err := FromString(`
		|   @      |
		|          |
		------------
	`)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.ToState(srs(t)); err == nil {
		t.Error("three-cell piece accepted")
	}
}
