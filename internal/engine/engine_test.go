package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tiehuis/tetrs/internal/core"
)

// testOptions slows gravity to a crawl so tests control every movement.
func testOptions() Options {
	opts := DefaultOptions()
	opts.Gravity = 1000
	opts.DAS = 3
	opts.ARR = 1
	opts.Seed = 42
	return opts
}

func press(e *Engine, a core.Action) {
	e.Controller().Activate(a)
	e.Update()
	e.Controller().Deactivate(a)
}

func TestNewValidatesOptions(t *testing.T) {
	opts := testOptions()
	opts.Width = 0
	if _, err := New(opts); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("zero width: err = %v, want ErrInvalidOptions", err)
	}

	opts = testOptions()
	opts.Gravity = 0
	if _, err := New(opts); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("zero gravity: err = %v, want ErrInvalidOptions", err)
	}

	opts = testOptions()
	opts.RotationSystem = "betamax"
	if _, err := New(opts); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("unknown rotation system: err = %v, want ErrUnknownVariant", err)
	}

	opts = testOptions()
	opts.Randomizer = "nes"
	if _, err := New(opts); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("unknown randomizer: err = %v, want ErrUnknownVariant", err)
	}
}

func TestHardDropFreezesImmediately(t *testing.T) {
	e, err := New(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	press(e, core.HardDrop)

	stats := e.Stats()
	if stats.Pieces != 1 {
		t.Fatalf("pieces placed = %d, want 1", stats.Pieces)
	}

	// Something must now be frozen on the bottom row.
	bottom := false
	for x := 0; x < e.Field().Width(); x++ {
		if e.Field().Occupied(x, e.Field().Height()-1) {
			bottom = true
		}
	}
	if !bottom {
		t.Error("nothing frozen on the bottom row after hard drop")
	}

	// And a fresh piece is active at the spawn anchor.
	sx, sy := e.Field().Spawn()
	if e.Piece().X != sx || e.Piece().Y != sy {
		t.Errorf("next piece at (%d, %d), want spawn (%d, %d)", e.Piece().X, e.Piece().Y, sx, sy)
	}
}

func TestDASWalksToWall(t *testing.T) {
	e, err := New(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	e.Controller().Activate(core.MoveLeft)
	for i := 0; i < 20; i++ {
		e.Update()
	}

	if e.Piece().Shift(e.Field(), core.Left) {
		t.Error("piece not against the left wall after holding left")
	}
}

func TestDASThreshold(t *testing.T) {
	e, err := New(testOptions()) // DAS 3, ARR 1
	if err != nil {
		t.Fatal(err)
	}
	start := e.Piece().X

	e.Controller().Activate(core.MoveLeft)

	// Tick 1: the initial press moves one cell.
	e.Update()
	if e.Piece().X != start-1 {
		t.Fatalf("after press tick X = %d, want %d", e.Piece().X, start-1)
	}

	// Ticks 2 and 3 are inside the DAS window: no movement.
	e.Update()
	e.Update()
	if e.Piece().X != start-1 {
		t.Fatalf("movement during DAS charge: X = %d", e.Piece().X)
	}

	// Tick 4 crosses the threshold and auto-shift begins.
	e.Update()
	if e.Piece().X != start-2 {
		t.Fatalf("after DAS X = %d, want %d", e.Piece().X, start-2)
	}
}

func TestSoftDropAcceleratesGravity(t *testing.T) {
	e, err := New(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	start := e.Piece().Y

	e.Controller().Activate(core.SoftDrop)
	e.Update()
	e.Update()

	if e.Piece().Y != start+2 {
		t.Errorf("after two soft-drop ticks Y = %d, want %d", e.Piece().Y, start+2)
	}
}

func TestRotationIsEdgeTriggered(t *testing.T) {
	e, err := New(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	e.Controller().Activate(core.RotateRight)
	for i := 0; i < 5; i++ {
		e.Update()
	}

	// Holding the key must rotate exactly once.
	if e.Piece().R != core.R90 {
		t.Errorf("rotation = %v after holding rotate, want R90", e.Piece().R)
	}
}

func TestHoldSwapAndLimit(t *testing.T) {
	opts := testOptions()
	e, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	first := e.Piece().Type

	press(e, core.Hold)
	if e.Hold() != first {
		t.Fatalf("hold slot = %v, want %v", e.Hold(), first)
	}
	if e.Piece().Type == core.PieceNone {
		t.Fatal("no active piece after hold")
	}

	// A second hold for the same piece lifetime is ignored.
	second := e.Piece().Type
	press(e, core.Hold)
	if e.Hold() != first || e.Piece().Type != second {
		t.Error("hold limit not enforced")
	}
}

func TestHoldDisabled(t *testing.T) {
	opts := testOptions()
	opts.HasHold = false
	e, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}

	press(e, core.Hold)
	if e.Hold() != core.PieceNone {
		t.Error("hold succeeded while disabled")
	}
}

func TestLockDelayDefersLock(t *testing.T) {
	base := testOptions()
	base.Gravity = 1

	ticksToLock := func(lockDelay int) uint64 {
		opts := base
		opts.LockDelay = lockDelay
		e, err := New(opts)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 200; i++ {
			e.Update()
			if e.Stats().Pieces == 1 {
				return e.Ticks()
			}
		}
		t.Fatal("piece never locked")
		return 0
	}

	without := ticksToLock(0)
	with := ticksToLock(5)
	if with != without+5 {
		t.Errorf("lock delay 5 locked at tick %d, lock delay 0 at %d", with, without)
	}
}

func TestEntryDelayBetweenPieces(t *testing.T) {
	opts := testOptions()
	opts.ARE = 4
	e, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}

	press(e, core.HardDrop)

	// During entry delay there is no live piece.
	if e.Piece().Type != core.PieceNone {
		t.Fatal("active piece present during entry delay")
	}

	for i := 0; i < 4; i++ {
		e.Update()
	}
	if e.Piece().Type == core.PieceNone {
		t.Error("no piece spawned after entry delay elapsed")
	}
}

func TestLineClearStatistics(t *testing.T) {
	e, err := New(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	// Fill the ghost's bottom row around the piece so the drop completes
	// exactly one line.
	g := e.Piece().Ghost(e.Field())
	bottom := 0
	for _, c := range g.Cells() {
		if c.Y > bottom {
			bottom = c.Y
		}
	}
	for x := 0; x < e.Field().Width(); x++ {
		if !g.Occupies(x, bottom) {
			e.Field().Set(x, bottom, core.PieceJ)
		}
	}

	press(e, core.HardDrop)

	stats := e.Stats()
	if stats.Lines != 1 || stats.Singles != 1 {
		t.Errorf("stats = %+v, want one single", stats)
	}
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	e, err := New(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	// Wall off everything below the spawn rows, leaving one column open
	// so no row ever completes. The drop freezes the piece in place and
	// the next spawn lands on top of it.
	for y := 2; y < e.Field().Height(); y++ {
		for x := 1; x < e.Field().Width(); x++ {
			e.Field().Set(x, y, core.PieceL)
		}
	}

	press(e, core.HardDrop)

	if e.Running() {
		t.Fatal("game still running after blocked spawn")
	}
	stats := e.Stats()
	if stats.Pieces != 1 || stats.Lines != 0 {
		t.Errorf("stats = %+v, want one piece and zero lines", stats)
	}

	// Further updates are no-ops.
	ticks := e.Ticks()
	e.Update()
	if e.Ticks() != ticks {
		t.Error("update advanced a finished game")
	}
}

func TestQuitStopsEngine(t *testing.T) {
	e, err := New(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	press(e, core.Quit)
	if e.Running() {
		t.Error("engine still running after quit")
	}
}

func scriptedEvents() []InputEvent {
	return []InputEvent{
		{Tick: 0, Action: core.MoveLeft, Press: true},
		{Tick: 6, Action: core.MoveLeft, Press: false},
		{Tick: 7, Action: core.RotateRight, Press: true},
		{Tick: 8, Action: core.RotateRight, Press: false},
		{Tick: 10, Action: core.HardDrop, Press: true},
		{Tick: 11, Action: core.HardDrop, Press: false},
		{Tick: 14, Action: core.MoveRight, Press: true},
		{Tick: 20, Action: core.MoveRight, Press: false},
		{Tick: 22, Action: core.HardDrop, Press: true},
		{Tick: 23, Action: core.HardDrop, Press: false},
	}
}

func runScript(t *testing.T, opts Options, events []InputEvent, ticks uint64) *Engine {
	t.Helper()
	e, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	i := 0
	for tick := uint64(0); tick < ticks && e.Running(); tick++ {
		for i < len(events) && events[i].Tick == tick {
			if events[i].Press {
				e.Controller().Activate(events[i].Action)
			} else {
				e.Controller().Deactivate(events[i].Action)
			}
			i++
		}
		e.Update()
	}
	return e
}

func TestDeterministicRuns(t *testing.T) {
	opts := testOptions()
	opts.Gravity = 3

	a := runScript(t, opts, scriptedEvents(), 30)
	b := runScript(t, opts, scriptedEvents(), 30)

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("identical seed and input produced different states")
	}
}

func TestHistoryReplayReproducesGame(t *testing.T) {
	opts := testOptions()
	opts.Gravity = 3

	live := runScript(t, opts, scriptedEvents(), 30)

	replayed, err := Replay(opts, live.Events(), live.Ticks())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(live.Snapshot(), replayed.Snapshot()) {
		t.Error("replay diverged from the recorded game")
	}
}
