// Package engine composes the field, piece, controller, randomizer and kick
// tables into the per-tick game state machine. One call to Update advances
// the game by exactly one tick; the engine performs no I/O, reads no clocks
// and owns all of its state, so identical options, seed and input events
// always reproduce the same game.
package engine

import (
	"fmt"

	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/randomizer"
	"github.com/tiehuis/tetrs/internal/rotation"
	"github.com/tiehuis/tetrs/internal/wallkick"
)

// status is the engine's coarse sub-state between spawns.
type status int

const (
	statusFalling status = iota
	statusEntryDelay
)

// Engine is the orchestrator: it owns one field, one active piece, the hold
// slot, a controller, a randomizer and the session statistics. External
// callers feed input through Controller and drive the game with Update.
type Engine struct {
	opts Options

	field      *Field
	piece      *Piece
	hold       core.PieceType
	controller *core.Controller
	rs         rotation.System
	kick       wallkick.Kick
	rand       randomizer.Randomizer

	status       status
	areTimer     int
	gravityTimer int
	lockTimer    int
	holdUsed     int

	running bool
	ticks   uint64
	stats   Statistics
	history History
}

// New validates the options, resolves the named variants and returns an
// engine with the first piece already spawned.
func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rs, err := rotation.New(opts.RotationSystem)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, err)
	}
	kick, err := wallkick.New(opts.Wallkick)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, err)
	}
	rnd, err := randomizer.New(opts.Randomizer, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, err)
	}

	e := &Engine{
		opts:       opts,
		field:      NewField(opts.Width, opts.Height, opts.Hidden, opts.SpawnX, opts.SpawnY),
		hold:       core.PieceNone,
		controller: core.NewController(),
		rs:         rs,
		kick:       kick,
		rand:       rnd,
		running:    true,
	}
	e.spawn()
	return e, nil
}

// Update advances the game by one tick. It is a no-op once running is
// false. The caller must apply this tick's controller events before calling.
func (e *Engine) Update() {
	if !e.running {
		return
	}

	e.history.Observe(e.controller, e.ticks)
	e.controller.Update()

	if e.controller.Time(core.Quit) == 1 {
		e.running = false
		e.ticks++
		return
	}

	// The controller keeps advancing through entry delay so DAS charges
	// across spawns, but edge-triggered actions pressed during the delay
	// will be past their trigger tick by the time the piece arrives.
	switch e.status {
	case statusEntryDelay:
		e.areTimer--
		if e.areTimer <= 0 {
			e.spawn()
		}
	case statusFalling:
		e.updateFalling()
	}

	e.ticks++
}

func (e *Engine) updateFalling() {
	c := e.controller

	// Horizontal movement with DAS. When both directions are held the
	// most recent press wins.
	switch {
	case c.Active(core.MoveLeft) && c.Active(core.MoveRight):
		if c.Time(core.MoveLeft) < c.Time(core.MoveRight) {
			e.tryShift(core.Left, c.Time(core.MoveLeft))
		} else {
			e.tryShift(core.Right, c.Time(core.MoveRight))
		}
	case c.Active(core.MoveLeft):
		e.tryShift(core.Left, c.Time(core.MoveLeft))
	case c.Active(core.MoveRight):
		e.tryShift(core.Right, c.Time(core.MoveRight))
	}

	// Rotations fire once per press.
	if c.Time(core.RotateLeft) == 1 {
		e.tryRotate(core.R270)
	}
	if c.Time(core.RotateRight) == 1 {
		e.tryRotate(core.R90)
	}

	if c.Time(core.Hold) == 1 {
		e.tryHold()
		if !e.running {
			return
		}
	}

	if e.opts.HasHardDrop && c.Time(core.HardDrop) == 1 {
		e.piece.ShiftExtend(e.field, core.Down)
		e.lock()
		return
	}

	// Gravity, accelerated while soft drop is held. The press tick itself
	// drops one row immediately.
	interval := e.opts.Gravity
	if c.Active(core.SoftDrop) {
		interval = e.opts.SoftDropSpeed
		if c.Time(core.SoftDrop) == 1 {
			e.gravityTimer = interval
		}
	}
	e.gravityTimer++
	if e.gravityTimer >= interval {
		e.gravityTimer = 0
		e.piece.Shift(e.field, core.Down)
	}

	// Lock delay counts only while the piece rests on a surface. A
	// successful move or rotation above resets it (move-reset policy).
	if e.resting() {
		e.lockTimer++
		if e.lockTimer > e.opts.LockDelay {
			e.lock()
		}
	} else {
		e.lockTimer = 0
	}
}

// autoShift implements DAS: an initial step on the press tick, nothing until
// the threshold passes, then one step per ARR interval (every tick if ARR is
// zero).
func (e *Engine) autoShift(held uint64) bool {
	das, arr := uint64(e.opts.DAS), uint64(e.opts.ARR)
	switch {
	case held == 1:
		return true
	case held <= das:
		return false
	case arr == 0:
		return true
	default:
		return (held-das-1)%arr == 0
	}
}

func (e *Engine) tryShift(d core.Direction, held uint64) {
	if !e.autoShift(held) {
		return
	}
	if e.piece.Shift(e.field, d) {
		e.lockTimer = 0
	}
}

func (e *Engine) tryRotate(d core.Rotation) {
	if e.piece.RotateWithKick(e.field, e.kick, d) {
		e.lockTimer = 0
	}
}

// tryHold swaps the active piece with the hold slot, drawing a fresh piece
// from the randomizer when the slot is empty. Limited to HoldLimit uses per
// piece lifetime; the counter resets on the next natural spawn.
func (e *Engine) tryHold() {
	if !e.opts.HasHold || e.holdUsed >= e.opts.HoldLimit {
		return
	}
	e.holdUsed++

	next := e.hold
	e.hold = e.piece.Type
	if next == core.PieceNone {
		next = e.rand.Next()
	}

	p := NewPiece(next, e.field, e.rs)
	if p.Collides(e.field) {
		e.running = false
		return
	}
	e.piece = p
	e.gravityTimer = 0
	e.lockTimer = 0
}

func (e *Engine) resting() bool {
	return e.piece.collidesAt(e.field, 0, 1, e.piece.R)
}

// lock freezes the active piece, applies line clears to the statistics and
// either enters entry delay or spawns immediately.
func (e *Engine) lock() {
	e.field.Freeze(e.piece)
	e.stats.Pieces++

	n := e.field.ClearLines()
	e.stats.Lines += uint64(n)
	switch n {
	case 1:
		e.stats.Singles++
	case 2:
		e.stats.Doubles++
	case 3:
		e.stats.Triples++
	case 4:
		e.stats.Fours++
	}

	if e.opts.ARE > 0 {
		e.status = statusEntryDelay
		e.areTimer = e.opts.ARE
		return
	}
	e.spawn()
}

// spawn draws the next piece and places it at the spawn anchor. A spawn
// collision ends the game, leaving all other state untouched for
// inspection.
func (e *Engine) spawn() {
	p := NewPiece(e.rand.Next(), e.field, e.rs)
	e.piece = p
	e.status = statusFalling
	e.gravityTimer = 0
	e.lockTimer = 0
	e.holdUsed = 0

	if p.Collides(e.field) {
		e.running = false
	}
}

// Controller returns the input controller. Callers activate and deactivate
// actions on it between ticks.
func (e *Engine) Controller() *core.Controller { return e.controller }

// Field returns the playfield. Callers must treat it as read-only.
func (e *Engine) Field() *Field { return e.field }

// Piece returns the active piece. Callers must treat it as read-only.
func (e *Engine) Piece() *Piece { return e.piece }

// Hold returns the held piece type, or PieceNone when the slot is empty.
func (e *Engine) Hold() core.PieceType { return e.hold }

// Preview returns the upcoming pieces, bounded by the configured preview
// count.
func (e *Engine) Preview() []core.PieceType {
	return e.rand.Preview(e.opts.PreviewCount)
}

// Running reports whether the game is still in progress.
func (e *Engine) Running() bool { return e.running }

// Ticks returns the number of ticks processed so far.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Stats returns a copy of the session statistics.
func (e *Engine) Stats() Statistics { return e.stats }

// Options returns the session configuration.
func (e *Engine) Options() Options { return e.opts }

// Events returns the input events journalled so far.
func (e *Engine) Events() []InputEvent { return e.history.Events() }
