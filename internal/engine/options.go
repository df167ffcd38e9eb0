package engine

import (
	"errors"
	"fmt"
)

// Named errors returned from New. Callers can match them with errors.Is to
// distinguish a typo'd variant name from an out-of-range number.
var (
	// ErrInvalidOptions reports a numeric option outside its valid range.
	ErrInvalidOptions = errors.New("engine: invalid options")

	// ErrUnknownVariant reports a rotation system, wallkick or randomizer
	// name missing from its registry.
	ErrUnknownVariant = errors.New("engine: unknown variant")
)

// Options configures an engine session. All values are immutable once the
// engine has been constructed.
//
// Every duration is measured in ticks, not wall time. The caller owns the
// tick rate, so the engine stays deterministic at any speed.
type Options struct {
	// Field geometry. Height counts all rows including the hidden ones;
	// pieces spawn at (SpawnX, SpawnY) in the hidden region.
	Width  int
	Height int
	Hidden int
	SpawnX int
	SpawnY int

	// Named variants, resolved against their registries at construction.
	RotationSystem string
	Wallkick       string
	Randomizer     string

	// Seed for the randomizer. Identical seeds give identical sequences.
	Seed int64

	// DAS is how many ticks a direction must be held before it begins to
	// auto-repeat; ARR is the repeat interval after that, with 0 meaning
	// every tick.
	DAS int
	ARR int

	// ARE is the entry delay between a lock and the next spawn. Zero
	// spawns immediately.
	ARE int

	// Gravity is the number of ticks per automatic one-row fall.
	// SoftDropSpeed replaces it while soft drop is held.
	Gravity       int
	SoftDropSpeed int

	// LockDelay is how many ticks a piece may rest on a surface before it
	// freezes. A successful move or rotation resets the countdown.
	LockDelay int

	HasHold     bool
	HoldLimit   int
	HasHardDrop bool

	PreviewCount int
}

// DefaultOptions returns the standard configuration: a 10-wide guideline
// field with SRS rotation and a bag randomizer.
func DefaultOptions() Options {
	return Options{
		Width:          10,
		Height:         25,
		Hidden:         3,
		SpawnX:         3,
		SpawnY:         0,
		RotationSystem: "srs",
		Wallkick:       "srs",
		Randomizer:     "bag",
		Seed:           0,
		DAS:            11,
		ARR:            1,
		ARE:            0,
		Gravity:        60,
		SoftDropSpeed:  1,
		LockDelay:      30,
		HasHold:        true,
		HoldLimit:      1,
		HasHardDrop:    true,
		PreviewCount:   3,
	}
}

// Validate checks the numeric ranges. Variant names are resolved separately
// by New, which consults the registries.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidOptions, o.Width)
	case o.Height <= 0:
		return fmt.Errorf("%w: height %d", ErrInvalidOptions, o.Height)
	case o.Hidden < 0 || o.Hidden >= o.Height:
		return fmt.Errorf("%w: hidden rows %d with height %d", ErrInvalidOptions, o.Hidden, o.Height)
	case o.SpawnX < 0 || o.SpawnX >= o.Width:
		return fmt.Errorf("%w: spawn x %d", ErrInvalidOptions, o.SpawnX)
	case o.SpawnY < 0 || o.SpawnY >= o.Height:
		return fmt.Errorf("%w: spawn y %d", ErrInvalidOptions, o.SpawnY)
	case o.DAS < 0:
		return fmt.Errorf("%w: das %d", ErrInvalidOptions, o.DAS)
	case o.ARR < 0:
		return fmt.Errorf("%w: arr %d", ErrInvalidOptions, o.ARR)
	case o.ARE < 0:
		return fmt.Errorf("%w: are %d", ErrInvalidOptions, o.ARE)
	case o.Gravity < 1:
		return fmt.Errorf("%w: gravity %d", ErrInvalidOptions, o.Gravity)
	case o.SoftDropSpeed < 1:
		return fmt.Errorf("%w: soft drop speed %d", ErrInvalidOptions, o.SoftDropSpeed)
	case o.LockDelay < 0:
		return fmt.Errorf("%w: lock delay %d", ErrInvalidOptions, o.LockDelay)
	case o.HoldLimit < 0:
		return fmt.Errorf("%w: hold limit %d", ErrInvalidOptions, o.HoldLimit)
	case o.PreviewCount < 0:
		return fmt.Errorf("%w: preview count %d", ErrInvalidOptions, o.PreviewCount)
	}
	return nil
}
