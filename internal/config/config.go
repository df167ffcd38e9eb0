// Package config provides YAML-based configuration loading for the game:
// field geometry, rule variants, timing and input recordings.
package config

import "github.com/tiehuis/tetrs/internal/engine"

// GameConfig is the on-disk shape of an engine configuration. It maps one to
// one onto engine.Options minus the seed, which is chosen per game.
type GameConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Rules  RulesConfig  `yaml:"rules"`
	Timing TimingConfig `yaml:"timing"`
}

// FieldConfig defines the playfield geometry. Height counts all rows
// including the hidden region.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Hidden int `yaml:"hidden"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// RulesConfig names the variants and feature toggles for a game.
type RulesConfig struct {
	RotationSystem string `yaml:"rotation_system"`
	Wallkick       string `yaml:"wallkick"`
	Randomizer     string `yaml:"randomizer"`
	HasHold        bool   `yaml:"has_hold"`
	HoldLimit      int    `yaml:"hold_limit"`
	HasHardDrop    bool   `yaml:"has_hard_drop"`
	PreviewCount   int    `yaml:"preview_count"`
}

// TimingConfig holds the frame timings, all in engine ticks.
type TimingConfig struct {
	DAS           int `yaml:"das"`
	ARR           int `yaml:"arr"`
	ARE           int `yaml:"are"`
	Gravity       int `yaml:"gravity"`
	SoftDropSpeed int `yaml:"soft_drop_speed"`
	LockDelay     int `yaml:"lock_delay"`
}

// ToOptions combines the configuration with a seed into engine options. The
// result still goes through engine validation on construction.
func (c GameConfig) ToOptions(seed int64) engine.Options {
	return engine.Options{
		Width:          c.Field.Width,
		Height:         c.Field.Height,
		Hidden:         c.Field.Hidden,
		SpawnX:         c.Field.SpawnX,
		SpawnY:         c.Field.SpawnY,
		RotationSystem: c.Rules.RotationSystem,
		Wallkick:       c.Rules.Wallkick,
		Randomizer:     c.Rules.Randomizer,
		Seed:           seed,
		DAS:            c.Timing.DAS,
		ARR:            c.Timing.ARR,
		ARE:            c.Timing.ARE,
		Gravity:        c.Timing.Gravity,
		SoftDropSpeed:  c.Timing.SoftDropSpeed,
		LockDelay:      c.Timing.LockDelay,
		HasHold:        c.Rules.HasHold,
		HoldLimit:      c.Rules.HoldLimit,
		HasHardDrop:    c.Rules.HasHardDrop,
		PreviewCount:   c.Rules.PreviewCount,
	}
}
