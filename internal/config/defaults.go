package config

import (
	_ "embed"
)

//go:embed defaults/tetrs.yaml
var defaultGameYAML []byte

// DefaultConfig returns the default game configuration, mirroring the
// engine's defaults.
func DefaultConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 25,
			Hidden: 3,
			SpawnX: 3,
			SpawnY: 0,
		},
		Rules: RulesConfig{
			RotationSystem: "srs",
			Wallkick:       "srs",
			Randomizer:     "bag",
			HasHold:        true,
			HoldLimit:      1,
			HasHardDrop:    true,
			PreviewCount:   3,
		},
		Timing: TimingConfig{
			DAS:           11,
			ARR:           1,
			ARE:           0,
			Gravity:       60,
			SoftDropSpeed: 1,
			LockDelay:     30,
		},
	}
}
