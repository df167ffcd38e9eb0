package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tiehuis/tetrs/internal/engine"
)

// Recording captures everything needed to reproduce a game bit for bit: the
// configuration, the seed, how many ticks ran and every input event.
type Recording struct {
	Game   GameConfig          `yaml:"game"`
	Seed   int64               `yaml:"seed"`
	Ticks  uint64              `yaml:"ticks"`
	Events []engine.InputEvent `yaml:"events"`
}

// SaveRecording writes the recording to path as YAML.
func SaveRecording(path string, rec Recording) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recording %s: %w", path, err)
	}
	return nil
}

// LoadRecording reads a recording written by SaveRecording.
func LoadRecording(path string) (Recording, error) {
	var rec Recording
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("failed to read recording %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("failed to parse recording %s: %w", path, err)
	}
	return rec, nil
}

// Replay reconstructs and runs the recorded game, returning the resulting
// engine for inspection.
func (r Recording) Replay() (*engine.Engine, error) {
	return engine.Replay(r.Game.ToOptions(r.Seed), r.Events, r.Ticks)
}
