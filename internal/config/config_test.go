package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tiehuis/tetrs/internal/core"
	"github.com/tiehuis/tetrs/internal/engine"
)

func TestDefaultConfigMatchesEngineDefaults(t *testing.T) {
	got := DefaultConfig().ToOptions(7)
	want := engine.DefaultOptions()
	want.Seed = 7

	if got != want {
		t.Errorf("default config = %+v, want %+v", got, want)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Field.Width != 10 || cfg.Rules.RotationSystem == "" {
		t.Errorf("embedded default looks wrong: %+v", cfg)
	}
	if _, err := engine.New(cfg.ToOptions(1)); err != nil {
		t.Errorf("embedded default rejected by engine: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	body := []byte(`
field:
  width: 8
  height: 20
  hidden: 2
  spawn_x: 2
  spawn_y: 0
rules:
  rotation_system: dtet
  wallkick: dtet
  randomizer: tgm1
  has_hold: false
  hold_limit: 0
  has_hard_drop: true
  preview_count: 1
timing:
  das: 8
  arr: 2
  are: 10
  gravity: 30
  soft_drop_speed: 2
  lock_delay: 15
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Field.Width != 8 || cfg.Rules.Randomizer != "tgm1" || cfg.Timing.ARE != 10 {
		t.Errorf("custom config not applied: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing custom path did not error")
	}
}

func TestRecordingRoundTrip(t *testing.T) {
	rec := Recording{
		Game:  DefaultConfig(),
		Seed:  1234,
		Ticks: 60,
		Events: []engine.InputEvent{
			{Tick: 0, Action: core.MoveLeft, Press: true},
			{Tick: 5, Action: core.MoveLeft, Press: false},
			{Tick: 9, Action: core.HardDrop, Press: true},
			{Tick: 10, Action: core.HardDrop, Press: false},
		},
	}

	path := filepath.Join(t.TempDir(), "game.rec")
	if err := SaveRecording(path, rec); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadRecording(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Seed != rec.Seed || loaded.Ticks != rec.Ticks || len(loaded.Events) != len(rec.Events) {
		t.Fatalf("recording changed on disk: %+v vs %+v", loaded, rec)
	}

	// A loaded recording replays to the same state as the original run.
	a, err := rec.Replay()
	if err != nil {
		t.Fatal(err)
	}
	b, err := loaded.Replay()
	if err != nil {
		t.Fatal(err)
	}
	if a.Stats() != b.Stats() || a.Ticks() != b.Ticks() {
		t.Error("replays of identical recordings diverged")
	}
}
