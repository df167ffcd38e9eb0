package tui

import "github.com/tiehuis/tetrs/internal/core"

// keyActions maps terminal keys to engine actions.
//
// Terminals report key presses but never releases, so the model pulses each
// press into the controller for a single tick and clears it after the engine
// consumes the tick. Held movement therefore comes from terminal auto-repeat
// rather than from a genuine hold; every repeat event arrives as a fresh
// one-tick press, which the engine treats as an initial step.
var keyActions = map[string]core.Action{
	"left":  core.MoveLeft,
	"h":     core.MoveLeft,
	"a":     core.MoveLeft,
	"right": core.MoveRight,
	"l":     core.MoveRight,
	"d":     core.MoveRight,
	"down":  core.SoftDrop,
	"j":     core.SoftDrop,
	"s":     core.SoftDrop,
	" ":     core.HardDrop,
	"z":     core.RotateLeft,
	"up":    core.RotateRight,
	"x":     core.RotateRight,
	"k":     core.RotateRight,
	"c":     core.Hold,
	"q":     core.Quit,
}
