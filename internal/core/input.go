package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the engine to work with high-level intents rather
// than raw input.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateLeft
	RotateRight
	Hold
	Quit
)

// ActionCount is the number of distinct actions a controller tracks.
const ActionCount = 8

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case SoftDrop:
		return "SoftDrop"
	case HardDrop:
		return "HardDrop"
	case RotateLeft:
		return "RotateLeft"
	case RotateRight:
		return "RotateRight"
	case Hold:
		return "Hold"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Controller tracks which actions are currently held and for how long, at
// tick granularity. It acts as the bridge between any physical input layer
// and the engine: a key press maps to Activate and a key release to
// Deactivate.
//
// Update must be called exactly once per engine tick, before the engine
// reads the controller for that tick. Time(a) == 1 therefore means "pressed
// since the previous tick" and is the edge-trigger condition; DAS thresholds
// compare against post-increment durations.
type Controller struct {
	active [ActionCount]bool
	time   [ActionCount]uint64
}

// NewController returns a controller with all actions inactive and all
// durations zeroed.
func NewController() *Controller {
	return &Controller{}
}

// Activate marks the action as held. Activating an already-active action
// has no effect.
func (c *Controller) Activate(a Action) {
	c.active[a] = true
}

// Deactivate marks the action as released. Deactivating an already-inactive
// action has no effect. The duration is reset by the next Update.
func (c *Controller) Deactivate(a Action) {
	c.active[a] = false
}

// DeactivateAll releases every action. This is useful when input is
// recomputed from scratch each frame rather than delivered as events.
// Durations are not touched until the next Update.
func (c *Controller) DeactivateAll() {
	for i := range c.active {
		c.active[i] = false
	}
}

// Update advances every action's timer by one tick: active actions are
// incremented, inactive actions are zeroed.
func (c *Controller) Update() {
	for i := range c.active {
		if c.active[i] {
			c.time[i]++
		} else {
			c.time[i] = 0
		}
	}
}

// Active reports whether the action is currently held.
func (c *Controller) Active(a Action) bool {
	return c.active[a]
}

// Time returns how many ticks the action has been held for.
func (c *Controller) Time(a Action) uint64 {
	return c.time[a]
}
