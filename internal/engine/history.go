package engine

import "github.com/tiehuis/tetrs/internal/core"

// InputEvent is a single press or release observed at a given tick. A
// recorded sequence of events plus the engine options and seed is enough to
// reproduce a game bit for bit.
type InputEvent struct {
	Tick   uint64      `yaml:"tick"`
	Action core.Action `yaml:"action"`
	Press  bool        `yaml:"press"`
}

// History journals controller transitions as the game runs. The engine
// observes the controller once per tick, before durations advance, so the
// recorded tick matches the tick the caller fed the event in on.
type History struct {
	events []InputEvent
	last   [core.ActionCount]bool
}

// Observe diffs the controller's active set against the previous tick and
// records one event per transition.
func (h *History) Observe(c *core.Controller, tick uint64) {
	for i := 0; i < core.ActionCount; i++ {
		a := core.Action(i)
		cur := c.Active(a)
		if cur != h.last[i] {
			h.events = append(h.events, InputEvent{Tick: tick, Action: a, Press: cur})
			h.last[i] = cur
		}
	}
}

// Events returns the recorded sequence in order.
func (h *History) Events() []InputEvent {
	return h.events
}

// Replay constructs a fresh engine from opts and drives it for the given
// number of ticks, feeding each recorded event in before the tick it was
// captured on. Returns the resulting engine for inspection.
func Replay(opts Options, events []InputEvent, ticks uint64) (*Engine, error) {
	e, err := New(opts)
	if err != nil {
		return nil, err
	}

	i := 0
	for t := uint64(0); t < ticks && e.Running(); t++ {
		for i < len(events) && events[i].Tick == t {
			if events[i].Press {
				e.Controller().Activate(events[i].Action)
			} else {
				e.Controller().Deactivate(events[i].Action)
			}
			i++
		}
		e.Update()
	}
	return e, nil
}
