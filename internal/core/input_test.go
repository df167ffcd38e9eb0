package core

import "testing"

func TestControllerTiming(t *testing.T) {
	c := NewController()

	c.Activate(MoveLeft)
	if !c.Active(MoveLeft) {
		t.Fatal("MoveLeft should be active after Activate")
	}
	if c.Time(MoveLeft) != 0 {
		t.Errorf("Time before first Update = %d, want 0", c.Time(MoveLeft))
	}

	c.Update()
	if c.Time(MoveLeft) != 1 {
		t.Errorf("Time after first Update = %d, want 1", c.Time(MoveLeft))
	}

	c.Deactivate(MoveLeft)
	if c.Time(MoveLeft) != 1 {
		t.Errorf("Deactivate should not clear duration until Update, got %d", c.Time(MoveLeft))
	}

	c.Update()
	if c.Time(MoveLeft) != 0 {
		t.Errorf("Time after release Update = %d, want 0", c.Time(MoveLeft))
	}
}

func TestControllerRepeatedActivate(t *testing.T) {
	c := NewController()

	c.Activate(RotateRight)
	c.Update()
	c.Update()

	// Activating an already-held action must not reset its duration.
	c.Activate(RotateRight)
	c.Update()
	if c.Time(RotateRight) != 3 {
		t.Errorf("Time = %d, want 3", c.Time(RotateRight))
	}

	// Release then re-press resets the duration on the next Update.
	c.Deactivate(RotateRight)
	c.Update()
	c.Activate(RotateRight)
	c.Update()
	if c.Time(RotateRight) != 1 {
		t.Errorf("Time after re-press = %d, want 1", c.Time(RotateRight))
	}
}

func TestControllerIndependentActions(t *testing.T) {
	c := NewController()

	c.Activate(MoveLeft)
	c.Update()
	c.Activate(MoveRight)
	c.Update()
	c.Update()

	if c.Time(MoveLeft) != 3 {
		t.Errorf("MoveLeft time = %d, want 3", c.Time(MoveLeft))
	}
	if c.Time(MoveRight) != 2 {
		t.Errorf("MoveRight time = %d, want 2", c.Time(MoveRight))
	}
}

func TestControllerDeactivateAll(t *testing.T) {
	c := NewController()

	c.Activate(MoveLeft)
	c.Activate(SoftDrop)
	c.Activate(Hold)
	c.DeactivateAll()

	for _, a := range []Action{MoveLeft, SoftDrop, Hold} {
		if c.Active(a) {
			t.Errorf("%v still active after DeactivateAll", a)
		}
	}
}

func TestRotationWrap(t *testing.T) {
	if R270.Clockwise() != R0 {
		t.Errorf("R270.Clockwise() = %v, want R0", R270.Clockwise())
	}
	if R0.Anticlockwise() != R270 {
		t.Errorf("R0.Anticlockwise() = %v, want R270", R0.Anticlockwise())
	}

	r := R0
	for i := 0; i < RotationCount; i++ {
		r = r.Clockwise()
	}
	if r != R0 {
		t.Errorf("four clockwise rotations = %v, want R0", r)
	}
}
