package input

// Snapshot is an immutable view of input latched at the start of a tick
type Snapshot struct {
	held    uint32
	pressed uint32
}

var _ Source = Snapshot{}

func (s Snapshot) Held(a Action) bool {
	return s.held&(1<<a) != 0
}

func (s Snapshot) Pressed(a Action) bool {
	return s.pressed&(1<<a) != 0
}

// WithHeld returns a copy with the actions held
func (s Snapshot) WithHeld(actions ...Action) Snapshot {
	for _, a := range actions {
		s.held |= 1 << a
	}
	return s
}

// WithPressed returns a copy with the actions pressed this tick, which also holds them
func (s Snapshot) WithPressed(actions ...Action) Snapshot {
	for _, a := range actions {
		s.pressed |= 1 << a
		s.held |= 1 << a
	}
	return s
}

// Empty reports whether nothing is held or pressed
func (s Snapshot) Empty() bool {
	return s.held == 0 && s.pressed == 0
}
