package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionThrust             // W, Up arrow - accelerate forward (held)
	ActionReverse            // S, Down arrow - accelerate backward (held)
	ActionRotateLeft         // A, Left arrow - rotate counter-clockwise (held)
	ActionRotateRight        // D, Right arrow - rotate clockwise (held)
	ActionFire               // Space - fire one shot (edge)
	ActionPause              // P - pause/unpause game
	ActionRestart            // R - restart game after game over
	ActionScores             // Tab - open the scoreboard
	ActionQuit               // Q, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionReverse:
		return "Reverse"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a level intent (pressed until released)
// rather than a one-shot trigger.
func (a Action) Held() bool {
	switch a {
	case ActionThrust, ActionReverse, ActionRotateLeft, ActionRotateRight:
		return true
	default:
		return false
	}
}

// InputFrame is the input state for one simulation tick.
//
// Pressed holds one-shot triggers that fired since the last tick. Released
// holds level intents whose key went up since the last tick. Level intents
// that are pressed stay in Pressed for the tick the press arrived; games keep
// the held state themselves until a release edge is delivered.
type InputFrame struct {
	Pressed  map[Action]bool
	Released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed:  make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Release marks a level action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// HasReleased returns true if the given action was released this frame.
func (f InputFrame) HasReleased(a Action) bool {
	return f.Released[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Released {
		delete(f.Released, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Released {
		clone.Released[k] = v
	}
	return clone
}
