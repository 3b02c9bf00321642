package sim

// Intent is a logical player input.
type Intent uint8

const (
	IntentThrust Intent = iota
	IntentReverse
	IntentRotateLeft
	IntentRotateRight
	IntentFire
)

func (i Intent) String() string {
	switch i {
	case IntentThrust:
		return "thrust"
	case IntentReverse:
		return "reverse"
	case IntentRotateLeft:
		return "rotate-left"
	case IntentRotateRight:
		return "rotate-right"
	case IntentFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Controls holds the player's intent flags between ticks.
//
// Input code only sets and clears flags here. The simulation polls them once per
// tick. Fire is a trigger: a press queues at most one shot, consumed by the next tick.
type Controls struct {
	held [IntentFire]bool
	fire bool
}

// Press starts an intent, or pulls the trigger for IntentFire.
func (c *Controls) Press(i Intent) {
	switch {
	case i == IntentFire:
		c.fire = true
	case i < IntentFire:
		c.held[i] = true
	}
}

// Release ends a held intent. Releasing fire is a no-op.
func (c *Controls) Release(i Intent) {
	if i < IntentFire {
		c.held[i] = false
	}
}

// Held reports whether a held intent is active.
func (c *Controls) Held(i Intent) bool {
	return i < IntentFire && c.held[i]
}

// FireQueued reports whether a shot is waiting for the next tick.
func (c *Controls) FireQueued() bool {
	return c.fire
}

// takeFire consumes the trigger.
func (c *Controls) takeFire() bool {
	f := c.fire
	c.fire = false
	return f
}

func (c *Controls) reset() {
	*c = Controls{}
}
