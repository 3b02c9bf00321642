package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A held
// action stays down while repeats keep arriving; the first window covers the
// keyboard's auto-repeat delay, later windows its repeat interval.
const (
	DefaultFirstHold  = 550 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to game actions and emulates
// release edges for held actions.
type KeyMapper struct {
	firstHold  time.Duration
	repeatHold time.Duration
	held       map[core.Action]time.Time // release deadline per held action
}

// NewKeyMapper creates a new key mapper with default bindings and hold windows.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultFirstHold, DefaultRepeatHold)
}

// NewKeyMapperWithHold creates a key mapper with custom hold windows.
func NewKeyMapperWithHold(first, repeat time.Duration) *KeyMapper {
	return &KeyMapper{
		firstHold:  first,
		repeatHold: repeat,
		held:       make(map[core.Action]time.Time),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionThrust, false
	case "s", "down":
		return core.ActionReverse, false
	case "a", "left":
		return core.ActionRotateLeft, false
	case "d", "right":
		return core.ActionRotateRight, false
	case " ":
		return core.ActionFire, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "tab":
		return core.ActionScores, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message received at now.
// A held action is pressed on its first key event only; repeats just extend
// its hold window. Returns the mapped action.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) core.Action {
	action, _ := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case action.Held():
		if _, down := km.held[action]; down {
			km.held[action] = now.Add(km.repeatHold)
			break
		}
		km.held[action] = now.Add(km.firstHold)
		frame.Set(action)
	default:
		frame.Set(action)
	}
	return action
}

// Expire releases every held action whose window ended before now.
func (km *KeyMapper) Expire(now time.Time, frame *core.InputFrame) {
	for action, deadline := range km.held {
		if now.After(deadline) {
			delete(km.held, action)
			frame.Release(action)
		}
	}
}

// ReleaseAll releases every held action, e.g. when the game loses focus.
func (km *KeyMapper) ReleaseAll(frame *core.InputFrame) {
	for action := range km.held {
		delete(km.held, action)
		frame.Release(action)
	}
}

// IsHeld reports whether an action is currently held down.
func (km *KeyMapper) IsHeld(a core.Action) bool {
	_, ok := km.held[a]
	return ok
}
