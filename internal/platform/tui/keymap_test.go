package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('w'), core.ActionThrust, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{runeKey('s'), core.ActionReverse, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionReverse, false},
		{runeKey('a'), core.ActionRotateLeft, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{runeKey('d'), core.ActionRotateRight, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{runeKey('p'), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestHeldActionPressedOnce(t *testing.T) {
	km := NewKeyMapperWithHold(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(100, 0)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('w'), t0, &frame)
	assert.True(t, frame.Has(core.ActionThrust))
	assert.True(t, km.IsHeld(core.ActionThrust))

	// Auto-repeats extend the hold without another press edge
	frame.Clear()
	km.MapKeyToFrame(runeKey('w'), t0.Add(450*time.Millisecond), &frame)
	assert.False(t, frame.Has(core.ActionThrust))
	km.Expire(t0.Add(520*time.Millisecond), &frame)
	assert.False(t, frame.HasReleased(core.ActionThrust))
	assert.True(t, km.IsHeld(core.ActionThrust))
}

func TestHeldActionReleasedAfterWindow(t *testing.T) {
	km := NewKeyMapperWithHold(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(100, 0)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('a'), t0, &frame)

	// Still inside the first-press window
	frame.Clear()
	km.Expire(t0.Add(500*time.Millisecond), &frame)
	assert.False(t, frame.HasReleased(core.ActionRotateLeft))

	km.Expire(t0.Add(501*time.Millisecond), &frame)
	assert.True(t, frame.HasReleased(core.ActionRotateLeft))
	assert.False(t, km.IsHeld(core.ActionRotateLeft))

	// Released once only
	frame.Clear()
	km.Expire(t0.Add(time.Second), &frame)
	assert.False(t, frame.HasReleased(core.ActionRotateLeft))

	// A new press is a new edge
	km.MapKeyToFrame(runeKey('a'), t0.Add(2*time.Second), &frame)
	assert.True(t, frame.Has(core.ActionRotateLeft))
}

func TestRepeatWindowIsShorter(t *testing.T) {
	km := NewKeyMapperWithHold(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(100, 0)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('d'), t0, &frame)
	km.MapKeyToFrame(runeKey('d'), t0.Add(400*time.Millisecond), &frame)

	frame.Clear()
	km.Expire(t0.Add(550*time.Millisecond), &frame)
	assert.True(t, frame.HasReleased(core.ActionRotateRight))
}

func TestTriggerActionsAreNotHeld(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(100, 0)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, t0, &frame)
	km.MapKeyToFrame(runeKey('p'), t0, &frame)

	assert.True(t, frame.Has(core.ActionFire))
	assert.True(t, frame.Has(core.ActionPause))
	assert.False(t, km.IsHeld(core.ActionFire))

	frame.Clear()
	km.Expire(t0.Add(time.Hour), &frame)
	assert.Empty(t, frame.Released)
}

func TestReleaseAll(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(100, 0)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('w'), t0, &frame)
	km.MapKeyToFrame(runeKey('d'), t0, &frame)

	frame.Clear()
	km.ReleaseAll(&frame)
	assert.True(t, frame.HasReleased(core.ActionThrust))
	assert.True(t, frame.HasReleased(core.ActionRotateRight))
	assert.False(t, km.IsHeld(core.ActionThrust))
}
