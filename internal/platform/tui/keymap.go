package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// DefaultHoldWindow is how long a movement key stays down after its last
// press or repeat.
const DefaultHoldWindow = 150 * time.Millisecond

// DefaultRepeatWindow is how close together two presses of a one-shot key
// must be to count as one key held down. It covers the terminal's initial
// auto-repeat delay.
const DefaultRepeatWindow = 500 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses and auto-repeats but never releases, so
// movement keys are latched: a direction stays active until no press or
// repeat arrives for the hold window. Every other action fires once on
// the next frame after its key was pressed; auto-repeats of a held key
// are dropped until the key goes quiet for the repeat window.
type KeyMapper struct {
	hold    time.Duration
	repeat  time.Duration
	held    map[core.Action]time.Time
	last    map[core.Action]time.Time // Last press or repeat of one-shot keys
	pending map[core.Action]bool
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultHoldWindow)
}

// NewKeyMapperWithHold creates a key mapper with a custom hold window.
func NewKeyMapperWithHold(hold time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyMapper{
		hold:    hold,
		repeat:  DefaultRepeatWindow,
		held:    make(map[core.Action]time.Time),
		last:    make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "enter":
		return core.ActionPlaceBomb, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// isMovement reports whether a is latched rather than edge-triggered.
func isMovement(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a key press at now.
// Returns the mapped action and whether it's a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time) (core.Action, bool) {
	action, isQuit := km.MapKey(msg)
	switch {
	case isQuit, action == core.ActionNone:
	case isMovement(action):
		km.held[action] = now
		// Switching direction drops the latch on the opposite key
		delete(km.held, opposite(action))
	default:
		prev, seen := km.last[action]
		km.last[action] = now
		if !seen || now.Sub(prev) > km.repeat {
			km.pending[action] = true
		}
	}
	return action, isQuit
}

// Fill sets every action active at now on the frame and consumes the
// one-shot actions.
func (km *KeyMapper) Fill(frame *core.InputFrame, now time.Time) {
	for a, at := range km.held {
		if now.Sub(at) > km.hold {
			delete(km.held, a)
			continue
		}
		frame.Set(a)
	}
	for a := range km.pending {
		frame.Set(a)
		delete(km.pending, a)
	}
}

// Release drops every latched and pending action.
func (km *KeyMapper) Release() {
	clear(km.held)
	clear(km.last)
	clear(km.pending)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
