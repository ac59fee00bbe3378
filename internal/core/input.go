package core

import (
	"strings"
	"time"
)

// Action is a player intent, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPlaceBomb
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionPlaceBomb: "PlaceBomb",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ActionSet is a set of actions.
type ActionSet uint32

func (s ActionSet) String() string {
	var names []string
	for a := ActionNone + 1; a < actionCount; a++ {
		if s&(1<<a) != 0 {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, " ") + "}"
}

// InputFrame is the input for one tick: the actions active during it and
// the real time since the previous tick. A zero Elapsed means one nominal
// tick at the runtime tick rate.
type InputFrame struct {
	Actions ActionSet
	Elapsed time.Duration
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as active. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.Actions |= 1 << a
	}
}

// Has reports whether a is active.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.Actions&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.Actions == 0
}

// Axis folds two opposing actions into -1, 0 or 1.
func (f InputFrame) Axis(neg, pos Action) int {
	v := 0
	if f.Has(neg) {
		v--
	}
	if f.Has(pos) {
		v++
	}
	return v
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
