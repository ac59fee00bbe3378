package core

import (
	"testing"
	"time"
)

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionPlaceBomb)
	f.Set(ActionNone)
	f.Set(Action(99))

	tests := []struct {
		a    Action
		want bool
	}{
		{ActionRight, true},
		{ActionPlaceBomb, true},
		{ActionLeft, false},
		{ActionNone, false},
		{Action(99), false},
	}
	for _, tt := range tests {
		if got := f.Has(tt.a); got != tt.want {
			t.Errorf("Has(%v) = %v, expected %v", tt.a, got, tt.want)
		}
	}
	if got := f.Actions.String(); got != "{Right PlaceBomb}" {
		t.Errorf("Actions = %s, expected {Right PlaceBomb}", got)
	}
}

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    int
	}{
		{"none", nil, 0},
		{"negative", []Action{ActionLeft}, -1},
		{"positive", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.actions {
				f.Set(a)
			}
			if got := f.Axis(ActionLeft, ActionRight); got != tt.want {
				t.Errorf("Axis() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Elapsed = 16 * time.Millisecond
	f.Clear()

	if !f.Empty() || f.Elapsed != 0 {
		t.Errorf("after Clear = %+v, expected empty frame", f)
	}
}

func TestActionString(t *testing.T) {
	if ActionPlaceBomb.String() != "PlaceBomb" {
		t.Errorf("String() = %q, expected PlaceBomb", ActionPlaceBomb.String())
	}
	if Action(-1).String() != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", Action(-1).String())
	}
}
