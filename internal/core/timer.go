package core

import "time"

// TimerMode selects whether a timer fires once or keeps repeating.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer accumulates elapsed time against a fixed duration.
// Durations are integer nanoseconds so repeated ticks sum exactly.
type Timer struct {
	duration time.Duration
	mode     TimerMode
	elapsed  time.Duration
	finished bool
	times    int // Periods completed during the last Tick
}

// NewTimer creates a timer of the given duration and mode.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) {
	t.times = 0
	if dt < 0 {
		dt = 0
	}

	switch t.mode {
	case TimerRepeating:
		t.finished = false
		if t.duration <= 0 {
			// A zero period fires once per tick instead of spinning
			t.finished = true
			t.times = 1
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.times = int(t.elapsed / t.duration)
			t.elapsed %= t.duration
			t.finished = true
		}
	default:
		if t.finished {
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.times = 1
		}
	}
}

// Finished reports whether a once timer has completed, or whether a repeating
// timer completed at least one period during the last Tick.
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinished returns the number of periods completed during the last Tick.
func (t *Timer) TimesFinished() int {
	return t.times
}

// Remaining returns the time left in the current period.
func (t *Timer) Remaining() time.Duration {
	r := t.duration - t.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// SetDuration changes the period, keeping the time already accumulated.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}
