// Package tui runs bomber games in a terminal with Bubble Tea, locally or
// over SSH. It maps keys to actions, measures real frame time and saves
// finished runs.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// maxFrameTime caps the elapsed time fed into one tick, so a suspended
// terminal does not fast-forward the world on resume.
const maxFrameTime = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick. It carries the wall
// clock time the tick fired at and the ID of the loop that scheduled it.
type TickMsg struct {
	At time.Time
	ID uint64
}

var tickLoops atomic.Uint64

// newTickLoop returns an ID for a new tick loop. A model only accepts
// ticks from its own loop, so a tick still in flight when a session
// switches games cannot start a second loop.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, ID: id}
	})
}

// frameTime returns the time between two ticks, clamped to [0, maxFrameTime].
// A zero previous tick yields zero, which games treat as one nominal tick.
func frameTime(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev)
	if dt < 0 {
		return 0
	}
	if dt > maxFrameTime {
		return maxFrameTime
	}
	return dt
}
