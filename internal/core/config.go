package core

import "time"

// Runtime defaults used when a host does not know better.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what a host tells a game at reset: the terminal size in
// cells, the tick rate and the run's RNG seed. A zero seed asks the host
// to pick one from the clock.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int
	Seed     int64
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// TickInterval is the nominal time between ticks. Games fall back to it
// when a frame carries no elapsed time.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the part of a game's state a host acts on. GameOver covers
// every finished run, won or lost.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by each Step.
type StepResult struct {
	State GameState
}
