package sim

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// EntityID identifies an entity for its whole lifetime. IDs are never reused.
type EntityID uint64

// Player is the single controllable entity.
type Player struct {
	ID     EntityID
	Pos    core.Vec2
	Speed  float64 // Tiles per second
	Health int
	Bombs  int

	cooldown time.Duration // Remaining contact-damage immunity
}

// Enemy chases the player.
type Enemy struct {
	ID    EntityID
	Pos   core.Vec2
	Speed float64 // Tiles per second
}

// Bomb counts down and turns into an explosion.
type Bomb struct {
	ID   EntityID
	Pos  core.Vec2
	fuse core.Timer
}

// Remaining returns the fuse time left.
func (b *Bomb) Remaining() time.Duration {
	return b.fuse.Remaining()
}

// Explosion is a transient hazard square that animates through a fixed
// number of frames.
type Explosion struct {
	ID    EntityID
	Pos   core.Vec2
	Frame int

	anim    core.Timer
	born    uint64 // Tick the explosion was spawned on
	expired bool   // Reached the last frame; removed at the end of the tick
}

// Wall is a static map tile.
type Wall struct {
	ID        EntityID
	Pos       core.Vec2
	Blocks    bool
	Breakable bool
}

// Pickup adds one bomb to the player's inventory.
type Pickup struct {
	ID  EntityID
	Pos core.Vec2
}

// Session is the mutable state shared by the resolution passes.
type Session struct {
	Score int
	Clock time.Duration // Simulated time since the world was created
	Tick  uint64
	Over  bool
}
