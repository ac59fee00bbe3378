package sim

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Default tuning values, in world units (one tile = TileSize units).
const (
	DefaultTileSize       = 64.0
	DefaultPlayerSpeed    = 6.0 // tiles per second
	DefaultEnemySpeed     = 0.5 // tiles per second
	DefaultStartHealth    = 100
	DefaultStartBombs     = 5
	DefaultBombFuse       = 2 * time.Second
	DefaultFrameInterval  = 50 * time.Millisecond
	DefaultFrameCount     = 16
	DefaultContactDamage  = 5
	DefaultWallReward     = 10
	DefaultEnemyReward    = 100
	DefaultPickupOneIn    = 4
	DefaultHazardTiles    = 4.0
	DefaultWallBoxPortion = 0.9
)

// Tuning holds the fixed constants the simulation runs on.
type Tuning struct {
	TileSize float64

	PlayerSpeed   float64   // Tiles per second
	PlayerHitbox  core.Vec2 // Used against enemies and pickups
	PlayerWallBox core.Vec2 // Used against walls
	StartHealth   int
	StartBombs    int

	EnemySpeed  float64 // Tiles per second
	EnemyHitbox core.Vec2

	BombFuse time.Duration

	FrameInterval time.Duration // Explosion animation period
	FrameCount    int           // Frames before an explosion is removed
	HazardSize    core.Vec2     // Explosion damage square, fixed for its lifetime

	PickupSize  core.Vec2
	PickupOneIn int // A destroyed wall drops a pickup with chance 1/PickupOneIn; 0 disables

	ContactDamage int
	WallReward    int
	EnemyReward   int

	// Survival spawner. Zero interval disables it.
	EnemySpawnInterval time.Duration
	MaxEnemies         int // 0 means unlimited
}

// DefaultTuning returns the stock arcade tuning.
func DefaultTuning() Tuning {
	t := DefaultTileSize
	return Tuning{
		TileSize:      t,
		PlayerSpeed:   DefaultPlayerSpeed,
		PlayerHitbox:  core.V(32, 64),
		PlayerWallBox: core.Splat(t * DefaultWallBoxPortion),
		StartHealth:   DefaultStartHealth,
		StartBombs:    DefaultStartBombs,
		EnemySpeed:    DefaultEnemySpeed,
		EnemyHitbox:   core.V(32, 64),
		BombFuse:      DefaultBombFuse,
		FrameInterval: DefaultFrameInterval,
		FrameCount:    DefaultFrameCount,
		HazardSize:    core.Splat(t * DefaultHazardTiles),
		PickupSize:    core.Splat(t / 2),
		PickupOneIn:   DefaultPickupOneIn,
		ContactDamage: DefaultContactDamage,
		WallReward:    DefaultWallReward,
		EnemyReward:   DefaultEnemyReward,
	}
}

// TileBox returns the full-tile square at p.
func (t Tuning) TileBox(p core.Vec2) core.Box {
	return core.NewBox(p, core.Splat(t.TileSize))
}

// HealthPolicy decides what happens when player health drops to zero or below.
type HealthPolicy int

const (
	// HealthUnbounded lets health keep falling below zero with no effect.
	HealthUnbounded HealthPolicy = iota
	// HealthClamp floors health at zero and play continues.
	HealthClamp
	// HealthGameOver ends the session once health is zero or below.
	HealthGameOver
)

// String returns the policy name used in config files.
func (p HealthPolicy) String() string {
	switch p {
	case HealthClamp:
		return "clamp"
	case HealthGameOver:
		return "game_over"
	default:
		return "unbounded"
	}
}

// ParseHealthPolicy maps a config name to a policy.
func ParseHealthPolicy(s string) (HealthPolicy, bool) {
	switch s {
	case "", "unbounded":
		return HealthUnbounded, true
	case "clamp":
		return HealthClamp, true
	case "game_over":
		return HealthGameOver, true
	default:
		return HealthUnbounded, false
	}
}

// Policy collects the product decisions the simulation leaves open.
// The zero value reproduces the observed arcade behavior.
type Policy struct {
	Health HealthPolicy

	// MaxBombs caps the inventory reachable through pickups; 0 means no cap.
	MaxBombs int

	// DamageCooldown is the minimum time between contact hits; 0 means every tick.
	DamageCooldown time.Duration
}
