// Package config provides YAML-based game configuration loading and
// difficulty management for the bomber game.
package config

import (
	"fmt"
	"time"
)

// BomberConfig contains all configuration for the bomber game.
type BomberConfig struct {
	World      BomberWorld      `yaml:"world"`
	Player     BomberPlayer     `yaml:"player"`
	Enemies    BomberEnemies    `yaml:"enemies"`
	Bombs      BomberBombs      `yaml:"bombs"`
	Explosion  BomberExplosion  `yaml:"explosion"`
	Pickups    BomberPickups    `yaml:"pickups"`
	Scoring    BomberScoring    `yaml:"scoring"`
	Policy     BomberPolicy     `yaml:"policy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BomberWorld defines world units.
type BomberWorld struct {
	TileSize float64 `yaml:"tile_size"`
}

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// BomberPlayer defines player parameters.
type BomberPlayer struct {
	Speed   float64 `yaml:"speed"`    // Tiles per second
	Hitbox  Size    `yaml:"hitbox"`   // Against enemies and pickups
	WallBox float64 `yaml:"wall_box"` // Square side used against walls
	Health  int     `yaml:"health"`
	Bombs   int     `yaml:"bombs"`
}

// BomberEnemies defines enemy parameters.
type BomberEnemies struct {
	Speed         float64       `yaml:"speed"` // Tiles per second
	Hitbox        Size          `yaml:"hitbox"`
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Survival mode only
	MaxEnemies    int           `yaml:"max_enemies"`
}

// BomberBombs defines bomb parameters.
type BomberBombs struct {
	Fuse time.Duration `yaml:"fuse"`
}

// BomberExplosion defines explosion parameters.
type BomberExplosion struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	Frames        int           `yaml:"frames"`
	HazardTiles   float64       `yaml:"hazard_tiles"` // Side of the damage square in tiles
}

// BomberPickups defines pickup parameters.
type BomberPickups struct {
	Size  float64 `yaml:"size"`
	OneIn int     `yaml:"one_in"` // Drop chance is 1/OneIn per destroyed wall
}

// BomberScoring defines rewards and damage.
type BomberScoring struct {
	Wall          int `yaml:"wall"`
	Enemy         int `yaml:"enemy"`
	ContactDamage int `yaml:"contact_damage"`
}

// BomberPolicy defines what happens at the edges the game rules leave open.
type BomberPolicy struct {
	Health         string        `yaml:"health"` // "unbounded", "clamp" or "game_over"
	MaxBombs       int           `yaml:"max_bombs"`
	DamageCooldown time.Duration `yaml:"damage_cooldown"`
}

// Validate checks values that would make the game unplayable.
func (c *BomberConfig) Validate() error {
	switch {
	case c.World.TileSize <= 0:
		return fmt.Errorf("config: world.tile_size must be positive, got %v", c.World.TileSize)
	case c.Player.Speed < 0 || c.Enemies.Speed < 0:
		return fmt.Errorf("config: speeds must not be negative")
	case c.Bombs.Fuse <= 0:
		return fmt.Errorf("config: bombs.fuse must be positive, got %v", c.Bombs.Fuse)
	case c.Explosion.Frames <= 0:
		return fmt.Errorf("config: explosion.frames must be positive, got %d", c.Explosion.Frames)
	case c.Explosion.FrameInterval <= 0:
		return fmt.Errorf("config: explosion.frame_interval must be positive, got %v", c.Explosion.FrameInterval)
	case c.Pickups.OneIn < 0:
		return fmt.Errorf("config: pickups.one_in must not be negative, got %d", c.Pickups.OneIn)
	}

	switch c.Policy.Health {
	case "", "unbounded", "clamp", "game_over":
	default:
		return fmt.Errorf("config: unknown policy.health %q", c.Policy.Health)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
