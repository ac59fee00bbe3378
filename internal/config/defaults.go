package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the default bomber configuration.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		World: BomberWorld{
			TileSize: 64,
		},
		Player: BomberPlayer{
			Speed:   6.0,
			Hitbox:  Size{W: 32, H: 64},
			WallBox: 57.6,
			Health:  100,
			Bombs:   5,
		},
		Enemies: BomberEnemies{
			Speed:         0.5,
			Hitbox:        Size{W: 32, H: 64},
			SpawnInterval: 8 * time.Second,
			MaxEnemies:    6,
		},
		Bombs: BomberBombs{
			Fuse: 2 * time.Second,
		},
		Explosion: BomberExplosion{
			FrameInterval: 50 * time.Millisecond,
			Frames:        16,
			HazardTiles:   4,
		},
		Pickups: BomberPickups{
			Size:  32,
			OneIn: 4,
		},
		Scoring: BomberScoring{
			Wall:          10,
			Enemy:         100,
			ContactDamage: 5,
		},
		Policy: BomberPolicy{
			Health: "game_over",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  0.5,
			},
		},
	}
}
