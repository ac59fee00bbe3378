package bomber

import (
	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
)

// tuningFrom converts YAML configuration into simulation constants.
func tuningFrom(cfg config.BomberConfig, mode Mode) sim.Tuning {
	tile := cfg.World.TileSize
	t := sim.Tuning{
		TileSize: tile,

		PlayerSpeed:   cfg.Player.Speed,
		PlayerHitbox:  core.V(cfg.Player.Hitbox.W, cfg.Player.Hitbox.H),
		PlayerWallBox: core.Splat(cfg.Player.WallBox),
		StartHealth:   cfg.Player.Health,
		StartBombs:    cfg.Player.Bombs,

		EnemySpeed:  cfg.Enemies.Speed,
		EnemyHitbox: core.V(cfg.Enemies.Hitbox.W, cfg.Enemies.Hitbox.H),

		BombFuse: cfg.Bombs.Fuse,

		FrameInterval: cfg.Explosion.FrameInterval,
		FrameCount:    cfg.Explosion.Frames,
		HazardSize:    core.Splat(cfg.Explosion.HazardTiles * tile),

		PickupSize:  core.Splat(cfg.Pickups.Size),
		PickupOneIn: cfg.Pickups.OneIn,

		ContactDamage: cfg.Scoring.ContactDamage,
		WallReward:    cfg.Scoring.Wall,
		EnemyReward:   cfg.Scoring.Enemy,
	}
	if mode == ModeSurvival {
		t.EnemySpawnInterval = cfg.Enemies.SpawnInterval
		t.MaxEnemies = cfg.Enemies.MaxEnemies
	}
	return t
}

// policyFrom converts the policy section. Unknown names were rejected when
// the config was validated, so they fall back to the zero policy here.
func policyFrom(cfg config.BomberConfig) sim.Policy {
	health, _ := sim.ParseHealthPolicy(cfg.Policy.Health)
	return sim.Policy{
		Health:         health,
		MaxBombs:       cfg.Policy.MaxBombs,
		DamageCooldown: cfg.Policy.DamageCooldown,
	}
}
