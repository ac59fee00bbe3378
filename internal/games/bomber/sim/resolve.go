package sim

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// resolveDestruction removes breakable walls and enemies caught in any live
// explosion. Each target is scored once no matter how many explosions reach
// it in the same tick.
func (w *World) resolveDestruction(s *Session) {
	for _, wall := range w.walls {
		if !wall.Breakable || !w.live(wall.ID) {
			continue
		}
		if !w.inBlast(w.tuning.TileBox(wall.Pos)) {
			continue
		}
		w.despawn(wall.ID)
		w.award(s, w.tuning.WallReward)
		w.emit(EventWallDestroyed, wall.ID, wall.Pos, w.tuning.WallReward)
		w.rollPickup(wall.Pos)
	}

	for _, e := range w.enemies {
		if !w.live(e.ID) {
			continue
		}
		if !w.inBlast(core.NewBox(e.Pos, w.tuning.EnemyHitbox)) {
			continue
		}
		w.despawn(e.ID)
		w.award(s, w.tuning.EnemyReward)
		w.emit(EventEnemyKilled, e.ID, e.Pos, w.tuning.EnemyReward)
	}
}

func (w *World) inBlast(target core.Box) bool {
	for _, e := range w.explosions {
		if !w.live(e.ID) {
			continue
		}
		if target.Overlaps(w.Hazard(*e)) {
			return true
		}
	}
	return false
}

func (w *World) rollPickup(pos core.Vec2) {
	n := w.tuning.PickupOneIn
	if n <= 0 || w.rng.Intn(n) != 0 {
		return
	}
	p := &Pickup{ID: w.newID(), Pos: pos}
	w.pickups = append(w.pickups, p)
	w.emit(EventPickupSpawned, p.ID, pos, 0)
}

// resolveEncounters applies contact damage from enemies and absorbs pickups
// the player touches.
func (w *World) resolveEncounters(dt time.Duration) {
	p := w.player
	body := core.NewBox(p.Pos, w.tuning.PlayerHitbox)

	if p.cooldown > 0 {
		p.cooldown -= dt
		if p.cooldown < 0 {
			p.cooldown = 0
		}
	}

	for _, e := range w.enemies {
		if !w.live(e.ID) {
			continue
		}
		if !body.Overlaps(core.NewBox(e.Pos, w.tuning.EnemyHitbox)) {
			continue
		}
		if p.cooldown > 0 {
			break
		}
		p.Health -= w.tuning.ContactDamage
		w.emit(EventPlayerHit, e.ID, p.Pos, w.tuning.ContactDamage)
		if w.policy.DamageCooldown > 0 {
			p.cooldown = w.policy.DamageCooldown
		}
	}

	for _, pk := range w.pickups {
		if !w.live(pk.ID) {
			continue
		}
		if !body.Overlaps(core.NewBox(pk.Pos, w.tuning.PickupSize)) {
			continue
		}
		if w.policy.MaxBombs > 0 && p.Bombs >= w.policy.MaxBombs {
			// Full inventory leaves the pickup on the map
			continue
		}
		p.Bombs++
		w.despawn(pk.ID)
		w.emit(EventPickupCollected, pk.ID, pk.Pos, p.Bombs)
	}
}

// applyHealthPolicy enforces the configured behavior at zero health.
func (w *World) applyHealthPolicy(s *Session) {
	p := w.player
	if p.Health > 0 {
		return
	}
	switch w.policy.Health {
	case HealthClamp:
		p.Health = 0
	case HealthGameOver:
		if p.Health < 0 {
			p.Health = 0
		}
		if !s.Over {
			s.Over = true
			w.emit(EventPlayerDown, p.ID, p.Pos, 0)
		}
	}
}
