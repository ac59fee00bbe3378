package sim

import (
	"slices"
	"time"
)

// Step advances the world by dt. Passes run in a fixed order:
//
//  1. player movement
//  2. bomb placement
//  3. enemy pursuit and survival spawns
//  4. bomb fuses (expired bombs become explosions)
//  5. explosion animation
//  6. destruction of walls and enemies
//  7. contact damage and pickup absorption
//  8. health policy
//
// Entities removed during a tick stay in their slices, flagged, until the
// tick ends, so every pass sees the same population.
//
// Step panics if the world has no player. Once the session is over it
// returns an empty report and changes nothing.
func (w *World) Step(dt time.Duration, in Input) StepReport {
	if w.player == nil {
		panic("sim: step without a player")
	}
	if w.session.Over {
		return StepReport{}
	}
	if dt < 0 {
		dt = 0
	}

	s := &w.session
	s.Tick++
	s.Clock += dt

	w.movePlayer(dt, in)
	if in.PlaceBomb {
		w.PlaceBomb()
	}
	w.advanceEnemies(dt)
	w.advanceSpawner(dt)
	w.advanceBombs(dt)
	w.advanceExplosions(dt)
	w.resolveDestruction(s)
	w.resolveEncounters(dt)
	w.applyHealthPolicy(s)
	w.expireExplosions()
	w.flush()

	report := StepReport{Events: w.events, ScoreDelta: w.delta}
	w.events = nil
	w.delta = 0
	return report
}

// flush drops every entity marked during the tick.
func (w *World) flush() {
	if len(w.removed) == 0 {
		return
	}
	w.enemies = slices.DeleteFunc(w.enemies, func(e *Enemy) bool { return !w.live(e.ID) })
	w.bombs = slices.DeleteFunc(w.bombs, func(b *Bomb) bool { return !w.live(b.ID) })
	w.explosions = slices.DeleteFunc(w.explosions, func(e *Explosion) bool { return !w.live(e.ID) })
	w.walls = slices.DeleteFunc(w.walls, func(wall *Wall) bool { return !w.live(wall.ID) })
	w.pickups = slices.DeleteFunc(w.pickups, func(p *Pickup) bool { return !w.live(p.ID) })
	clear(w.removed)
}
