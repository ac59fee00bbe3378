package sim

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// PlaceBomb drops a bomb at the player's position. It does nothing and
// returns false when the inventory is empty or the session is over.
func (w *World) PlaceBomb() bool {
	p := w.player
	if p == nil || w.session.Over || p.Bombs <= 0 {
		return false
	}
	p.Bombs--

	b := &Bomb{
		ID:   w.newID(),
		Pos:  p.Pos,
		fuse: core.NewTimer(w.tuning.BombFuse, core.TimerOnce),
	}
	w.bombs = append(w.bombs, b)
	w.emit(EventBombPlaced, b.ID, b.Pos, p.Bombs)
	return true
}

// advanceBombs ticks every fuse. A bomb whose fuse ran out is replaced by an
// explosion at its position within the same pass.
func (w *World) advanceBombs(dt time.Duration) {
	for _, b := range w.bombs {
		if !w.live(b.ID) {
			continue
		}
		b.fuse.Tick(dt)
		if !b.fuse.Finished() {
			continue
		}
		w.despawn(b.ID)
		e := w.spawnExplosion(b.Pos)
		w.emit(EventBombExploded, e.ID, b.Pos, 0)
	}
}

func (w *World) spawnExplosion(pos core.Vec2) *Explosion {
	e := &Explosion{
		ID:   w.newID(),
		Pos:  pos,
		anim: core.NewTimer(w.tuning.FrameInterval, core.TimerRepeating),
		born: w.session.Tick,
	}
	w.explosions = append(w.explosions, e)
	return e
}

// Hazard returns the damage square of an explosion.
func (w *World) Hazard(e Explosion) core.Box {
	return core.NewBox(e.Pos, w.tuning.HazardSize)
}

// advanceExplosions steps animation frames. Explosions created this tick do
// not advance until the next one. An explosion that reaches the last frame
// still deals damage this tick and is removed at the end of it.
func (w *World) advanceExplosions(dt time.Duration) {
	for _, e := range w.explosions {
		if !w.live(e.ID) || e.expired || e.born == w.session.Tick {
			continue
		}
		e.anim.Tick(dt)
		e.Frame += e.anim.TimesFinished()
		if e.Frame >= w.tuning.FrameCount {
			e.Frame = w.tuning.FrameCount
			e.expired = true
		}
	}
}

// expireExplosions schedules finished explosions for removal.
func (w *World) expireExplosions() {
	for _, e := range w.explosions {
		if e.expired && w.live(e.ID) {
			w.despawn(e.ID)
			w.emit(EventExplosionEnded, e.ID, e.Pos, e.Frame)
		}
	}
}

// DisplayFrame returns the animation frame to draw, within [0, frames).
func (e Explosion) DisplayFrame(frames int) int {
	if e.Frame >= frames {
		return frames - 1
	}
	return e.Frame
}
