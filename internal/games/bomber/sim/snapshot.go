package sim

import (
	"math"
	"time"
)

// Snapshot is a flat copy of the world for rendering and determinism checks.
type Snapshot struct {
	Tick  uint64
	Clock time.Duration
	Score int
	Over  bool

	PlayerID EntityID
	PlayerX  float64
	PlayerY  float64
	Health   int
	Bombs    int

	Enemies    []EntityView
	BombViews  []BombView
	Explosions []ExplosionView
	Walls      []WallView
	Pickups    []EntityView
}

// EntityView is an entity's identity and position.
type EntityView struct {
	ID   EntityID
	X, Y float64
}

// BombView adds the remaining fuse.
type BombView struct {
	EntityView
	Remaining time.Duration
}

// ExplosionView adds the animation frame.
type ExplosionView struct {
	EntityView
	Frame int
}

// WallView adds breakability.
type WallView struct {
	EntityView
	Breakable bool
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  w.session.Tick,
		Clock: w.session.Clock,
		Score: w.session.Score,
		Over:  w.session.Over,
	}
	if p := w.player; p != nil {
		snap.PlayerID = p.ID
		snap.PlayerX, snap.PlayerY = p.Pos.X, p.Pos.Y
		snap.Health = p.Health
		snap.Bombs = p.Bombs
	}

	for _, e := range w.enemies {
		snap.Enemies = append(snap.Enemies, EntityView{ID: e.ID, X: e.Pos.X, Y: e.Pos.Y})
	}
	for _, b := range w.bombs {
		snap.BombViews = append(snap.BombViews, BombView{
			EntityView: EntityView{ID: b.ID, X: b.Pos.X, Y: b.Pos.Y},
			Remaining:  b.Remaining(),
		})
	}
	for _, e := range w.explosions {
		snap.Explosions = append(snap.Explosions, ExplosionView{
			EntityView: EntityView{ID: e.ID, X: e.Pos.X, Y: e.Pos.Y},
			Frame:      e.DisplayFrame(w.tuning.FrameCount),
		})
	}
	for _, wall := range w.walls {
		snap.Walls = append(snap.Walls, WallView{
			EntityView: EntityView{ID: wall.ID, X: wall.Pos.X, Y: wall.Pos.Y},
			Breakable:  wall.Breakable,
		})
	}
	for _, p := range w.pickups {
		snap.Pickups = append(snap.Pickups, EntityView{ID: p.ID, X: p.Pos.X, Y: p.Pos.Y})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Clock)        //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.Score)) //#nosec G115 -- hash computation
	if snap.Over {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.PlayerID)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(int64(snap.Health)) //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.Bombs))  //#nosec G115 -- hash computation

	view := func(v EntityView) {
		h = h*31 + uint64(v.ID)
		h = h*31 + math.Float64bits(v.X)
		h = h*31 + math.Float64bits(v.Y)
	}
	for _, e := range snap.Enemies {
		view(e)
	}
	for _, b := range snap.BombViews {
		view(b.EntityView)
		h = h*31 + uint64(b.Remaining) //#nosec G115 -- hash computation
	}
	for _, e := range snap.Explosions {
		view(e.EntityView)
		h = h*31 + uint64(int64(e.Frame)) //#nosec G115 -- hash computation
	}
	for _, wall := range snap.Walls {
		view(wall.EntityView)
	}
	for _, p := range snap.Pickups {
		view(p)
	}
	return h
}
