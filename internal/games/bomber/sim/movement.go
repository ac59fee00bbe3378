package sim

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// WallFree reports whether the player's wall box centered at pos touches no
// blocking wall.
func (w *World) WallFree(pos core.Vec2) bool {
	box := core.NewBox(pos, w.tuning.PlayerWallBox)
	for _, wall := range w.walls {
		if !wall.Blocks || !w.live(wall.ID) {
			continue
		}
		if box.Overlaps(w.tuning.TileBox(wall.Pos)) {
			return false
		}
	}
	return true
}

// movePlayer applies the movement intent one axis at a time so a blocked
// axis does not cancel the other and the player slides along walls.
func (w *World) movePlayer(dt time.Duration, in Input) {
	p := w.player
	step := p.Speed * w.tuning.TileSize * dt.Seconds()
	if step == 0 {
		return
	}

	if dx := clampAxis(in.MoveX); dx != 0 {
		target := core.V(p.Pos.X+float64(dx)*step, p.Pos.Y)
		if w.WallFree(target) {
			p.Pos = target
		}
	}
	if dy := clampAxis(in.MoveY); dy != 0 {
		target := core.V(p.Pos.X, p.Pos.Y+float64(dy)*step)
		if w.WallFree(target) {
			p.Pos = target
		}
	}
}

func clampAxis(v int) int {
	return core.Clamp(v, -1, 1)
}

// advanceEnemies moves every enemy straight toward the player.
func (w *World) advanceEnemies(dt time.Duration) {
	target := w.player.Pos
	secs := dt.Seconds()
	for _, e := range w.enemies {
		dir := target.Sub(e.Pos).Normalize()
		if dir == (core.Vec2{}) {
			continue
		}
		step := e.Speed * w.speedScale * w.tuning.TileSize * secs
		e.Pos = e.Pos.Add(dir.Scale(step))
	}
}

// SetSpawnInterval changes the survival spawn interval. Time already counted
// toward the next spawn is kept.
func (w *World) SetSpawnInterval(d time.Duration) {
	w.tuning.EnemySpawnInterval = d
	w.spawner.SetDuration(d)
}

// advanceSpawner brings in survival enemies on a fixed interval.
func (w *World) advanceSpawner(dt time.Duration) {
	if w.tuning.EnemySpawnInterval <= 0 || len(w.spawns) == 0 {
		return
	}
	w.spawner.Tick(dt)
	for i := 0; i < w.spawner.TimesFinished(); i++ {
		if w.tuning.MaxEnemies > 0 && len(w.enemies) >= w.tuning.MaxEnemies {
			return
		}
		pos := w.spawns[w.spawnCursor%len(w.spawns)]
		w.spawnCursor++
		e := w.addEnemy(pos)
		w.emit(EventEnemySpawned, e.ID, pos, 0)
	}
}
