// Package sim is the bomber simulation: a player, chasing enemies, timed
// bombs, explosions, destructible walls and bomb pickups on a tile world.
//
// The package is pure. It never logs, draws or reads the clock; callers
// advance it with Step and read it back through accessors and Snapshot.
package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

var (
	// ErrNoPlayer is returned when a layout has no player spawn.
	ErrNoPlayer = errors.New("sim: layout has no player spawn")
	// ErrMultiplePlayers is returned when a layout has more than one player spawn.
	ErrMultiplePlayers = errors.New("sim: layout has more than one player spawn")
	// ErrNilRand is returned when no randomness source is supplied.
	ErrNilRand = errors.New("sim: nil randomness source")
)

// WallSpec places one wall tile.
type WallSpec struct {
	Pos       core.Vec2
	Breakable bool
	Passable  bool // Drawn but never blocks movement
}

// Layout is the initial placement of everything in a world.
type Layout struct {
	Walls   []WallSpec
	Players []core.Vec2 // Exactly one spawn is required
	Enemies []core.Vec2

	// EnemySpawns are used by the survival spawner, round-robin.
	// Empty falls back to Enemies.
	EnemySpawns []core.Vec2
}

// Options configure a world.
type Options struct {
	Tuning Tuning
	Policy Policy
	Rand   Rand
}

// Input is the intent for one tick.
type Input struct {
	MoveX     int // -1, 0 or 1
	MoveY     int // -1, 0 or 1; positive is up
	PlaceBomb bool
}

// World owns every entity and the session state.
type World struct {
	tuning Tuning
	policy Policy
	rng    Rand

	nextID EntityID

	player     *Player
	enemies    []*Enemy
	bombs      []*Bomb
	explosions []*Explosion
	walls      []*Wall
	pickups    []*Pickup

	session    Session
	speedScale float64

	spawns      []core.Vec2
	spawnCursor int
	spawner     core.Timer

	removed map[EntityID]struct{}
	events  []Event
	delta   int
}

// NewWorld builds a world from a layout.
func NewWorld(layout Layout, opts Options) (*World, error) {
	switch {
	case len(layout.Players) == 0:
		return nil, ErrNoPlayer
	case len(layout.Players) > 1:
		return nil, fmt.Errorf("%w: %d spawns", ErrMultiplePlayers, len(layout.Players))
	case opts.Rand == nil:
		return nil, ErrNilRand
	}

	w := &World{
		tuning:     opts.Tuning,
		policy:     opts.Policy,
		rng:        opts.Rand,
		speedScale: 1,
		removed:    make(map[EntityID]struct{}),
	}

	w.player = &Player{
		ID:     w.newID(),
		Pos:    layout.Players[0],
		Speed:  w.tuning.PlayerSpeed,
		Health: w.tuning.StartHealth,
		Bombs:  w.tuning.StartBombs,
	}
	for _, wall := range layout.Walls {
		w.walls = append(w.walls, &Wall{
			ID:        w.newID(),
			Pos:       wall.Pos,
			Blocks:    !wall.Passable,
			Breakable: wall.Breakable,
		})
	}
	for _, pos := range layout.Enemies {
		w.addEnemy(pos)
	}

	w.spawns = layout.EnemySpawns
	if len(w.spawns) == 0 {
		w.spawns = layout.Enemies
	}
	w.spawner = core.NewTimer(w.tuning.EnemySpawnInterval, core.TimerRepeating)

	return w, nil
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

func (w *World) emit(kind EventKind, id EntityID, pos core.Vec2, value int) {
	w.events = append(w.events, Event{Kind: kind, ID: id, Pos: pos, Value: value})
}

// award adds points to the session score.
func (w *World) award(s *Session, points int) {
	s.Score += points
	w.delta += points
}

// despawn marks an entity for removal at the end of the tick.
// Marking twice is harmless.
func (w *World) despawn(id EntityID) {
	w.removed[id] = struct{}{}
}

func (w *World) live(id EntityID) bool {
	_, gone := w.removed[id]
	return !gone
}

func (w *World) addEnemy(pos core.Vec2) *Enemy {
	e := &Enemy{ID: w.newID(), Pos: pos, Speed: w.tuning.EnemySpeed}
	w.enemies = append(w.enemies, e)
	return e
}

// SetEnemySpeedScale multiplies every enemy's speed. Values <= 0 reset to 1.
func (w *World) SetEnemySpeedScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	w.speedScale = scale
}

// Tuning returns the world constants.
func (w *World) Tuning() Tuning {
	return w.tuning
}

// Policy returns the active policy.
func (w *World) Policy() Policy {
	return w.policy
}

// Session returns a copy of the session state.
func (w *World) Session() Session {
	return w.session
}

// Player returns a copy of the player. The second result is false when no
// player exists.
func (w *World) Player() (Player, bool) {
	if w.player == nil {
		return Player{}, false
	}
	return *w.player, true
}

// Over reports whether the health policy ended the session.
func (w *World) Over() bool {
	return w.session.Over
}

// Enemies returns the live enemies.
func (w *World) Enemies() []Enemy {
	out := make([]Enemy, 0, len(w.enemies))
	for _, e := range w.enemies {
		out = append(out, *e)
	}
	return out
}

// Bombs returns the live bombs.
func (w *World) Bombs() []Bomb {
	out := make([]Bomb, 0, len(w.bombs))
	for _, b := range w.bombs {
		out = append(out, *b)
	}
	return out
}

// Explosions returns the live explosions.
func (w *World) Explosions() []Explosion {
	out := make([]Explosion, 0, len(w.explosions))
	for _, e := range w.explosions {
		out = append(out, *e)
	}
	return out
}

// Walls returns the remaining walls.
func (w *World) Walls() []Wall {
	out := make([]Wall, 0, len(w.walls))
	for _, wall := range w.walls {
		out = append(out, *wall)
	}
	return out
}

// Pickups returns the pickups lying on the map.
func (w *World) Pickups() []Pickup {
	out := make([]Pickup, 0, len(w.pickups))
	for _, p := range w.pickups {
		out = append(out, *p)
	}
	return out
}

// BreakableLeft returns how many breakable walls remain.
func (w *World) BreakableLeft() int {
	n := 0
	for _, wall := range w.walls {
		if wall.Breakable {
			n++
		}
	}
	return n
}

// EnemiesLeft returns how many enemies remain.
func (w *World) EnemiesLeft() int {
	return len(w.enemies)
}

// RemovePlayer deletes the player entity. Step panics afterwards.
func (w *World) RemovePlayer() {
	w.player = nil
}
