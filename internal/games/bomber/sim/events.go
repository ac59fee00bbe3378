package sim

import "github.com/vovakirdan/tui-bomber/internal/core"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventBombPlaced EventKind = iota
	EventBombExploded
	EventExplosionEnded
	EventWallDestroyed
	EventPickupSpawned
	EventPickupCollected
	EventEnemySpawned
	EventEnemyKilled
	EventPlayerHit
	EventPlayerDown
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventBombPlaced:
		return "bomb_placed"
	case EventBombExploded:
		return "bomb_exploded"
	case EventExplosionEnded:
		return "explosion_ended"
	case EventWallDestroyed:
		return "wall_destroyed"
	case EventPickupSpawned:
		return "pickup_spawned"
	case EventPickupCollected:
		return "pickup_collected"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerDown:
		return "player_down"
	default:
		return "unknown"
	}
}

// Event records one state change. Value carries the score award, the damage
// dealt, or the new inventory depending on Kind.
type Event struct {
	Kind  EventKind
	ID    EntityID
	Pos   core.Vec2
	Value int
}

// StepReport summarizes one tick.
type StepReport struct {
	Events     []Event
	ScoreDelta int
}

// Count returns how many events of kind k are in the report.
func (r StepReport) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
