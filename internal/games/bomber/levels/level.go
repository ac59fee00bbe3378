package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
)

// Kind selects which game mode a level belongs to.
type Kind string

const (
	KindCampaign Kind = "campaign"
	KindSurvival Kind = "survival"
)

// Cell is a map coordinate: column, then row from the top.
type Cell struct {
	Col, Row int
}

// Level is a complete level definition.
type Level struct {
	ID       string
	Name     string
	Kind     Kind
	Grid     Grid
	Player   Cell
	Enemies  []Cell
	Spawns   []Cell // Survival spawn points
	FilePath string
}

var (
	// ErrNotFound is returned when no level has the requested ID.
	ErrNotFound = errors.New("levels: level not found")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("levels: invalid level")
)

// Validate checks that the level can be played.
func (l *Level) Validate() error {
	switch {
	case l.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalid)
	case l.Grid.Height() == 0:
		return fmt.Errorf("%w %s: empty map", ErrInvalid, l.ID)
	case l.Kind != KindCampaign && l.Kind != KindSurvival:
		return fmt.Errorf("%w %s: unknown kind %q", ErrInvalid, l.ID, l.Kind)
	}

	if !l.Grid.At(l.Player.Col, l.Player.Row).Walkable() {
		return fmt.Errorf("%w %s: player spawn %d,%d is not on a floor tile",
			ErrInvalid, l.ID, l.Player.Col, l.Player.Row)
	}
	for _, e := range l.Enemies {
		if l.Grid.At(e.Col, e.Row) == TileEmpty {
			return fmt.Errorf("%w %s: enemy %d,%d is outside the map", ErrInvalid, l.ID, e.Col, e.Row)
		}
	}
	for _, s := range l.Spawns {
		if l.Grid.At(s.Col, s.Row) == TileEmpty {
			return fmt.Errorf("%w %s: spawn %d,%d is outside the map", ErrInvalid, l.ID, s.Col, s.Row)
		}
	}
	if l.Kind == KindSurvival && len(l.Spawns) == 0 && len(l.Enemies) == 0 {
		return fmt.Errorf("%w %s: survival level needs spawn points", ErrInvalid, l.ID)
	}
	if l.Kind == KindCampaign && l.Grid.Count(TileBreakable) == 0 && len(l.Enemies) == 0 {
		return fmt.Errorf("%w %s: campaign level has nothing to clear", ErrInvalid, l.ID)
	}
	return nil
}

// Layout converts the level into a simulation layout.
func (l *Level) Layout(tileSize float64) sim.Layout {
	layout := sim.Layout{
		Walls:   l.Grid.Walls(tileSize),
		Players: []core.Vec2{TileCenter(l.Player.Col, l.Player.Row, tileSize)},
	}
	for _, e := range l.Enemies {
		layout.Enemies = append(layout.Enemies, TileCenter(e.Col, e.Row, tileSize))
	}
	for _, s := range l.Spawns {
		layout.EnemySpawns = append(layout.EnemySpawns, TileCenter(s.Col, s.Row, tileSize))
	}
	return layout
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}
