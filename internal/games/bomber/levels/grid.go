// Package levels loads bomber maps: text tile grids wrapped in YAML files
// with spawn points. The stock level pack is embedded in the binary.
package levels

import (
	"strings"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
)

// Tile is one cell of a map grid.
type Tile int

const (
	TileEmpty     Tile = iota // Outside the map
	TileFloor                 // '.'
	TileSolid                 // '#'
	TileBreakable             // '@', floor underneath
	TileDecor                 // Any other character: looks solid, never blocks
)

// ParseTile maps a map character to a tile.
func ParseTile(r rune) Tile {
	switch r {
	case ' ':
		return TileEmpty
	case '.':
		return TileFloor
	case '#':
		return TileSolid
	case '@':
		return TileBreakable
	default:
		return TileDecor
	}
}

// Walkable reports whether the player may stand on the tile.
func (t Tile) Walkable() bool {
	return t == TileFloor || t == TileDecor
}

// Grid is a parsed tile map. Rows may have different lengths.
type Grid struct {
	Rows  [][]Tile
	Width int // Longest row
}

// ParseGrid parses a text map, one row per line. Trailing blank lines are
// dropped.
func ParseGrid(text string) Grid {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	g := Grid{Rows: make([][]Tile, len(lines))}
	for y, line := range lines {
		row := make([]Tile, 0, len(line))
		for _, r := range line {
			row = append(row, ParseTile(r))
		}
		g.Rows[y] = row
		g.Width = core.Max(g.Width, len(row))
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.Rows)
}

// At returns the tile at column c, row r. Out-of-range cells are empty.
func (g Grid) At(c, r int) Tile {
	if r < 0 || r >= len(g.Rows) || c < 0 || c >= len(g.Rows[r]) {
		return TileEmpty
	}
	return g.Rows[r][c]
}

// Count returns how many cells hold tile t.
func (g Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.Rows {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// TileCenter returns the world position of column c, row r. Rows grow
// downward on the map and world Y grows upward.
func TileCenter(c, r int, tileSize float64) core.Vec2 {
	return core.V(float64(c)*tileSize, -float64(r)*tileSize)
}

// Walls converts the grid into wall placements.
func (g Grid) Walls(tileSize float64) []sim.WallSpec {
	var walls []sim.WallSpec
	for r, row := range g.Rows {
		for c, tile := range row {
			pos := TileCenter(c, r, tileSize)
			switch tile {
			case TileSolid:
				walls = append(walls, sim.WallSpec{Pos: pos})
			case TileBreakable:
				walls = append(walls, sim.WallSpec{Pos: pos, Breakable: true})
			case TileDecor:
				walls = append(walls, sim.WallSpec{Pos: pos, Passable: true})
			}
		}
	}
	return walls
}
