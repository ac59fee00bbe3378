package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func TestParseTile(t *testing.T) {
	tests := []struct {
		r    rune
		want Tile
	}{
		{'#', TileSolid},
		{'.', TileFloor},
		{'@', TileBreakable},
		{' ', TileEmpty},
		{'x', TileDecor},
		{'~', TileDecor},
	}

	for _, tt := range tests {
		if got := ParseTile(tt.r); got != tt.want {
			t.Errorf("ParseTile(%q) = %v, expected %v", tt.r, got, tt.want)
		}
	}
}

func TestParseGrid(t *testing.T) {
	g := ParseGrid("###\n#.@\n#\n\n")

	if g.Height() != 3 {
		t.Fatalf("Height() = %d, expected 3", g.Height())
	}
	if g.Width != 3 {
		t.Errorf("Width = %d, expected 3", g.Width)
	}
	if g.At(2, 1) != TileBreakable {
		t.Errorf("At(2, 1) = %v, expected breakable", g.At(2, 1))
	}
	if g.At(2, 2) != TileEmpty {
		t.Errorf("short rows should read as empty past their end")
	}
	if g.At(-1, 0) != TileEmpty || g.At(0, 9) != TileEmpty {
		t.Error("out-of-range cells should be empty")
	}
	if g.Count(TileSolid) != 5 {
		t.Errorf("Count(solid) = %d, expected 5", g.Count(TileSolid))
	}
}

func TestGridWalls(t *testing.T) {
	g := ParseGrid("#.@\n.x.")
	walls := g.Walls(64)

	if len(walls) != 3 {
		t.Fatalf("expected 3 walls, got %d", len(walls))
	}
	if walls[0].Pos != core.V(0, 0) || walls[0].Breakable || walls[0].Passable {
		t.Errorf("solid wall = %+v", walls[0])
	}
	if walls[1].Pos != core.V(128, 0) || !walls[1].Breakable {
		t.Errorf("breakable wall = %+v", walls[1])
	}
	if walls[2].Pos != core.V(64, -64) || !walls[2].Passable {
		t.Errorf("decor wall = %+v", walls[2])
	}
}

func TestTileCenter(t *testing.T) {
	if got := TileCenter(3, 2, 64); got != core.V(192, -128) {
		t.Errorf("TileCenter(3, 2) = %v, expected {192 -128}", got)
	}
}

const validLevel = `
id: test
name: Test
map: |
  #####
  #...#
  #.@.#
  #####
player: [1, 1]
enemies:
  - [3, 2]
`

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(validLevel))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if lvl.ID != "test" || lvl.Name != "Test" {
		t.Errorf("got id=%q name=%q", lvl.ID, lvl.Name)
	}
	if lvl.Kind != KindCampaign {
		t.Errorf("Kind = %q, expected campaign default", lvl.Kind)
	}
	if lvl.Player != (Cell{Col: 1, Row: 1}) {
		t.Errorf("Player = %+v", lvl.Player)
	}
	if len(lvl.Enemies) != 1 {
		t.Errorf("expected 1 enemy, got %d", len(lvl.Enemies))
	}

	layout := lvl.Layout(64)
	if len(layout.Players) != 1 || layout.Players[0] != core.V(64, -64) {
		t.Errorf("layout player = %v", layout.Players)
	}
	if len(layout.Enemies) != 1 || layout.Enemies[0] != core.V(192, -128) {
		t.Errorf("layout enemies = %v", layout.Enemies)
	}
	if len(layout.Walls) != 15 {
		t.Errorf("expected 15 walls, got %d", len(layout.Walls))
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "map: \"#.#\"\nplayer: [1, 0]\n"},
		{"empty map", "id: x\nplayer: [0, 0]\n"},
		{"spawn on wall", "id: x\nmap: \"#.#\"\nplayer: [0, 0]\n"},
		{"spawn on breakable", "id: x\nmap: \"#@#\"\nplayer: [1, 0]\n"},
		{"spawn outside", "id: x\nmap: \"#.#\"\nplayer: [5, 0]\n"},
		{"bad cell", "id: x\nmap: \"#.#\"\nplayer: [1]\n"},
		{"bad kind", "id: x\nkind: duel\nmap: \"#.#\"\nplayer: [1, 0]\n"},
		{"enemy outside", "id: x\nmap: \"#.#\"\nplayer: [1, 0]\nenemies:\n  - [1, 4]\n"},
		{"survival without spawns", "id: x\nkind: survival\nmap: \"#.#\"\nplayer: [1, 0]\n"},
		{"campaign with nothing to clear", "id: x\nmap: \"#..#\"\nplayer: [1, 0]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("ParseYAML() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestCampaignNeedsTargets(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"walls only", "id: x\nmap: \"#.@#\"\nplayer: [1, 0]\n"},
		{"monsters only", "id: x\nmap: \"#..#\"\nplayer: [1, 0]\nenemies:\n  - [2, 0]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.data)); err != nil {
				t.Errorf("ParseYAML() error = %v, expected a playable level", err)
			}
		})
	}
}

func TestParseYAMLSyntaxError(t *testing.T) {
	if _, err := ParseYAML([]byte("id: [unclosed")); err == nil {
		t.Error("expected yaml error")
	}
}

func TestEmbeddedLevels(t *testing.T) {
	lvls, err := Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 4 {
		t.Fatalf("expected 4 embedded levels, got %d", len(lvls))
	}

	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
	for _, lvl := range lvls {
		if lvl.Kind == KindCampaign && lvl.Grid.Count(TileBreakable) == 0 {
			t.Errorf("campaign level %s has nothing to clear", lvl.ID)
		}
	}

	campaign, err := Embedded().LoadKind(KindCampaign)
	if err != nil {
		t.Fatalf("LoadKind failed: %v", err)
	}
	if len(campaign) != 3 || campaign[0].ID != "01-intro" {
		t.Errorf("unexpected campaign order: %v", campaign)
	}

	survival, _ := Embedded().LoadKind(KindSurvival)
	if len(survival) != 1 || survival[0].ID != "90-arena" {
		t.Errorf("unexpected survival levels: %v", survival)
	}
}

func TestLoadByID(t *testing.T) {
	lvl, err := Embedded().LoadByID("02-rooms")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Title() != "Rooms" {
		t.Errorf("Title() = %q, expected Rooms", lvl.Title())
	}
	if lvl.FilePath != "data/02-rooms.yaml" {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}

	if _, err := Embedded().LoadByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadByID(nope) error = %v, expected ErrNotFound", err)
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"packs/a.yaml":      {Data: []byte(validLevel)},
		"packs/broken.yaml": {Data: []byte("id: broken\nmap: \"###\"\nplayer: [0, 0]\n")},
		"packs/notes.txt":   {Data: []byte("not a level")},
	}

	lvls, err := NewLoader(fsys, "packs").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 1 || lvls[0].ID != "test" {
		t.Errorf("expected only the valid level, got %v", lvls)
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.yml"), []byte(validLevel), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err := NewDirLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "test" {
		t.Errorf("ListIDs() = %v, expected [test]", ids)
	}
}

func TestDirLoaderMissingDir(t *testing.T) {
	if _, err := NewDirLoader(filepath.Join(t.TempDir(), "missing")).LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}
