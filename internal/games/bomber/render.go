package bomber

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
)

// Visual characters for rendering
const (
	SolidGlyph     = '█'
	BreakableGlyph = '▒'
	PlayerGlyph    = '@'
	EnemyGlyph     = 'M'
	BombGlyph      = '●'
	PickupGlyph    = '+'
)

// Explosion glyphs from the first frame to the last
var explosionRamp = []rune{'█', '▓', '▒', '░'}

var explosionColors = []core.Color{core.ColorBrightYellow, core.ColorYellow, core.ColorOrange, core.ColorRed}

// CellsPerTile is how many terminal columns one tile takes. Terminal cells
// are about twice as tall as they are wide, so a tile is 2x1 cells.
const CellsPerTile = 2

// Camera keeps the player centered on screen.
type Camera struct {
	Pos core.Vec2
}

// Follow moves the camera onto p.
func (c *Camera) Follow(p core.Vec2) {
	c.Pos = p
}

// viewport maps world positions into the play area below the HUD.
type viewport struct {
	cam      core.Vec2
	tile     float64
	centerX  float64
	centerY  float64
	top, bot int
}

func newViewport(cam Camera, tile float64, dst *core.Screen) viewport {
	return viewport{
		cam:     cam.Pos,
		tile:    tile,
		centerX: float64(dst.Width()) / 2,
		centerY: 1 + float64(dst.Height()-1)/2,
		top:     1,
		bot:     dst.Height(),
	}
}

// project returns fractional screen coordinates of a world position.
// World Y grows upward, screen rows grow downward.
func (v viewport) project(x, y float64) (float64, float64) {
	sx := (x-v.cam.X)/v.tile*CellsPerTile + v.centerX
	sy := (v.cam.Y-y)/v.tile + v.centerY
	return sx, sy
}

// tileCell returns the left cell of the tile centered at (x, y).
func (v viewport) tileCell(x, y float64) (int, int) {
	sx, sy := v.project(x, y)
	return int(math.Round(sx)) - 1, int(math.Floor(sy))
}

func (v viewport) put(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < v.top || y >= v.bot {
		return
	}
	dst.SetColored(x, y, r, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.world == nil {
		g.drawCenteredBox(dst, "NO LEVELS", g.errorText())
		return
	}

	snap := g.world.Snapshot()
	v := newViewport(g.camera, g.world.Tuning().TileSize, dst)

	g.renderWalls(dst, v, snap)
	g.renderExplosions(dst, v, snap)
	g.renderItems(dst, v, snap)
	g.renderActors(dst, v, snap)
	g.renderHUD(dst, snap)
	g.renderOverlay(dst)
}

func (g *Game) renderWalls(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, w := range snap.Walls {
		x, y := v.tileCell(w.X, w.Y)
		glyph, color := SolidGlyph, core.ColorGray
		if w.Breakable {
			glyph, color = BreakableGlyph, core.ColorOrange
		}
		v.put(dst, x, y, glyph, color)
		v.put(dst, x+1, y, glyph, color)
	}
}

// renderExplosions fills the hazard square of each explosion.
func (g *Game) renderExplosions(dst *core.Screen, v viewport, snap sim.Snapshot) {
	frames := g.world.Tuning().FrameCount
	half := g.world.Tuning().HazardSize.Scale(0.5)

	for _, e := range snap.Explosions {
		stage := 0
		if frames > 0 {
			stage = e.Frame * len(explosionRamp) / frames
		}
		stage = core.Clamp(stage, 0, len(explosionRamp)-1)

		x0, y0 := v.project(e.X-half.X, e.Y+half.Y)
		x1, y1 := v.project(e.X+half.X, e.Y-half.Y)
		for y := int(math.Round(y0)); y < int(math.Round(y1)); y++ {
			for x := int(math.Round(x0)); x < int(math.Round(x1)); x++ {
				v.put(dst, x, y, explosionRamp[stage], explosionColors[stage])
			}
		}
	}
}

func (g *Game) renderItems(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, p := range snap.Pickups {
		x, y := v.tileCell(p.X, p.Y)
		v.put(dst, x, y, PickupGlyph, core.ColorBrightGreen)
	}
	for _, b := range snap.BombViews {
		x, y := v.tileCell(b.X, b.Y)
		color := core.ColorWhite
		// Blink over the last half second
		if b.Remaining < g.world.Tuning().BombFuse/4 && (b.Remaining.Milliseconds()/100)%2 == 0 {
			color = core.ColorBrightRed
		}
		v.put(dst, x, y, BombGlyph, color)
	}
}

func (g *Game) renderActors(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, e := range snap.Enemies {
		x, y := v.tileCell(e.X, e.Y)
		v.put(dst, x+1, y, EnemyGlyph, core.ColorMagenta)
	}
	x, y := v.tileCell(snap.PlayerX, snap.PlayerY)
	v.put(dst, x+1, y, PlayerGlyph, core.ColorBrightCyan)
}

// renderHUD draws health, score, bombs and the level name on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	name := ""
	if lvl, ok := g.Level(); ok {
		name = lvl.Title()
		if g.mode == ModeCampaign {
			name = fmt.Sprintf("%s (%d/%d)", name, g.levelIndex+1, len(g.levels))
		}
	}

	hud := fmt.Sprintf("Health: %d  Score: %d  Bombs: %d  Level: %s", snap.Health, g.score(), snap.Bombs, name)
	healthColor := core.ColorDefault
	if snap.Health <= 25 {
		healthColor = core.ColorBrightRed
	}
	dst.DrawTextColored(0, 0, hud, core.ColorDefault)
	dst.DrawTextColored(0, 0, fmt.Sprintf("Health: %d", snap.Health), healthColor)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		if lvl, ok := g.Level(); ok && !g.banner.Finished() {
			dst.DrawTextCentered(2, lvl.Title())
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

func (g *Game) errorText() string {
	if g.loadErr == nil {
		return "Press Q to quit"
	}
	msg := g.loadErr.Error()
	if i := strings.Index(msg, ": "); i >= 0 && len(msg) > 40 {
		msg = msg[i+2:]
	}
	return msg
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subW := len([]rune(subtitle))
	boxW := core.Min(core.Max(titleW, subW)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+core.Max((boxW-subW)/2, 1), boxY+3, subtitle)
}
