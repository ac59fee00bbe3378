// Package bomber adapts the bomber simulation to the terminal runtime:
// it loads configuration and levels, turns input frames into simulation
// intents, runs the campaign and survival modes and draws the world.
package bomber

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/levels"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

// Registry IDs.
const (
	IDCampaign = "bomber"
	IDSurvival = "bomber_survival"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // Health policy ended the run
	StateWin      = "win"      // Campaign finished
	StateError    = "error"    // No playable level
)

// Minimum terminal size
const (
	MinScreenW = 30
	MinScreenH = 12
)

const bannerTime = 2 * time.Second

// Mode represents the game mode.
type Mode int

const (
	ModeCampaign Mode = iota // Play the level pack in order
	ModeSurvival             // One arena, enemies keep coming
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevel       string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLevelsDir loads levels from a directory instead of the built-in pack.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel selects the first level by ID.
func SetStartLevel(id string) {
	startLevel = id
}

// SetLogger sets the logger used for load fallbacks and simulation events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the bomber game modes.
type Game struct {
	mode Mode

	runtime    core.RuntimeConfig
	cfg        config.BomberConfig
	difficulty *config.DifficultyManager

	levels     []levels.Level
	levelIndex int
	world      *sim.World
	camera     Camera

	state   string
	banked  int // Score from cleared levels
	ticks   int
	banner  core.Timer
	loadErr error

	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewSurvival creates a survival game.
func NewSurvival() *Game {
	return &Game{mode: ModeSurvival}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSurvival {
		return IDSurvival
	}
	return IDCampaign
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSurvival {
		return "Bomber (Survival)"
	}
	return "Bomber"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	cfg, src, err := config.LoadBomberFrom(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultBomberConfig()
	} else {
		logger.Debug("config loaded", "source", src)
	}
	if difficultyPreset != "" {
		config.ApplyBomberPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.banked = 0
	g.ticks = 0
	g.world = nil
	g.loadErr = nil

	g.levels, g.levelIndex, err = g.pickLevels()
	if err != nil {
		g.fail(err)
		return
	}

	player := sim.Player{Health: cfg.Player.Health, Bombs: cfg.Player.Bombs}
	if err := g.enterLevel(player); err != nil {
		g.fail(err)
		return
	}
	g.state = StatePlaying
}

func (g *Game) fail(err error) {
	logger.Error("bomber: cannot start", "err", err)
	g.loadErr = err
	g.state = StateError
}

// pickLevels returns the levels for the mode and the index to start at.
func (g *Game) pickLevels() ([]levels.Level, int, error) {
	kind := levels.KindCampaign
	if g.mode == ModeSurvival {
		kind = levels.KindSurvival
	}

	var list []levels.Level
	if levelsDir != "" {
		var err error
		list, err = levels.NewDirLoader(levelsDir).LoadKind(kind)
		if err != nil || len(list) == 0 {
			logger.Warn("no usable levels in directory, using built-in pack", "dir", levelsDir, "kind", kind, "err", err)
			list = nil
		}
	}
	if list == nil {
		var err error
		list, err = levels.Embedded().LoadKind(kind)
		if err != nil {
			return nil, 0, err
		}
	}
	if len(list) == 0 {
		return nil, 0, fmt.Errorf("bomber: no %s levels", kind)
	}

	if startLevel == "" {
		return list, 0, nil
	}
	for i, lvl := range list {
		if lvl.ID == startLevel {
			return list, i, nil
		}
	}
	logger.Warn("start level not found, starting from the first", "level", startLevel, "kind", kind)
	return list, 0, nil
}

// enterLevel builds the world for the current level index. Health and
// bombs come from the previous level in the campaign.
func (g *Game) enterLevel(carry sim.Player) error {
	lvl := g.levels[g.levelIndex]

	tuning := tuningFrom(g.cfg, g.mode)
	tuning.StartHealth = carry.Health
	tuning.StartBombs = carry.Bombs

	w, err := sim.NewWorld(lvl.Layout(tuning.TileSize), sim.Options{
		Tuning: tuning,
		Policy: policyFrom(g.cfg),
		Rand:   sim.NewSimpleRNG(g.runtime.Seed + int64(g.levelIndex)),
	})
	if err != nil {
		return fmt.Errorf("bomber: level %s: %w", lvl.ID, err)
	}

	g.world = w
	p, _ := w.Player()
	g.camera.Follow(p.Pos)
	g.banner = core.NewTimer(bannerTime, core.TimerOnce)
	logger.Info("level started", "game", g.ID(), "level", lvl.ID, "health", p.Health, "bombs", p.Bombs)
	return nil
}

// Resize adapts to a new terminal size and keeps the run going.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
}

// Level returns the level being played.
func (g *Game) Level() (levels.Level, bool) {
	if g.levelIndex < 0 || g.levelIndex >= len(g.levels) {
		return levels.Level{}, false
	}
	return g.levels[g.levelIndex], true
}

// LevelID returns the ID of the level being played.
func (g *Game) LevelID() string {
	lvl, ok := g.Level()
	if !ok {
		return ""
	}
	return lvl.ID
}

// World exposes the running simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	dt := in.Elapsed
	if dt <= 0 {
		dt = g.runtime.TickInterval()
	}
	g.ticks++
	g.banner.Tick(dt)

	score := g.score()
	g.world.SetEnemySpeedScale(g.difficulty.Speed(1, score, g.ticks))
	if g.mode == ModeSurvival {
		g.world.SetSpawnInterval(g.difficulty.SpawnInterval(g.cfg.Enemies.SpawnInterval, score, g.ticks))
	}

	report := g.world.Step(dt, sim.Input{
		MoveX:     in.Axis(core.ActionLeft, core.ActionRight),
		MoveY:     in.Axis(core.ActionDown, core.ActionUp),
		PlaceBomb: in.Has(core.ActionPlaceBomb),
	})
	g.logEvents(report)

	if p, ok := g.world.Player(); ok {
		g.camera.Follow(p.Pos)
	}

	switch {
	case g.world.Over():
		g.state = StateGameOver
		logger.Info("run over", "game", g.ID(), "level", g.LevelID(), "score", g.score())
	case g.mode == ModeCampaign && g.cleared():
		g.handleLevelClear()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) cleared() bool {
	return g.world.BreakableLeft() == 0 && g.world.EnemiesLeft() == 0
}

// handleLevelClear banks the score and moves to the next level.
func (g *Game) handleLevelClear() {
	carry, _ := g.world.Player()
	g.banked += g.world.Session().Score
	logger.Info("level cleared", "level", g.LevelID(), "score", g.banked)

	g.levelIndex++
	if g.levelIndex >= len(g.levels) {
		g.levelIndex = len(g.levels) - 1
		g.state = StateWin
		return
	}
	if err := g.enterLevel(carry); err != nil {
		g.fail(err)
	}
}

func (g *Game) logEvents(r sim.StepReport) {
	for _, e := range r.Events {
		switch e.Kind {
		case sim.EventBombPlaced, sim.EventExplosionEnded, sim.EventEnemySpawned:
			// Too chatty even for debug
		default:
			logger.Debug(e.Kind.String(), "id", e.ID, "x", e.Pos.X, "y", e.Pos.Y, "value", e.Value)
		}
	}
}

func (g *Game) score() int {
	if g.world == nil {
		return g.banked
	}
	if g.state == StateWin {
		return g.banked
	}
	return g.banked + g.world.Session().Score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDSurvival, func() registry.Game {
		return NewSurvival()
	})
}
