package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

const (
	menuTitle    = "B O M B E R"
	menuControls = "↑/↓ move  Enter play  Tab scores  Q quit"
)

// MenuItem is one mode in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // 0 when there is no store or no saved run
}

// MenuModel picks a mode. It draws into a core.Screen like the games do,
// so it shares their painter and colors.
type MenuModel struct {
	items   []MenuItem
	cursor  int
	config  core.RuntimeConfig
	keys    *KeyMapper
	screen  *core.Screen
	painter *Painter

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered mode with its best score. A nil
// renderer uses lipgloss's default.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:   items,
		config:  cfg,
		keys:    NewKeyMapper(),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter: NewPainter(r),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleKey moves the cursor, wrapping at both ends. Leaving the menu
// ends the program with tea.Quit; session hosts drop that command.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)

	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw(m.screen)
	return m.painter.Render(m.screen)
}

// draw lays the menu out vertically centered: title, one row per mode,
// controls on the last row.
func (m MenuModel) draw(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	top := max((h-len(m.items))/2-3, 0)
	drawCentered(dst, top, "● "+menuTitle+" ●", core.ColorBrightYellow)
	drawCentered(dst, top+2, "Select a mode", core.ColorGray)

	for i, item := range m.items {
		y := top + 4 + i
		line := item.Title
		if item.Best > 0 {
			line = fmt.Sprintf("%s  best %d", line, item.Best)
		}
		x := (w - len([]rune(line))) / 2

		if i == m.cursor {
			dst.SetColored(x-2, y, '▶', core.ColorBrightRed)
			dst.DrawTextColored(x, y, line, core.ColorBrightWhite)
		} else {
			dst.DrawTextColored(x, y, line, core.ColorWhite)
		}
	}

	drawCentered(dst, h-1, menuControls, core.ColorGray)
}

func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	dst.DrawTextColored((dst.Width()-len([]rune(text)))/2, y, text, c)
}

// Selected returns the chosen mode, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config with the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is what the player chose in RunMenu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker full screen until the player chooses.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, nil), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
