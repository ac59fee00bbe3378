package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

const maxScores = 100

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	TopScoresForLevel(levelID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the scoreboard key bindings.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type scoreboardStyles struct {
	title, tab, activeTab, summary, frame, empty, err, help lipgloss.Style
	table                                                   table.Styles
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("52"))

	return scoreboardStyles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		tab:       r.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		activeTab: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("52")).Padding(0, 1),
		summary:   r.NewStyle().Foreground(lipgloss.Color("245")),
		frame:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		empty:     r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2),
		err:       r.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2),
		help:      r.NewStyle().Foreground(lipgloss.Color("241")),
		table:     ts,
	}
}

// ScoreboardModel shows the best runs of each mode, one tab per mode.
type ScoreboardModel struct {
	modes   []registry.GameInfo
	current int
	store   ScoreSource
	levelID string // When set, only runs that ended on this level

	scores  []storage.ScoreEntry
	stats   *storage.GameStats // Whole-mode totals; nil under a level filter
	loadErr error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	styles scoreboardStyles
	width  int
	height int

	embedded  bool // Back hands control to the host instead of quitting
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens on the first registered mode. A non-empty
// levelID limits every tab to runs that ended on that level.
func NewScoreboardModel(store ScoreSource, levelID string, width, height int) ScoreboardModel {
	return newScoreboard(store, levelID, width, height, nil)
}

func newScoreboard(store ScoreSource, levelID string, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	m := ScoreboardModel{
		modes:   registry.List(),
		store:   store,
		levelID: levelID,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		styles:  newScoreboardStyles(r),
	}
	m.resize(width, height)
	m.load()
	return m
}

// resize rebuilds the table for a new terminal size. The level column
// takes whatever width the fixed columns leave.
func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	levelW := min(max(width-6-36, 10), 28)
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: levelW},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
		table.WithStyles(m.styles.table),
	)
	m.fillTable()
}

// load fetches the current mode's scores.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	mode := m.CurrentGame()

	switch {
	case m.store == nil || mode == "":
	case m.levelID == "":
		m.scores, m.loadErr = m.store.TopScores(mode, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(mode)
		}
	default:
		var all []storage.ScoreEntry
		all, m.loadErr = m.store.TopScoresForLevel(m.levelID, maxScores)
		for _, e := range all {
			if e.GameID == mode {
				m.scores = append(m.scores, e)
			}
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		level := s.LevelID
		if level == "" {
			level = "-"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			level,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchMode moves to the tab delta steps away, wrapping.
func (m *ScoreboardModel) switchMode(delta int) {
	n := len(m.modes)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.load()
}

// Rows returns the rows currently in the table.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

// CurrentGame returns the mode ID of the open tab.
func (m ScoreboardModel) CurrentGame() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.current].ID
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.levelID != "" {
		title += " - level " + m.levelID
	}

	sections := []string{
		m.styles.title.Render(title),
		m.renderTabs(),
		m.renderSummary(),
		m.styles.frame.Render(m.renderBody()),
		m.styles.help.Render(m.help.View(m.keys)),
	}
	out := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, out)
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.current {
			tabs[i] = m.styles.activeTab.Render(g.Title)
		} else {
			tabs[i] = m.styles.tab.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width && len(m.modes) > 0 {
		line = m.styles.activeTab.Render("< " + m.modes[m.current].Title + " >")
	}
	return line
}

// renderSummary totals the whole mode, or the listed runs under a level
// filter.
func (m ScoreboardModel) renderSummary() string {
	if len(m.scores) == 0 {
		return ""
	}
	if st := m.stats; st != nil {
		return m.styles.summary.Render(fmt.Sprintf("%s, best %d, avg %.0f, last played %s",
			pluralRuns(st.GamesCount), st.HighScore, st.AvgScore, st.LastPlayed.Format("Jan 02 15:04")))
	}
	return m.styles.summary.Render(fmt.Sprintf("%s, best %d", pluralRuns(len(m.scores)), m.scores[0].Score))
}

func pluralRuns(n int) string {
	if n == 1 {
		return "1 run"
	}
	return fmt.Sprintf("%d runs", n)
}

func (m ScoreboardModel) renderBody() string {
	switch {
	case m.loadErr != nil:
		return m.styles.err.Render(m.loadErr.Error())
	case len(m.scores) == 0:
		return m.styles.empty.Render(strings.Join([]string{
			"No scores recorded yet.",
			"Blow up some walls to set one!",
		}, "\n"))
	}
	return m.table.View()
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard full screen. It returns true when
// the player went back rather than quit.
func RunScoreboard(store *storage.Store, levelID string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(scoreSource(store), levelID, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

// scoreSource avoids wrapping a nil store in a non-nil interface.
func scoreSource(s *storage.Store) ScoreSource {
	if s == nil {
		return nil
	}
	return s
}
