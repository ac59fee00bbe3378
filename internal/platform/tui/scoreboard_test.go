package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

func init() {
	registry.Register("script", func() registry.Game { return &scriptGame{} })
}

// fakeScores serves canned entries.
type fakeScores struct {
	entries []storage.ScoreEntry
	err     error
}

func (f *fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	var out []storage.ScoreEntry
	for _, e := range f.entries {
		if e.GameID == gameID {
			out = append(out, e)
		}
	}
	return out, f.err
}

func (f *fakeScores) TopScoresForLevel(levelID string, limit int) ([]storage.ScoreEntry, error) {
	var out []storage.ScoreEntry
	for _, e := range f.entries {
		if e.LevelID == levelID {
			out = append(out, e)
		}
	}
	return out, f.err
}

func (f *fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	st := &storage.GameStats{GameID: gameID}
	total := 0
	for _, e := range f.entries {
		if e.GameID != gameID {
			continue
		}
		st.GamesCount++
		st.HighScore = max(st.HighScore, e.Score)
		total += e.Score
		if e.CreatedAt.After(st.LastPlayed) {
			st.LastPlayed = e.CreatedAt
		}
	}
	if st.GamesCount > 0 {
		st.AvgScore = float64(total) / float64(st.GamesCount)
	}
	return st, f.err
}

func sampleScores() *fakeScores {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &fakeScores{entries: []storage.ScoreEntry{
		{GameID: "script", LevelID: "01-intro", Score: 300, CreatedAt: at},
		{GameID: "script", LevelID: "02-rooms", Score: 200, CreatedAt: at},
		{GameID: "other", LevelID: "02-rooms", Score: 900, CreatedAt: at},
	}}
}

func TestScoreboardRows(t *testing.T) {
	m := NewScoreboardModel(sampleScores(), "", 100, 30)
	for m.CurrentGame() != "script" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "300" || rows[0][2] != "01-intro" {
		t.Errorf("rows[0] = %v, expected #1 300 01-intro", rows[0])
	}
}

func TestScoreboardSummary(t *testing.T) {
	m := NewScoreboardModel(sampleScores(), "", 100, 30)
	for m.CurrentGame() != "script" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	want := "2 runs, best 300, avg 250, last played Mar 01 12:00"
	if got := m.renderSummary(); !strings.Contains(got, want) {
		t.Errorf("renderSummary() = %q, expected it to contain %q", got, want)
	}

	filtered := NewScoreboardModel(sampleScores(), "02-rooms", 100, 30)
	for filtered.CurrentGame() != "script" {
		next, _ := filtered.Update(tea.KeyMsg{Type: tea.KeyTab})
		filtered = next.(ScoreboardModel)
	}
	if got := filtered.renderSummary(); !strings.Contains(got, "1 run, best 200") {
		t.Errorf("filtered renderSummary() = %q, expected 1 run, best 200", got)
	}
}

func TestScoreboardLevelFilter(t *testing.T) {
	m := NewScoreboardModel(sampleScores(), "02-rooms", 100, 30)
	for m.CurrentGame() != "script" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	rows := m.Rows()
	if len(rows) != 1 || rows[0][1] != "200" {
		t.Errorf("rows = %v, expected the single 02-rooms run of this mode", rows)
	}
	if !strings.Contains(m.View(), "level 02-rooms") {
		t.Error("title does not name the level filter")
	}
}

func TestScoreboardLoadError(t *testing.T) {
	src := &fakeScores{err: errors.New("storage: disk on fire")}
	m := NewScoreboardModel(src, "", 100, 30)

	if !strings.Contains(m.View(), "disk on fire") {
		t.Error("load error not shown")
	}
}

func TestScoreboardNilStore(t *testing.T) {
	m := NewScoreboardModel(scoreSource(nil), "", 60, 20)
	if len(m.Rows()) != 0 {
		t.Error("expected no rows without a store")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty message not shown")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	cfg := core.DefaultConfig()
	m := NewSessionModel(cfg, SessionOptions{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionModel)
	if m.view != viewScores {
		t.Fatalf("view = %v, expected scoreboard", m.view)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.view != viewMenu {
		t.Fatalf("view = %v, expected menu after back", m.view)
	}
	if cmd != nil {
		t.Error("back from the scoreboard should not quit the session")
	}
}

func TestSessionStartsGame(t *testing.T) {
	cfg := core.DefaultConfig()
	m := NewSessionModel(cfg, SessionOptions{})

	for m.menu.items[m.menu.cursor].GameID != "script" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(SessionModel)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)

	if m.view != viewGame || m.game == nil {
		t.Fatal("selecting a mode did not start a game")
	}
	if cmd == nil {
		t.Error("expected the game tick loop to start")
	}
	if !strings.Contains(m.View(), "script") {
		t.Error("game view not rendered")
	}
}
