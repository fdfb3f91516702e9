package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-collection/internal/registry"
	"github.com/vovakirdan/arcade-collection/internal/storage"
)

func seededBoard(t *testing.T) ScoreboardModel {
	t.Helper()
	if !registry.Exists("script") {
		registry.Register("script", func() registry.Game { return &scriptGame{} })
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	runs := []storage.Run{
		{GameID: "script", Score: 1200, Difficulty: "hard", Duration: 95 * time.Second},
		{GameID: "script", Score: 300, Duration: 20 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(ctx, r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	for i, g := range m.games {
		if g.ID == "script" {
			m.current = i
			m.loadScores(g.ID)
		}
	}
	return m
}

func TestScoreboardRows(t *testing.T) {
	m := seededBoard(t)
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := []string{"#1", "1,200", "hard", "1:35"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][2] != "-" {
		t.Errorf("missing difficulty shown as %q, want -", rows[1][2])
	}
}

func TestScoreboardSummary(t *testing.T) {
	m := seededBoard(t)
	line := m.summaryLine()
	for _, part := range []string{"2 runs", "Best 1,200", "Avg 750", "Played 1:55"} {
		if !strings.Contains(line, part) {
			t.Errorf("summary %q missing %q", line, part)
		}
	}
}

func TestScoreboardStandaloneBackQuits(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("standalone scoreboard should quit on back")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59*time.Second + 600*time.Millisecond, "1:00"},
		{95 * time.Second, "1:35"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
