package tui

import (
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-collection/internal/launcher"
	"github.com/vovakirdan/arcade-collection/internal/stats"
)

func testEntries(n int, exe string) []launcher.Entry {
	entries := make([]launcher.Entry, n)
	for i := range entries {
		id := string(rune('a' + i))
		entries[i] = launcher.Entry{
			ID:          id,
			Title:       "Game " + strings.ToUpper(id),
			Description: "A test game",
			Exec:        exe,
		}
	}
	return entries
}

func newTestLauncher(t *testing.T, entries []launcher.Entry, width, height int) LauncherModel {
	t.Helper()
	st, err := stats.Load(filepath.Join(t.TempDir(), "stats.json"))
	if err != nil {
		t.Fatalf("stats.Load() failed: %v", err)
	}
	l := launcher.New(entries, st, log.New(io.Discard))
	return NewLauncherModel(l, nil, width, height)
}

func send(t *testing.T, m LauncherModel, msg tea.Msg) (LauncherModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(LauncherModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestLauncherGridNavigation(t *testing.T) {
	// 100 columns fit three cards per row.
	m := newTestLauncher(t, testEntries(7, "/nonexistent"), 100, 40)
	if got := m.columns(); got != 3 {
		t.Fatalf("columns() = %d, want 3", got)
	}

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, 1},
		{runeKey('j'), 4},
		{runeKey('l'), 5},
		{tea.KeyMsg{Type: tea.KeyDown}, 5}, // 8 is past the end
		{runeKey('h'), 4},
		{runeKey('k'), 1},
		{tea.KeyMsg{Type: tea.KeyUp}, 1},
		{tea.KeyMsg{Type: tea.KeyLeft}, 0},
		{tea.KeyMsg{Type: tea.KeyLeft}, 0},
	}
	for i, s := range steps {
		m, _ = send(t, m, s.msg)
		if m.cursor != s.want {
			t.Fatalf("step %d (%s): cursor = %d, want %d", i, s.msg.String(), m.cursor, s.want)
		}
	}
}

func TestLauncherFailedLaunchShowsStatus(t *testing.T) {
	m := newTestLauncher(t, testEntries(2, "/nonexistent/arcade-game"), 80, 24)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.HasPrefix(m.status, "Could not start Game A") {
		t.Errorf("status = %q", m.status)
	}
	if !strings.Contains(m.View(), "Never played") {
		t.Error("failed launch should not count as a play")
	}
}

func TestLauncherLaunchAndPoll(t *testing.T) {
	exe, err := exec.LookPath("true")
	if err != nil {
		t.Skip("no true binary")
	}
	m := newTestLauncher(t, testEntries(1, exe), 80, 24)
	m, _ = send(t, m, runeKey(' '))
	if m.status != "Started Game A" {
		t.Fatalf("status = %q", m.status)
	}
	if _, ok := m.launcher.Wait("a", 5*time.Second); !ok {
		t.Fatal("child did not exit")
	}

	m, cmd := send(t, m, pollMsg(time.Now()))
	if cmd == nil {
		t.Error("poll should reschedule itself")
	}
	if m.status != "Game A closed" {
		t.Errorf("status after poll = %q", m.status)
	}
	if !strings.Contains(m.View(), "Played 1x") {
		t.Error("card should show the recorded play")
	}
}

func TestLauncherCardAt(t *testing.T) {
	m := newTestLauncher(t, testEntries(4, "/nonexistent"), 100, 40)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"header", 5, 1, -1},
		{"first card", 5, headerLines, 0},
		{"second card", gridMargin + cardStride + 2, headerLines + 3, 1},
		{"gap", gridMargin + cardStride - 1, headerLines, -1},
		{"second row", 5, headerLines + cardHeight, 3},
		{"past the end", gridMargin + cardStride + 2, headerLines + cardHeight, -1},
		{"left margin", 0, headerLines, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.cardAt(tt.x, tt.y); got != tt.want {
				t.Errorf("cardAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLauncherMouse(t *testing.T) {
	// 24 rows leave room for three card rows of one column each.
	m := newTestLauncher(t, testEntries(6, "/nonexistent"), 32, 24)
	if m.visibleRows() != 3 || m.maxOffset() != 3 {
		t.Fatalf("visibleRows = %d maxOffset = %d", m.visibleRows(), m.maxOffset())
	}

	wheel := func(b tea.MouseButton) tea.MouseMsg {
		return tea.MouseMsg{Button: b, Action: tea.MouseActionPress}
	}
	for range 5 {
		m, _ = send(t, m, wheel(tea.MouseButtonWheelDown))
	}
	if m.offset != 3 {
		t.Errorf("offset = %d, want clamped to 3", m.offset)
	}
	m, _ = send(t, m, wheel(tea.MouseButtonWheelUp))
	if m.offset != 2 {
		t.Errorf("offset = %d, want 2", m.offset)
	}

	click := tea.MouseMsg{X: 5, Y: headerLines + cardHeight, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	m, _ = send(t, m, click)
	if m.cursor != 3 {
		t.Errorf("click selected %d, want 3", m.cursor)
	}
	if !strings.HasPrefix(m.status, "Could not start Game D") {
		t.Errorf("click should launch, status = %q", m.status)
	}
}

func TestLauncherKeepsCursorVisible(t *testing.T) {
	m := newTestLauncher(t, testEntries(6, "/nonexistent"), 32, 24)
	for range 5 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != 5 || m.offset != 3 {
		t.Errorf("cursor = %d offset = %d, want 5 and 3", m.cursor, m.offset)
	}
	if !strings.Contains(m.View(), "Game F") {
		t.Error("selected card should be drawn")
	}
}

func TestLauncherScoreboardRoundTrip(t *testing.T) {
	m := newTestLauncher(t, testEntries(2, "/nonexistent"), 100, 30)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view expected")
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("closing the scoreboard should notify the launcher")
	}
	m, _ = send(t, m, cmd())
	if m.board != nil || m.IsQuitting() {
		t.Error("launcher should be back on the grid")
	}
}

func TestLauncherQuit(t *testing.T) {
	m := newTestLauncher(t, testEntries(1, "/nonexistent"), 80, 24)
	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Dino", 10, "Dino"},
		{"Gravity Flip Ninja", 8, "Gravity…"},
		{"Snake", 1, "S"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
