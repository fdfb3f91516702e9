package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/arcade-collection/internal/registry"
	"github.com/vovakirdan/arcade-collection/internal/storage"
)

// Scoreboard layout
const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
	maxScores          = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardClosedMsg tells a hosting model the scoreboard was dismissed.
type ScoreboardClosedMsg struct{}

// ScoreboardModel browses the score history of each registered game.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	store   *storage.Store
	scores  []storage.Run
	summary storage.GameSummary

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	embedded  bool // Hosted by the launcher; back closes instead of quitting
	now       func() time.Time
}

// NewScoreboardModel creates a scoreboard. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
		now:    time.Now,
	}
	m.table = m.newTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// newTable sizes the columns to the space left beside the sidebar.
func (m ScoreboardModel) newTable() table.Model {
	when := 16
	if room := m.width - 4; m.wide() {
		when = min(max(room-sidebarWidth-3-36, 12), 20)
	}
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "When", Width: when},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// loadScores fetches the history of one game. Read errors show as empty.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores = nil
	m.summary = storage.GameSummary{GameID: gameID}
	if m.store != nil {
		ctx := context.Background()
		if scores, err := m.store.TopScores(ctx, gameID, maxScores); err == nil {
			m.scores = scores
		}
		if summary, err := m.store.Summary(ctx, gameID); err == nil {
			m.summary = summary
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	now := m.now()
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		level := s.Difficulty
		if level == "" {
			level = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(s.Score)),
			level,
			formatDuration(s.Duration),
			humanize.RelTime(s.CreatedAt, now, "ago", "from now"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves to another game, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.loadScores(m.games[m.current].ID)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
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
				return m, func() tea.Msg { return ScoreboardClosedMsg{} }
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.current].Title
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.summaryLine(), m.width))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.tableView())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.selector(), m.width))
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists every game with the current one highlighted.
func (m ScoreboardModel) sidebar() string {
	lines := []string{"Games", strings.Repeat("─", sidebarWidth-4)}
	for i, g := range m.games {
		name := truncate(g.Title, sidebarWidth-6)
		if i == m.current {
			lines = append(lines, activeStyle.Render("> "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}
	return panelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// selector shows the current game between arrows on narrow terminals.
func (m ScoreboardModel) selector() string {
	if len(m.games) == 0 {
		return ""
	}
	return fmt.Sprintf("◀ %s ▶", activeStyle.Render(m.games[m.current].Title))
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// summaryLine describes the selected game's whole history.
func (m ScoreboardModel) summaryLine() string {
	if m.summary.Runs == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("%s runs  Best %s  Avg %.0f  Played %s  Last %s",
		humanize.Comma(int64(m.summary.Runs)),
		humanize.Comma(int64(m.summary.HighScore)),
		m.summary.AvgScore,
		formatDuration(m.summary.TotalTime),
		humanize.RelTime(m.summary.LastPlayed, m.now(), "ago", "from now"),
	)
}

// formatDuration prints m:ss, or h:mm:ss for long sessions.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h, m, s := int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on its own.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
