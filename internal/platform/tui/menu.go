package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-collection/internal/launcher"
	"github.com/vovakirdan/arcade-collection/internal/storage"
)

// Card grid layout
const (
	cardWidth    = 28 // Rendered width without border
	cardGap      = 1
	cardStride   = cardWidth + 2 + cardGap
	cardHeight   = 6 // Four content lines plus border
	gridMargin   = 1
	headerLines  = 3
	footerLines  = 3
	pollInterval = 500 * time.Millisecond
)

// LauncherKeyMap defines the key bindings for the launcher.
type LauncherKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Launch key.Binding
	Scores key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LauncherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Scores, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LauncherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Launch, k.Scores, k.Help, k.Quit},
	}
}

// DefaultLauncherKeyMap returns default key bindings.
func DefaultLauncherKeyMap() LauncherKeyMap {
	return LauncherKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Launch: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	launcherTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cardStyle          = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Width(cardWidth).
				Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("212"))
	cardTitleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	runningStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type pollMsg time.Time

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return pollMsg(t) })
}

// LauncherModel is the Bubble Tea model for the game picker.
type LauncherModel struct {
	launcher *launcher.Launcher
	entries  []launcher.Entry
	store    *storage.Store
	board    *ScoreboardModel

	cursor   int
	offset   int // First visible card row
	width    int
	height   int
	status   string
	keys     LauncherKeyMap
	help     help.Model
	now      func() time.Time
	quitting bool
}

// NewLauncherModel creates the launcher menu. store may be nil, which hides
// score history.
func NewLauncherModel(l *launcher.Launcher, store *storage.Store, width, height int) LauncherModel {
	return LauncherModel{
		launcher: l,
		entries:  l.Entries(),
		store:    store,
		width:    width,
		height:   height,
		keys:     DefaultLauncherKeyMap(),
		help:     help.New(),
		now:      time.Now,
	}
}

// Init starts polling children.
func (m LauncherModel) Init() tea.Cmd {
	return pollCmd()
}

// Update handles messages for the launcher.
func (m LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		m.collect()
		return m, pollCmd()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m, nil

	case ScoreboardClosedMsg:
		m.board = nil
		return m, nil
	}

	if m.board != nil {
		return m.updateBoard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m LauncherModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board := next.(ScoreboardModel)
	m.board = &board
	if board.IsQuitting() {
		m.quitting = true
	}
	return m, cmd
}

func (m LauncherModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.columns()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.move(-cols)
	case key.Matches(msg, m.keys.Down):
		m.move(cols)
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.Launch):
		m.launch(m.cursor)
	case key.Matches(msg, m.keys.Scores):
		board := NewScoreboardModel(m.store, m.width, m.height)
		board.embedded = true
		m.board = &board
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m LauncherModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.offset = max(m.offset-1, 0)
	case tea.MouseButtonWheelDown:
		m.offset = min(m.offset+1, m.maxOffset())
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		if i := m.cardAt(msg.X, msg.Y); i >= 0 {
			m.cursor = i
			m.launch(i)
		}
	}
	return m, nil
}

// move shifts the selection, staying on the grid.
func (m *LauncherModel) move(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.entries) {
		return
	}
	m.cursor = next
	m.scrollToCursor()
}

func (m *LauncherModel) launch(i int) {
	if i < 0 || i >= len(m.entries) {
		return
	}
	e := m.entries[i]
	if err := m.launcher.Launch(e.ID); err != nil {
		m.status = fmt.Sprintf("Could not start %s: %v", e.Title, err)
		return
	}
	m.status = fmt.Sprintf("Started %s", e.Title)
}

// collect reports children that ended since the last poll.
func (m *LauncherModel) collect() {
	for _, st := range m.launcher.Poll() {
		title := st.ID
		if e, ok := launcher.Find(m.entries, st.ID); ok {
			title = e.Title
		}
		if st.State == launcher.Failed {
			m.status = fmt.Sprintf("%s exited with code %d", title, st.ExitCode)
		} else {
			m.status = fmt.Sprintf("%s closed", title)
		}
	}
}

func (m LauncherModel) columns() int {
	return max((m.width-gridMargin)/cardStride, 1)
}

func (m LauncherModel) visibleRows() int {
	return max((m.height-headerLines-footerLines)/cardHeight, 1)
}

func (m LauncherModel) totalRows() int {
	cols := m.columns()
	return (len(m.entries) + cols - 1) / cols
}

func (m LauncherModel) maxOffset() int {
	return max(m.totalRows()-m.visibleRows(), 0)
}

func (m *LauncherModel) scrollToCursor() {
	row := m.cursor / m.columns()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+m.visibleRows() {
		m.offset = row - m.visibleRows() + 1
	}
	m.offset = min(max(m.offset, 0), m.maxOffset())
}

// cardAt maps a terminal cell to a card index, or -1 between cards.
func (m LauncherModel) cardAt(x, y int) int {
	if y < headerLines || x < gridMargin {
		return -1
	}
	if (x-gridMargin)%cardStride >= cardStride-cardGap {
		return -1
	}
	col := (x - gridMargin) / cardStride
	row := (y-headerLines)/cardHeight + m.offset
	if col >= m.columns() || row >= m.offset+m.visibleRows() {
		return -1
	}
	i := row*m.columns() + col
	if i >= len(m.entries) {
		return -1
	}
	return i
}

// Selected returns the highlighted entry.
func (m LauncherModel) Selected() (launcher.Entry, bool) {
	if len(m.entries) == 0 {
		return launcher.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// IsQuitting returns true if user requested to quit.
func (m LauncherModel) IsQuitting() bool {
	return m.quitting
}

// View renders the launcher.
func (m LauncherModel) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	var b strings.Builder
	b.WriteString(launcherTitleStyle.Render(centerText("A R C A D E", m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(fmt.Sprintf("%d games", len(m.entries)), m.width)))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText("No games in the catalog.", m.width))
		b.WriteString("\n")
	}

	cols := m.columns()
	last := min(m.offset+m.visibleRows(), m.totalRows())
	for row := m.offset; row < last; row++ {
		cards := make([]string, 0, cols*2)
		for col := range cols {
			i := row*cols + col
			if i >= len(m.entries) {
				break
			}
			if col > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(i))
		}
		b.WriteString(strings.Repeat(" ", gridMargin))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m LauncherModel) renderCard(i int) string {
	e := m.entries[i]
	inner := cardWidth - 2

	state := dimStyle.Render("ready")
	switch st := m.launcher.Status(e.ID); st.State {
	case launcher.Running:
		state = runningStyle.Render("● running")
	case launcher.Failed:
		state = failedStyle.Render(fmt.Sprintf("✗ exit %d", st.ExitCode))
	}

	lines := []string{
		cardTitleStyle.Render(truncate(e.Title, inner)),
		truncate(e.Description, inner),
		dimStyle.Render(truncate(m.launcher.Stats(e).Describe(m.now()), inner)),
		state,
	}

	style := cardStyle
	if i == m.cursor {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// truncate shortens text to width runes with an ellipsis.
func truncate(text string, width int) string {
	r := []rune(text)
	if len(r) <= width {
		return text
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunLauncher runs the launcher menu until the user quits. Children keep
// running after it exits.
func RunLauncher(l *launcher.Launcher, store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewLauncherModel(l, store, width, height),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
