package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
	"github.com/vovakirdan/arcade-collection/internal/platform"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

// Model is the Bubble Tea model for running one arcade game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	session   *platform.Session
	config    core.RuntimeConfig
	keys      *KeyMapper
	gameState core.GameState
	quitting  bool
}

// NewModel resets the game and wraps it in a Bubble Tea model.
func NewModel(game registry.Game, session *platform.Session, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if session == nil {
		session = &platform.Session{}
	}

	game.Reset(cfg)
	session.Begin()

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		session:   session,
		config:    cfg,
		keys:      NewKeyMapper(HoldTicks(cfg)),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The scene scales to any size, so the game keeps running.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.keys.latch.Release()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Press(msg) {
	case ControlQuit, ControlBack:
		m.quitting = true
		return m, tea.Quit
	case ControlScreenshot:
		if err := m.saveScreenshot(); err != nil {
			m.session.Log().Warn("screenshot failed", "err", err)
		}
	}
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	result := m.game.Step(m.keys.Frame())
	m.gameState = result.State
	m.session.Observe(m.game.ID(), result)

	return m, tickCmd(m.config.TickDuration())
}

// State returns the state reported by the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() error {
	engine.Paint(m.game.Scene(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	engine.Paint(m.game.Scene(), m.screen)
	return RenderScreen(m.screen)
}

// Run plays a game in the terminal until the player quits.
func Run(game registry.Game, session *platform.Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, session, cfg),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
