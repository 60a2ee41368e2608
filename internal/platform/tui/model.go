package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/handtris/internal/core"
	"github.com/vovakirdan/handtris/internal/gesture"
	"github.com/vovakirdan/handtris/internal/registry"
	"github.com/vovakirdan/handtris/internal/storage"
)

const footerHeight = 1

// GestureMsg carries one fired gesture into the program.
type GestureMsg struct {
	Symbol gesture.Symbol
}

// Options tunes a Model beyond the runtime config.
type Options struct {
	Player        string      // Recorded with scores
	ScreenshotDir string      // Default ~/.handtris/screenshots
	Logger        *log.Logger // Nil discards
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	status    string // Last platform message shown in the footer
	quitting  bool
	saved     string // Session whose result was recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:  store,
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "session", m.game.SessionID())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case GestureMsg:
		if a := msg.Symbol.Action(); a != core.ActionNone {
			m.game.HandleAction(a)
			m.sync()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Advance(time.Time(msg))
		m.sync()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		m.game.HandleAction(a)
		m.status = ""
		m.logger.Info("game restarted", "game", m.game.ID(), "session", m.game.SessionID())
	default:
		m.game.HandleAction(a)
	}

	m.sync()
	return m, nil
}

// sync refreshes the cached state and records a finished game once.
func (m *Model) sync() {
	m.gameState = m.game.State()
	if !m.gameState.GameOver || m.saved == m.game.SessionID() {
		return
	}
	m.saved = m.game.SessionID()
	m.logger.Info("game over",
		"game", m.game.ID(),
		"score", m.gameState.Score,
		"lines", m.gameState.Lines,
		"level", m.gameState.Level,
	)

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		GameID:    m.game.ID(),
		SessionID: m.game.SessionID(),
		Player:    m.opts.Player,
		Score:     m.gameState.Score,
		Lines:     m.gameState.Lines,
		Level:     m.gameState.Level,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes a PNG when the game can export one, otherwise the
// text of the screen.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = "screenshot failed: no home directory"
			return
		}
		dir = filepath.Join(home, ".handtris", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path, err := m.writeScreenshot(dir, timestamp)
	if err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

func (m *Model) writeScreenshot(dir, timestamp string) (string, error) {
	shooter, ok := m.game.(registry.Screenshotter)
	if !ok {
		m.game.Render(m.screen)
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
		return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", err
	}
	if err := shooter.Screenshot(f); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.status
	if footer == "" {
		footer = m.help.View(m.keys)
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// State returns the last synced game summary.
func (m Model) State() core.GameState {
	return m.gameState
}

// Status returns the footer message, if any.
func (m Model) Status() string {
	return m.status
}

// NewProgram prepares a Bubble Tea program for the game. Callers may Send
// GestureMsg values to it while it runs.
func NewProgram(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options, extra ...tea.ProgramOption) *tea.Program {
	model := NewModel(game, store, cfg, opts)
	popts := append([]tea.ProgramOption{tea.WithAltScreen()}, extra...)
	return tea.NewProgram(model, popts...)
}

// Run starts the game and blocks until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	_, err := NewProgram(game, store, cfg, opts).Run()
	return err
}
