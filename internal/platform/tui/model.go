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

	"github.com/vovakirdan/tui-codebreaker/internal/core"
	"github.com/vovakirdan/tui-codebreaker/internal/registry"
	"github.com/vovakirdan/tui-codebreaker/internal/storage"
)

// GameOptions configures a GameModel. Every field is optional.
type GameOptions struct {
	Store  *storage.Store // Result log; nil plays without saving
	Logger *log.Logger
	Player string // Recorded with every result

	// Standalone makes leaving the game quit the program instead of
	// handing control back to a menu.
	Standalone bool
}

// GameModel runs one game: it collects key presses into input frames,
// steps the game on every tick, logs finished results, and draws the screen.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	opts        GameOptions
	logger      *log.Logger
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current game over has been logged
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game lays itself out against the screen, so no reset is needed
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick steps the game with the collected input.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if !m.inputFrame.Empty() {
		m.logger.Debug("input", "variant", m.game.ID(), "actions", m.inputFrame.Actions)
	}
	result := m.game.Step(m.inputFrame)
	m.inputFrame = core.NewInputFrame()
	m.gameState = result.State

	// Log the result once per finished game
	switch {
	case m.gameState.GameOver && !m.resultSaved:
		m.saveResult()
		m.resultSaved = true
	case !m.gameState.GameOver:
		m.resultSaved = false
	}

	if result.Exit {
		m.backToMenu = true
		if m.opts.Standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult appends the finished game to the result log.
func (m GameModel) saveResult() {
	if m.opts.Store == nil {
		return
	}
	out := m.gameState.Outcome

	id, err := m.opts.Store.SaveResult(storage.Result{
		Variant:    m.game.ID(),
		Player:     m.opts.Player,
		Won:        out.Won,
		Attempts:   out.Attempts,
		Elapsed:    out.Elapsed,
		LossReason: out.LossReason,
	})
	if err != nil {
		m.logger.Warn("could not save result", "variant", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("result saved",
		"id", id,
		"variant", m.game.ID(),
		"won", out.Won,
		"attempts", out.Attempts,
		"elapsed", out.Elapsed.Round(time.Second),
	)
}

// saveScreenshot saves the current board as plain text.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".codebreaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the board with the help bar underneath.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keyMapper.Keys())
	boardH := max(m.config.ScreenH-lipgloss.Height(helpView), 0)
	m.screen.Resize(m.config.ScreenW, boardH)
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game asked to be left.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Run plays a single game in its own Bubble Tea program.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.Standalone = true
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
