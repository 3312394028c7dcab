package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/games/whack"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

// ScoreStore is the persistence the play screen needs.
type ScoreStore interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	HighScore(d config.Difficulty) (int, error)
}

// Model is the Bubble Tea model for one whack-a-mole player.
type Model struct {
	game       *whack.Game
	screen     *core.Screen
	store      ScoreStore
	config     core.RuntimeConfig
	player     string
	keys       KeyMap
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	saved      int // Finished games recorded this session
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil to play without persistence.
func NewModel(game *whack.Game, store ScoreStore, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if store != nil {
		best, err := store.HighScore(game.Difficulty())
		if err != nil {
			logger.Warn("could not load high score", "difficulty", game.Difficulty(), "error", err)
		}
		game.SetBest(best)
	}

	// Reset here so the title screen renders before the first tick
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		keys:       DefaultKeyMap(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			m.game.Controller().Stop()
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// The layout follows the screen size, so a resize keeps the game going
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleMouse turns a left click on a hole into a selection.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if i, ok := m.game.HoleAt(msg.X, msg.Y); ok {
		m.inputFrame.Select(i)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished {
		m.saveScore(m.game.LastSession())
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished game. Best-effort: the game continues regardless.
func (m *Model) saveScore(s whack.Session) {
	m.saved++
	if m.store == nil {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		Player:     m.player,
		Difficulty: s.Difficulty,
		Score:      s.Score,
		Duration:   m.game.Duration(),
	})
	if err != nil {
		m.logger.Warn("could not save score", "player", m.player, "score", s.Score, "error", err)
		return
	}
	m.logger.Debug("score saved", "player", m.player, "score", s.Score)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Saved returns how many finished games were recorded.
func (m Model) Saved() int {
	return m.saved
}

// Run starts the Bubble Tea program with the given model.
func Run(game *whack.Game, store ScoreStore, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click holes with the mouse
	)

	_, err := p.Run()
	return err
}
