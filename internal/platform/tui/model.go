package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Options carries the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // Nil disables score keeping
	Logger *log.Logger    // Nil discards
	RunID  string         // Run the saved scores belong to
	Keys   *KeyMapper     // Nil uses NewKeyMapper
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	title      string
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	runID      string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	gameTicks  int // Ticks played in the current game
	scores     *ScoreboardModel
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyMapper()
	}

	title := game.ID()
	if info, ok := registry.Lookup(game.ID()); ok {
		title = info.Title
	}

	return Model{
		game:       game,
		title:      title,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     opts.Logger,
		keys:       opts.Keys,
		runID:      opts.RunID,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "run", m.runID)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input received at now.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKeyToFrame(msg, now, &m.inputFrame) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScores:
		if m.gameState.GameOver || m.gameState.Paused {
			m.openScoreboard()
		}
	}

	return m, nil
}

// updateScoreboard routes input to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scores.Update(msg)
	sb := updated.(ScoreboardModel)

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}

	m.scores = &sb
	return m, cmd
}

func (m *Model) openScoreboard() {
	sb := NewScoreboardModel(ScoreboardOptions{
		Store:    m.store,
		GameID:   m.game.ID(),
		Title:    m.title,
		RunID:    m.runID,
		TickRate: m.config.TickRate,
		Width:    m.config.ScreenW,
		Height:   m.config.ScreenH,
	})
	sb.embedded = true
	m.scores = &sb

	// Keys held when the scoreboard opened never see their repeats
	m.keys.ReleaseAll(&m.inputFrame)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	resized := msg.Width != m.config.ScreenW || msg.Height != m.config.ScreenH

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.scores != nil {
		updated, _ := m.scores.Update(msg)
		sb := updated.(ScoreboardModel)
		m.scores = &sb
	}

	// The arena is sized from the screen, so a running game starts over
	if resized && !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.gameTicks = 0
		m.logger.Debug("arena resized", "cols", msg.Width, "rows", msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// The game waits while the scoreboard is open
	if m.scores != nil {
		return m, tickCmd(m.config.TickRate)
	}

	m.keys.Expire(now, &m.inputFrame)

	wasOver := m.gameState.GameOver
	// The frame is cleared below; the game gets its own copy
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State

	switch {
	case wasOver && !m.gameState.GameOver:
		m.gameTicks = 0
	case !m.gameState.GameOver && !m.gameState.Paused:
		m.gameTicks++
	}

	if result.GameOverEntered {
		m.saveScore()
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished game. Storage is best effort: a failure is
// logged and the game carries on.
func (m *Model) saveScore() {
	m.logger.Info("game over", "score", m.gameState.Score, "ticks", m.gameTicks)
	if m.store == nil {
		return
	}

	if _, err := m.store.SaveScore(m.game.ID(), m.runID, m.gameState.Score, m.gameTicks); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
