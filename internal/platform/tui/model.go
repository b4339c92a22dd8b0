package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/puzzle"
	"github.com/vovakirdan/huematch/internal/registry"
	"github.com/vovakirdan/huematch/internal/storage"
)

// Env bundles the services shared by every screen of a session.
type Env struct {
	Store    *storage.Store // nil disables persistence
	Player   string
	PageSize int
	Logger   *log.Logger
	Renderer *ScreenRenderer
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

func (e Env) renderer() *ScreenRenderer {
	if e.Renderer == nil {
		return NewScreenRenderer(nil)
	}
	return e.Renderer
}

// Reviewable is implemented by games that keep a round history.
type Reviewable interface {
	Engine() *puzzle.Engine
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game       registry.Game
	env        Env
	screen     *core.Screen
	renderer   *ScreenRenderer
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	history    *HistoryModel
	embedded   bool // owned by a SessionModel; going back does not quit
	quitting   bool
	backToMenu bool
	saved      bool // Whether the result has been saved for current game over
	savedID    string
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, env Env, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		env:        env,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   env.renderer(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.history != nil {
		if _, ok := msg.(TickMsg); !ok {
			return m.updateHistory(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionBack)

	case core.ActionHistory:
		if m.gameState.GameOver {
			m.openHistory()
		}

	case core.ActionPause, core.ActionRestart:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m *GameModel) openHistory() {
	r, ok := m.game.(Reviewable)
	if !ok || r.Engine() == nil {
		return
	}
	h := NewHistoryModel(r.Engine().Ledger(), m.env.PageSize, m.config.ScreenW, m.config.ScreenH, m.renderer)
	m.history = &h
}

func (m GameModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
		if r, ok := m.game.(registry.Resizer); ok {
			r.Resize(wsm.Width, wsm.Height)
		}
	}

	updated, cmd := m.history.Update(msg)
	h, ok := updated.(HistoryModel)
	if !ok {
		return m, cmd
	}
	switch {
	case h.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case h.Done():
		m.history = nil
	default:
		m.history = &h
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.history != nil {
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.saved = false
		m.savedID = ""
	}

	// Save the result on game over (once)
	if m.gameState.GameOver && !m.saved {
		m.saveResult()
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the score and, for reviewable games, the full game.
// Failures are logged; the game continues regardless.
func (m *GameModel) saveResult() {
	store := m.env.Store
	if store == nil {
		return
	}
	logger := m.env.logger()

	if m.gameState.Score > 0 {
		if _, err := store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			logger.Warn("cannot save score", "mode", m.game.ID(), "err", err)
		}
	}

	r, ok := m.game.(Reviewable)
	if !ok || r.Engine() == nil {
		return
	}
	e := r.Engine()
	if e.Ledger().LevelsPlayed() == 0 {
		return
	}
	rec := storage.RecordFromSummary(e.Stats(), m.env.Player)
	id, err := store.SaveGame(rec, e.Ledger().Entries())
	if err != nil {
		logger.Warn("cannot save game", "mode", m.game.ID(), "err", err)
		return
	}
	m.savedID = id
	logger.Debug("game saved", "id", id, "mode", rec.Mode, "score", rec.Score, "player", rec.Player)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".huematch", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SavedGameID returns the stored ID of the finished game, if it was saved.
func (m GameModel) SavedGameID() string {
	return m.savedID
}

// InHistory reports whether the history review is open.
func (m GameModel) InHistory() bool {
	return m.history != nil
}

// Run starts the Bubble Tea program for one game. It returns when the
// player quits or goes back from the game over screen.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) (GameModel, error) {
	model := NewGameModel(game, env, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks answer rounds
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(GameModel); ok {
		return fm, nil
	}
	return model, nil
}
