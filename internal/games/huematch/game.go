// Package huematch adapts the puzzle engine to the terminal: it maps
// clicked cells to board coordinates, drives the engine once per tick and
// draws the board, the HUD and the end-of-game summary.
package huematch

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/puzzle"
	"github.com/vovakirdan/huematch/internal/registry"
)

// flashSeconds is how long the result of a click stays in the HUD.
const flashSeconds = 0.6

var (
	overlayBg = core.RGB(0.08, 0.08, 0.1)
	textFg    = core.RGB(0.95, 0.95, 0.95)
	goodFg    = core.RGB(0.3, 0.85, 0.4)
	badFg     = core.RGB(0.9, 0.3, 0.3)
	markerFg  = core.RGB(1, 1, 1)
)

var modeDescriptions = map[puzzle.GameMode]string{
	puzzle.ModeInfinite:        "No clock. Play until you stop.",
	puzzle.ModeAgainstTheClock: "Score as many matches as you can in a minute.",
	puzzle.ModeTimeTrial:       "Every match adds time to the clock.",
}

// Package-level settings shared by every game created through the registry.
var (
	mu       sync.RWMutex
	settings = puzzle.DefaultSettings()
	logger   = log.New(io.Discard)
)

// SetSettings replaces the settings used by games reset afterwards.
func SetSettings(s puzzle.Settings) {
	mu.Lock()
	defer mu.Unlock()
	settings = s
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func currentSettings() (puzzle.Settings, *log.Logger) {
	mu.RLock()
	defer mu.RUnlock()
	return settings, logger
}

func init() {
	for _, m := range puzzle.Modes() {
		registry.Register(m.ID(), modeDescriptions[m], func() registry.Game {
			return New(m)
		})
	}
}

// Game is one playable mode.
type Game struct {
	mode   puzzle.GameMode
	engine *puzzle.Engine
	vp     Viewport
	err    error

	tickSeconds float64
	flash       string
	flashFg     core.Color
	flashLeft   float64
}

// New creates a game for mode. Call Reset before use.
func New(mode puzzle.GameMode) *Game {
	return &Game{mode: mode}
}

// ID returns the mode identifier.
func (g *Game) ID() string { return g.mode.ID() }

// Title returns the mode name.
func (g *Game) Title() string { return g.mode.Title() }

// Mode returns the puzzle mode.
func (g *Game) Mode() puzzle.GameMode { return g.mode }

// Engine returns the underlying engine, nil before Reset or when the
// settings were rejected.
func (g *Game) Engine() *puzzle.Engine { return g.engine }

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error { return g.err }

// Reset starts a new game sized to the terminal.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s, l := currentSettings()
	g.vp = NewViewport(cfg.ScreenW, cfg.ScreenH)
	g.tickSeconds = cfg.TickSeconds()
	g.flash = ""
	g.flashLeft = 0

	e, err := puzzle.New(s, puzzle.WithSeed(cfg.Seed), puzzle.WithLogger(l))
	if err != nil {
		g.engine = nil
		g.err = fmt.Errorf("huematch: %w", err)
		l.Error("cannot start game", "mode", g.mode.ID(), "err", err)
		return
	}
	g.engine = e
	g.err = nil
	if !g.vp.TooSmall() {
		e.SetBoardSize(g.vp.BoardSize())
	}
	e.NewGame(g.mode)
}

// Resize adapts the board to a new terminal size. The live round is laid
// out again; score and countdown are kept.
func (g *Game) Resize(width, height int) {
	g.vp = NewViewport(width, height)
	if g.engine != nil && !g.vp.TooSmall() {
		g.engine.SetBoardSize(g.vp.BoardSize())
	}
}

// Step applies one frame of input and advances the clock by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	e := g.engine
	if e == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && e.GameOver() {
		e.Restart()
		g.flash = ""
	}
	if g.vp.TooSmall() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if e.Paused() {
			e.Resume()
		} else {
			e.Pause()
		}
	}
	if in.Has(core.ActionBack) {
		e.End()
	}

	for _, c := range in.Clicks {
		p, ok := g.vp.ToWorld(c.Col, c.Row)
		if !ok {
			continue
		}
		e.OnClick(p.X, p.Y)
	}

	e.Tick(g.tickSeconds)
	if g.flashLeft > 0 {
		g.flashLeft -= g.tickSeconds
	}

	finished := 0
	for _, ev := range e.Events() {
		if rf, ok := ev.(puzzle.RoundFinished); ok {
			finished++
			g.showResult(rf.Scored)
		}
	}
	return core.StepResult{State: g.State(), RoundsFinished: finished}
}

func (g *Game) showResult(scored bool) {
	g.flashLeft = flashSeconds
	if scored {
		g.flash, g.flashFg = "✓ match", goodFg
	} else {
		g.flash, g.flashFg = "✗ miss", badFg
	}
}

// State returns the score and status flags.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused(),
	}
}

// Render draws the board, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, g.err.Error())
		return
	}
	if g.vp.TooSmall() {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need at least %dx%d", MinCols, MinRows))
		return
	}
	if g.engine == nil {
		return
	}

	drawBoard(dst, g.vp, g.engine.BackgroundColor())
	for _, t := range g.engine.CurrentRound().Tiles {
		col, row, w, h := g.vp.CellRect(t.Bounds)
		dst.FillRect(col, row, w, h, t.Color)
	}

	g.renderHUD(dst)
	g.renderFooter(dst)

	switch {
	case g.engine.GameOver():
		g.renderSummary(dst)
	case g.engine.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func drawBoard(dst *core.Screen, vp Viewport, bg core.Color) {
	dst.FillRect(0, vp.Top, vp.Cols, vp.BoardRows(), bg)
}

func (g *Game) renderHUD(dst *core.Screen) {
	e := g.engine
	var clock string
	if e.HasCountdown() {
		clock = puzzle.FormatSeconds(math.Ceil(e.RemainingSeconds()))
	} else {
		clock = puzzle.FormatSeconds(e.Stats().TotalTime)
	}

	hud := fmt.Sprintf(" Hue Match (%s)  Score: %d  Time: %s  Round: %d",
		g.mode.Title(), e.Score(), clock, e.CurrentRound().Number)
	dst.DrawText(0, 0, hud)

	if g.flashLeft > 0 && g.flash != "" {
		x := dst.Width() - len([]rune(g.flash)) - 1
		dst.DrawTextColored(x, 0, g.flash, g.flashFg, core.ColorNone)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderFooter(dst *core.Screen) {
	hint := " Click the tile that matches the background  p pause  b end  q quit"
	dst.DrawText(0, dst.Height()-1, hint)
}

func (g *Game) renderSummary(dst *core.Screen) {
	sum := g.engine.Stats()
	lines := []string{
		"Game Over",
		"",
		fmt.Sprintf("Levels played:  %d", sum.LevelsPlayed),
		fmt.Sprintf("Score:          %d", sum.TotalScore),
		fmt.Sprintf("Longest streak: %d", sum.MaxStreak),
	}
	if g.mode == puzzle.ModeTimeTrial {
		lines = append(lines, fmt.Sprintf("Time survived:  %s", sum.FormattedTime()))
	}
	lines = append(lines, "", "r restart · h history · b menu · q quit")
	drawPanel(dst, lines)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	drawPanel(dst, []string{title, "", subtitle})
}

func drawPanel(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.FillRect(x, y, boxW, boxH, overlayBg)
	dst.DrawBox(x, y, boxW, boxH)
	for i, l := range lines {
		lx := (dst.Width() - len([]rune(l))) / 2
		dst.DrawTextColored(lx, y+1+i, l, textFg, overlayBg)
	}
}

// RenderEntry redraws a finished round: its tiles over the answer color,
// the correct tile marked with '★' and the click with '+'.
func RenderEntry(dst *core.Screen, entry puzzle.LevelHistoryEntry, vp Viewport) {
	bg := core.ColorBlack
	if entry.CorrectIndex >= 0 && entry.CorrectIndex < len(entry.Tiles) {
		bg = entry.Tiles[entry.CorrectIndex].Color
	}
	drawBoard(dst, vp, bg)

	for _, t := range entry.Tiles {
		col, row, w, h := vp.CellRect(t.Bounds(entry.TileSize))
		dst.FillRect(col, row, w, h, t.Color)
	}
	for _, t := range entry.Tiles {
		if !t.Correct {
			continue
		}
		col, row := vp.ToCell(t.Bounds(entry.TileSize).Center())
		cell := dst.GetCell(col, row)
		dst.SetCell(col, row, core.ScreenCell{Rune: '★', Fg: markerFg, Bg: cell.Bg})
	}

	col, row := vp.ToCell(entry.Click)
	if row >= vp.Top && row < vp.Top+vp.BoardRows() {
		fg := badFg
		if entry.Scored {
			fg = goodFg
		}
		cell := dst.GetCell(col, row)
		dst.SetCell(col, row, core.ScreenCell{Rune: '+', Fg: fg, Bg: cell.Bg})
	}
}
