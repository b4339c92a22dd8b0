// Package puzzle implements the color matching round engine: palette
// generation, tile layout, scoring, the countdown and the round history.
//
// The engine is driven by its host: Tick once per frame, OnClick for every
// click in world coordinates. It is not safe for concurrent use; hosts that
// share one Engine between goroutines must serialize every call.
package puzzle

import (
	"io"
	"iter"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/huematch/internal/core"
)

// Tile is a render-ready tile. Whether it is the answer is not exposed.
type Tile struct {
	Index  int
	Color  core.Color
	Bounds core.Rect
}

// Round is the render feed for the current round.
type Round struct {
	Number   int
	Tiles    []Tile
	TileSize float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand sets the random source. Use a seeded source for reproducible games.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds the random source.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// Engine composes the round state, the countdown and the history ledger.
type Engine struct {
	settings Settings
	rng      *rand.Rand
	logger   *log.Logger

	round  *RoundState
	timer  *CountdownTimer
	ledger *HistoryLedger
	fade   backgroundFade

	mode      GameMode
	countdown bool
	paused    bool
	gameOver  bool

	events []Event
}

// New creates an engine. Call NewGame or Configure and StartRound to play.
func New(s Settings, opts ...Option) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		settings: s,
		logger:   log.New(io.Discard),
		timer:    NewCountdownTimer(TimerOnce),
		ledger:   NewHistoryLedger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	planner := NewLayoutPlanner(e.rng, s.MaxAttempts, e.logger)
	e.round = newRoundState(e.rng, planner, s)
	return e, nil
}

// Settings returns the engine settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Configure prepares a fresh game: score, history and countdown are reset.
// Infinite has no countdown and ignores startSeconds.
func (e *Engine) Configure(mode GameMode, startSeconds, secondsPerSuccess float64) {
	e.mode = mode
	e.countdown = mode.HasCountdown()
	e.paused = false
	e.gameOver = false
	e.fade.stop()

	e.round.reset(mode, secondsPerSuccess)
	e.ledger.Reset()
	e.ledger.setMode(mode)

	if e.countdown {
		e.timer.Reset(startSeconds)
	} else {
		e.timer.ResetPaused(0)
	}

	e.logger.Debug("game configured", "mode", mode.ID(),
		"start_seconds", startSeconds, "seconds_per_success", secondsPerSuccess)
}

// NewGame configures mode with its settings and starts the first round.
func (e *Engine) NewGame(mode GameMode) {
	ms := e.settings.ModeSettings(mode)
	e.Configure(mode, ms.StartSeconds, ms.SecondsPerSuccess)
	e.emit(NewGameRequested{Mode: mode})
	e.StartRound()
}

// Restart starts a new game in the current mode.
func (e *Engine) Restart() {
	e.NewGame(e.mode)
}

// StartRound generates the next round. The first round of a game shows its
// target color immediately.
func (e *Engine) StartRound() RoundDescriptor {
	desc := e.round.StartRound()
	if desc.Crowded {
		e.logger.Debug("round placed with overlapping tiles", "tiles", len(desc.Palette))
	}
	return desc
}

// SetBoardSize resizes the world. Tiles are a quarter of the width, capped
// at the configured maximum, and stay a padding away from the edges.
func (e *Engine) SetBoardSize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	e.settings.BoardWidth = width
	e.settings.BoardHeight = height
	e.round.setBoard(e.settings.TileSize(), e.settings.PlayArea())
}

// OnClick handles a click at world position (x, y). accepted is false when
// the click was ignored: no round, game over, paused or mid-transition.
// An accepted click always finishes the round; scored tells whether it hit
// the target tile.
func (e *Engine) OnClick(x, y float64) (scored, accepted bool) {
	if reason := e.clickBlocked(); reason != "" {
		e.logger.Debug("click ignored", "x", x, "y", y, "reason", reason)
		return false, false
	}

	p := core.Point{X: x, Y: y}
	idx, _ := e.round.HitTest(p)
	scored = e.round.EvaluateClick(p, e.round.HitTest, e.timer)
	e.ledger.Record(e.round.historyEntry(p, scored))
	e.emit(RoundFinished{Scored: scored, Index: idx})

	prev := e.round.CorrectColor()
	e.StartRound()
	e.beginFade(prev, e.round.CorrectColor())
	return scored, true
}

func (e *Engine) clickBlocked() string {
	switch {
	case !e.round.Active():
		return "no round"
	case e.gameOver:
		return "game over"
	case e.paused:
		return "paused"
	case e.fade.active:
		return "transition"
	}
	return ""
}

// beginFade runs the background transition and holds the countdown for its
// length.
func (e *Engine) beginFade(from, to core.Color) {
	e.fade.start(from, to, e.settings.TransitionSeconds)
	if e.fade.active {
		e.timer.Pause()
	}
}

// Tick advances the fade and the countdown by delta seconds.
// Time left over after a fade completes counts against the countdown.
func (e *Engine) Tick(delta float64) {
	if delta <= 0 || e.gameOver || e.paused || !e.round.Active() {
		return
	}
	e.ledger.AddTime(delta)

	rest := delta
	if e.fade.active {
		rest = e.fade.advance(delta)
		if !e.fade.active && e.countdown {
			e.timer.Unpause()
		}
	}
	if rest <= 0 || !e.countdown {
		return
	}
	if e.timer.Advance(rest) {
		e.gameOver = true
		e.emit(TimerFinished{Score: e.round.Score()})
		e.logger.Debug("timer finished", "mode", e.mode.ID(), "score", e.round.Score())
	}
}

// Pause holds the countdown and blocks clicks until Resume. Idempotent.
func (e *Engine) Pause() {
	if e.paused || e.gameOver {
		return
	}
	e.paused = true
	e.timer.Pause()
}

// Resume undoes Pause. Idempotent.
func (e *Engine) Resume() {
	if !e.paused {
		return
	}
	e.paused = false
	if e.countdown && !e.fade.active {
		e.timer.Unpause()
	}
}

// Reset aborts the session, discarding the round, score and history.
func (e *Engine) Reset() {
	e.round.reset(e.mode, 0)
	e.ledger.Reset()
	e.ledger.setMode(e.mode)
	e.timer.ResetPaused(0)
	e.fade.stop()
	e.countdown = false
	e.paused = false
	e.gameOver = false
	e.events = nil
}

// End finishes the game early, keeping the score and history for review.
// It is how an Infinite game ends.
func (e *Engine) End() {
	if e.gameOver || !e.round.Active() {
		return
	}
	e.gameOver = true
	e.paused = false
	e.fade.stop()
	e.timer.Pause()
	e.logger.Debug("game ended by host", "mode", e.mode.ID(), "score", e.round.Score())
}

// CurrentRound returns the tiles to draw for the current round.
func (e *Engine) CurrentRound() Round {
	desc := e.round.Descriptor()
	tiles := make([]Tile, len(desc.Palette))
	for i, c := range desc.Palette {
		tiles[i] = Tile{
			Index:  i,
			Color:  c,
			Bounds: core.SquareAt(desc.Positions[i], desc.TileSize),
		}
	}
	return Round{
		Number:   e.ledger.LevelsPlayed() + 1,
		Tiles:    tiles,
		TileSize: desc.TileSize,
	}
}

// TargetColor returns the color the player must find.
func (e *Engine) TargetColor() core.Color {
	return e.round.CorrectColor()
}

// BackgroundColor returns the backdrop: the target color, or the blend
// while a transition runs.
func (e *Engine) BackgroundColor() core.Color {
	if e.fade.active {
		return e.fade.color()
	}
	return e.round.CorrectColor()
}

// RemainingSeconds returns the countdown left, or 0 in Infinite mode.
func (e *Engine) RemainingSeconds() float64 {
	if !e.countdown {
		return 0
	}
	return e.timer.Remaining()
}

// HasCountdown reports whether the current game is timed.
func (e *Engine) HasCountdown() bool { return e.countdown }

func (e *Engine) Score() int             { return e.round.Score() }
func (e *Engine) Mode() GameMode         { return e.mode }
func (e *Engine) Paused() bool           { return e.paused }
func (e *Engine) GameOver() bool         { return e.gameOver }
func (e *Engine) Transitioning() bool    { return e.fade.active }
func (e *Engine) Ledger() *HistoryLedger { return e.ledger }

// HistoryPage yields up to count past rounds starting at start.
func (e *Engine) HistoryPage(start, count int) iter.Seq2[int, LevelHistoryEntry] {
	return e.ledger.Page(start, count)
}

// HistoryEntry returns one past round.
func (e *Engine) HistoryEntry(index int) (LevelHistoryEntry, error) {
	return e.ledger.Get(index)
}

// Stats returns the game summary so far.
func (e *Engine) Stats() Summary {
	return e.ledger.Summary()
}

// Events drains the pending lifecycle events in emission order.
func (e *Engine) Events() []Event {
	out := e.events
	e.events = nil
	return out
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}
