package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/huematch/internal/core"
)

func newTestEngine(t *testing.T, mutate ...func(*Settings)) *Engine {
	t.Helper()
	s := DefaultSettings()
	for _, m := range mutate {
		m(&s)
	}
	e, err := New(s, WithSeed(42))
	require.NoError(t, err)
	return e
}

func noTransition(s *Settings) { s.TransitionSeconds = 0 }

// lineUp moves the current tiles into a single non-overlapping row so a
// click can target any of them.
func lineUp(e *Engine) {
	size := e.round.TileSize()
	for i := range e.round.positions {
		e.round.positions[i] = core.Point{X: float64(i) * (size + 10), Y: 0}
	}
}

func tileCenter(e *Engine, i int) core.Point {
	return core.SquareAt(e.round.positions[i], e.round.TileSize()).Center()
}

func clickTile(e *Engine, i int) (bool, bool) {
	p := tileCenter(e, i)
	return e.OnClick(p.X, p.Y)
}

func clickCorrect(e *Engine) (bool, bool) {
	lineUp(e)
	return clickTile(e, e.round.correctIndex)
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero jitter", func(s *Settings) { s.JitterMax = 0 }},
		{"negative jitter", func(s *Settings) { s.JitterMax = -0.1 }},
		{"zero difficulty", func(s *Settings) { s.Difficulty = 0 }},
		{"negative transition", func(s *Settings) { s.TransitionSeconds = -1 }},
		{"empty board", func(s *Settings) { s.BoardWidth = 0 }},
		{"negative mode start", func(s *Settings) {
			s.Modes[ModeTimeTrial] = ModeSettings{StartSeconds: -1}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			_, err := New(s)
			require.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestEngineScoringClick(t *testing.T) {
	e := newTestEngine(t)
	e.Configure(ModeAgainstTheClock, 60, 0)
	e.StartRound()

	round := e.CurrentRound()
	require.Len(t, round.Tiles, 5)

	lineUp(e)
	e.round.correctIndex = 2

	scored, accepted := clickTile(e, 2)
	assert.True(t, accepted)
	assert.True(t, scored)
	assert.Equal(t, 1, e.Score())

	require.Equal(t, 1, e.Ledger().LevelsPlayed())
	got, err := e.HistoryEntry(0)
	require.NoError(t, err)
	assert.True(t, got.Scored)
	assert.Equal(t, 2, got.CorrectIndex)
	assert.Len(t, got.Tiles, 5)
	assert.True(t, got.Tiles[2].Correct)

	assert.Equal(t, []Event{RoundFinished{Scored: true, Index: 2}}, e.Events())
	assert.Empty(t, e.Events(), "events are drained")
}

func TestEngineWrongTileFinishesRound(t *testing.T) {
	e := newTestEngine(t)
	e.Configure(ModeAgainstTheClock, 60, 0)
	e.StartRound()
	lineUp(e)
	e.round.correctIndex = 0

	scored, accepted := clickTile(e, 3)
	assert.True(t, accepted)
	assert.False(t, scored)
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, []Event{RoundFinished{Scored: false, Index: 3}}, e.Events())
}

func TestEngineMissingEveryTile(t *testing.T) {
	e := newTestEngine(t)
	e.NewGame(ModeInfinite)
	e.Events()

	scored, accepted := e.OnClick(-500, -500)
	assert.True(t, accepted)
	assert.False(t, scored)
	assert.Equal(t, 1, e.Ledger().LevelsPlayed())
	assert.Equal(t, []Event{RoundFinished{Scored: false, Index: -1}}, e.Events())
}

func TestEngineTimeTrialExtendsCountdown(t *testing.T) {
	e := newTestEngine(t)
	e.Configure(ModeTimeTrial, 30, 3)
	e.StartRound()
	e.Tick(5)

	scored, accepted := clickCorrect(e)
	require.True(t, accepted)
	require.True(t, scored)

	assert.Equal(t, 33.0, e.timer.Duration())
	assert.Equal(t, 5.0, e.timer.Elapsed())
}

func TestEngineAgainstTheClockDoesNotExtend(t *testing.T) {
	e := newTestEngine(t)
	e.Configure(ModeAgainstTheClock, 30, 3)
	e.StartRound()

	scored, _ := clickCorrect(e)
	require.True(t, scored)
	assert.Equal(t, 30.0, e.timer.Duration())
}

func TestEngineTimerFinishes(t *testing.T) {
	e := newTestEngine(t)
	e.Configure(ModeAgainstTheClock, 30, 0)
	e.StartRound()

	e.Tick(31)

	assert.True(t, e.GameOver())
	assert.Equal(t, 0.0, e.RemainingSeconds())
	assert.Equal(t, []Event{TimerFinished{Score: 0}}, e.Events())

	_, accepted := clickCorrect(e)
	assert.False(t, accepted, "clicks after the countdown are ignored")

	e.Tick(10)
	assert.Empty(t, e.Events(), "the timer finishes once")
}

func TestEngineInfiniteHasNoCountdown(t *testing.T) {
	e := newTestEngine(t)
	e.NewGame(ModeInfinite)

	e.Tick(10_000)

	assert.False(t, e.GameOver())
	assert.False(t, e.HasCountdown())
	assert.Equal(t, 0.0, e.RemainingSeconds())
	assert.Equal(t, []Event{NewGameRequested{Mode: ModeInfinite}}, e.Events())
}

func TestEnginePauseIsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	e.NewGame(ModeAgainstTheClock)
	e.Tick(5)

	e.Pause()
	e.Pause()
	assert.True(t, e.Paused())
	e.Tick(20)

	_, accepted := clickCorrect(e)
	assert.False(t, accepted, "clicks while paused are ignored")

	e.Resume()
	e.Resume()
	assert.False(t, e.Paused())
	assert.Equal(t, 55.0, e.RemainingSeconds())
}

func TestEngineTransitionHoldsCountdown(t *testing.T) {
	e := newTestEngine(t)
	e.NewGame(ModeAgainstTheClock)
	e.Tick(2)

	prevTarget := e.TargetColor()
	_, accepted := clickCorrect(e)
	require.True(t, accepted)
	require.True(t, e.Transitioning())
	assert.True(t, e.BackgroundColor().Equal(prevTarget), "fade starts at the previous target")

	_, accepted = e.OnClick(0, 0)
	assert.False(t, accepted, "clicks during the fade are ignored")

	e.Tick(0.5)
	assert.InDelta(t, 58.0, e.RemainingSeconds(), 1e-9, "countdown is held during the fade")
	mid := e.BackgroundColor()
	want := prevTarget.Lerp(e.TargetColor(), 0.5)
	assert.InDelta(t, want.R, mid.R, 1e-9)
	assert.InDelta(t, want.G, mid.G, 1e-9)
	assert.InDelta(t, want.B, mid.B, 1e-9)

	e.Tick(0.75)
	assert.False(t, e.Transitioning())
	assert.True(t, e.BackgroundColor().Equal(e.TargetColor()))
	assert.InDelta(t, 57.75, e.RemainingSeconds(), 1e-9, "leftover tick time counts down")
}

func TestEngineHistoryPage(t *testing.T) {
	e := newTestEngine(t, noTransition)
	e.NewGame(ModeInfinite)

	for i := 0; i < 12; i++ {
		_, accepted := clickCorrect(e)
		require.True(t, accepted)
	}

	var indices []int
	for i, entry := range e.HistoryPage(10, 5) {
		indices = append(indices, i)
		assert.True(t, entry.Scored)
	}
	assert.Equal(t, []int{10, 11}, indices)

	stats := e.Stats()
	assert.Equal(t, ModeInfinite, stats.Mode)
	assert.Equal(t, 12, stats.LevelsPlayed)
	assert.Equal(t, 12, stats.TotalScore)
	assert.Equal(t, 11, stats.MaxStreak)
	assert.Equal(t, 13, e.CurrentRound().Number)

	_, err := e.HistoryEntry(12)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEngineDifficultyStaysFlat(t *testing.T) {
	e := newTestEngine(t)
	e.NewGame(ModeInfinite)

	e.round.score = 70
	desc := e.StartRound()

	assert.Equal(t, 1, e.round.Difficulty())
	assert.Len(t, desc.Palette, 1*7*2+1)
}

func TestEngineColorsIterator(t *testing.T) {
	e := newTestEngine(t)
	e.NewGame(ModeInfinite)

	collect := func() []ColorEntry {
		var out []ColorEntry
		for c := range e.round.Colors() {
			out = append(out, c)
		}
		return out
	}

	first := collect()
	require.Len(t, first, 5)
	assert.Equal(t, first, collect(), "the sequence is restartable")

	correct := 0
	for _, c := range first {
		if c.Correct {
			correct++
			assert.Equal(t, e.round.correctIndex, c.Index)
			assert.True(t, c.Color.Equal(e.TargetColor()))
		}
	}
	assert.Equal(t, 1, correct)
}

func TestEngineSetBoardSize(t *testing.T) {
	e := newTestEngine(t)
	e.NewGame(ModeInfinite)

	e.SetBoardSize(400, 300)
	round := e.CurrentRound()
	assert.Equal(t, 100.0, round.TileSize)
	area := core.NewRect(50, 50, 300, 200)
	for _, tile := range round.Tiles {
		assert.GreaterOrEqual(t, tile.Bounds.X, area.X)
		assert.LessOrEqual(t, tile.Bounds.Right(), area.Right())
	}

	e.SetBoardSize(2000, 1000)
	assert.Equal(t, 140.0, e.CurrentRound().TileSize)

	e.SetBoardSize(0, 100)
	assert.Equal(t, 140.0, e.CurrentRound().TileSize, "invalid sizes are ignored")
}

func TestEngineNewGameAndReset(t *testing.T) {
	e := newTestEngine(t, noTransition)
	e.NewGame(ModeTimeTrial)
	assert.Equal(t, 30.0, e.RemainingSeconds())

	clickCorrect(e)
	require.Equal(t, 1, e.Score())

	e.Restart()
	assert.Equal(t, ModeTimeTrial, e.Mode())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.Ledger().LevelsPlayed())
	events := e.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, NewGameRequested{Mode: ModeTimeTrial}, events[len(events)-1])

	e.Reset()
	assert.Empty(t, e.CurrentRound().Tiles)
	assert.Equal(t, 0.0, e.RemainingSeconds())
	assert.Empty(t, e.Events())
	_, accepted := e.OnClick(10, 10)
	assert.False(t, accepted)
}

func TestEngineEnd(t *testing.T) {
	e := newTestEngine(t, noTransition)
	e.NewGame(ModeInfinite)
	clickCorrect(e)

	e.End()
	assert.True(t, e.GameOver())
	assert.Equal(t, 1, e.Stats().LevelsPlayed)

	_, accepted := clickCorrect(e)
	assert.False(t, accepted)

	e.Restart()
	assert.False(t, e.GameOver())
	assert.Equal(t, 0, e.Stats().LevelsPlayed)
}
