package huematch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/puzzle"
	"github.com/vovakirdan/huematch/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newTestGame(t *testing.T, mode puzzle.GameMode) *Game {
	t.Helper()
	g := New(mode)
	g.Reset(testConfig())
	require.NoError(t, g.Err())
	require.NotNil(t, g.Engine())
	return g
}

// findCell returns a board cell whose topmost tile satisfies match.
func findCell(g *Game, match func(puzzle.Tile) bool) (core.CellPos, bool) {
	tiles := g.Engine().CurrentRound().Tiles
	for row := g.vp.Top; row < g.vp.Top+g.vp.BoardRows(); row++ {
		for col := 0; col < g.vp.Cols; col++ {
			p, _ := g.vp.ToWorld(col, row)
			for i := len(tiles) - 1; i >= 0; i-- {
				if tiles[i].Bounds.Contains(p) {
					if match(tiles[i]) {
						return core.CellPos{Col: col, Row: row}, true
					}
					break
				}
			}
		}
	}
	return core.CellPos{}, false
}

func isTarget(g *Game) func(puzzle.Tile) bool {
	target := g.Engine().TargetColor()
	return func(t puzzle.Tile) bool { return t.Color.Equal(target) }
}

func TestModesRegistered(t *testing.T) {
	for _, m := range puzzle.Modes() {
		info, ok := registry.Lookup(m.ID())
		if !ok {
			t.Errorf("mode %q not registered", m.ID())
			continue
		}
		if info.Title != m.Title() {
			t.Errorf("Title = %q, expected %q", info.Title, m.Title())
		}

		g, err := registry.Create(m.ID())
		require.NoError(t, err)
		if _, ok := g.(registry.Resizer); !ok {
			t.Errorf("%s does not implement Resizer", m.ID())
		}
	}
}

func TestViewportToWorld(t *testing.T) {
	vp := NewViewport(80, 24)

	w, h := vp.BoardSize()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 21*CellHeight, h)

	p, ok := vp.ToWorld(3, HUDRows)
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 35, Y: 10}, p)

	_, ok = vp.ToWorld(3, 0)
	assert.False(t, ok, "HUD rows are not part of the board")
	_, ok = vp.ToWorld(3, 23)
	assert.False(t, ok, "footer row is not part of the board")
	_, ok = vp.ToWorld(80, 5)
	assert.False(t, ok)
}

func TestViewportCellRectMatchesHitTest(t *testing.T) {
	vp := NewViewport(80, 24)
	r := core.NewRect(53, 47, 140, 140)

	col, row, w, h := vp.CellRect(r)
	for y := row - 1; y <= row+h; y++ {
		for x := col - 1; x <= col+w; x++ {
			p, ok := vp.ToWorld(x, y)
			if !ok {
				continue
			}
			inside := x >= col && x < col+w && y >= row && y < row+h
			if r.Contains(p) != inside {
				t.Errorf("cell (%d, %d): Contains = %v, drawn = %v", x, y, r.Contains(p), inside)
			}
		}
	}
}

func TestClickOnTargetScores(t *testing.T) {
	g := newTestGame(t, puzzle.ModeAgainstTheClock)

	cell, ok := findCell(g, isTarget(g))
	require.True(t, ok, "target tile should be visible")

	in := core.NewInputFrame()
	in.Click(cell.Col, cell.Row)
	res := g.Step(in)

	assert.Equal(t, 1, res.State.Score)
	assert.Equal(t, 1, res.RoundsFinished)
	assert.Contains(t, g.flash, "match")
}

func TestClickOnEmptyBoardMisses(t *testing.T) {
	g := newTestGame(t, puzzle.ModeAgainstTheClock)

	// The padding strip along the top-left corner never holds a tile.
	in := core.NewInputFrame()
	in.Click(0, HUDRows)
	res := g.Step(in)

	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 1, res.RoundsFinished)
	assert.Contains(t, g.flash, "miss")
}

func TestClickOnHUDIgnored(t *testing.T) {
	g := newTestGame(t, puzzle.ModeInfinite)

	in := core.NewInputFrame()
	in.Click(10, 0)
	res := g.Step(in)

	assert.Equal(t, 0, res.RoundsFinished)
	assert.Equal(t, 0, g.Engine().Ledger().LevelsPlayed())
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, puzzle.ModeAgainstTheClock)
	before := g.Engine().RemainingSeconds()

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	require.True(t, res.State.Paused)

	empty := core.NewInputFrame()
	for range 30 {
		g.Step(empty)
	}
	assert.Equal(t, before, g.Engine().RemainingSeconds(), "clock must hold while paused")

	res = g.Step(in)
	assert.False(t, res.State.Paused)
	assert.Less(t, g.Engine().RemainingSeconds(), before)
}

func TestBackEndsInfiniteGame(t *testing.T) {
	g := newTestGame(t, puzzle.ModeInfinite)

	in := core.NewInputFrame()
	in.Set(core.ActionBack)
	res := g.Step(in)
	require.True(t, res.State.GameOver)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Game Over")
	assert.Contains(t, screen.String(), "Longest streak")

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res = g.Step(restart)
	assert.False(t, res.State.GameOver)
}

func TestCountdownEndsGame(t *testing.T) {
	g := New(puzzle.ModeAgainstTheClock)
	cfg := testConfig()
	cfg.TickRate = 1
	g.Reset(cfg)

	empty := core.NewInputFrame()
	var res core.StepResult
	for range 61 {
		res = g.Step(empty)
	}
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 0.0, g.Engine().RemainingSeconds())
}

func TestRenderHUDAndBoard(t *testing.T) {
	g := newTestGame(t, puzzle.ModeTimeTrial)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	assert.True(t, strings.HasPrefix(hud, " Hue Match (Time Trial)"), "HUD = %q", hud)
	assert.Contains(t, hud, "Time: 00:30")
	assert.Contains(t, hud, "Round: 1")

	// Padding cells show the target color as background.
	bg := screen.GetCell(0, HUDRows).Bg
	assert.True(t, bg.Equal(g.Engine().TargetColor()))
}

func TestResizeKeepsScore(t *testing.T) {
	g := newTestGame(t, puzzle.ModeInfinite)
	cell, ok := findCell(g, isTarget(g))
	require.True(t, ok)

	in := core.NewInputFrame()
	in.Click(cell.Col, cell.Row)
	g.Step(in)
	require.Equal(t, 1, g.State().Score)

	g.Resize(120, 40)
	assert.Equal(t, 1, g.State().Score)
	assert.Equal(t, 140.0, g.Engine().CurrentRound().TileSize)
}

func TestTooSmallWindow(t *testing.T) {
	g := New(puzzle.ModeInfinite)
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 30, 10
	g.Reset(cfg)

	in := core.NewInputFrame()
	in.Click(5, 5)
	res := g.Step(in)
	assert.Equal(t, 0, res.RoundsFinished)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRenderEntryMarksAnswerAndClick(t *testing.T) {
	vp := NewViewport(80, 24)
	entry := puzzle.LevelHistoryEntry{
		Click:        core.Point{X: 15, Y: 10},
		CorrectIndex: 1,
		TileSize:     100,
		Tiles: []puzzle.TileRecord{
			{Color: core.RGB(0.2, 0.2, 0.2), Pos: core.Point{X: 100, Y: 100}},
			{Color: core.RGB(0.5, 0.1, 0.1), Pos: core.Point{X: 400, Y: 100}, Correct: true},
		},
	}

	screen := core.NewScreen(80, 24)
	RenderEntry(screen, entry, vp)

	col, row := vp.ToCell(core.Point{X: 450, Y: 150})
	assert.Equal(t, '★', screen.Get(col, row))

	clickCol, clickRow := vp.ToCell(entry.Click)
	assert.Equal(t, '+', screen.Get(clickCol, clickRow))
	assert.True(t, screen.GetCell(0, HUDRows).Bg.Equal(entry.Tiles[1].Color))
}
