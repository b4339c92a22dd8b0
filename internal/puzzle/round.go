package puzzle

import (
	"iter"
	"math/rand"

	"github.com/vovakirdan/huematch/internal/core"
)

// RoundDescriptor is the full description of one round, including the answer.
type RoundDescriptor struct {
	Palette      Palette
	CorrectIndex int
	Positions    []core.Point
	TileSize     float64
	// Crowded is set when at least one tile had to be placed overlapping.
	Crowded bool
}

// ColorEntry is one palette slot as yielded by RoundState.Colors.
type ColorEntry struct {
	Index   int
	Color   core.Color
	Correct bool
}

// HitTestFunc resolves a world point to a tile index.
type HitTestFunc func(p core.Point) (int, bool)

// Extender grants extra countdown time.
type Extender interface {
	Extend(seconds float64)
}

// RoundState owns the score and the current round.
type RoundState struct {
	rng     *rand.Rand
	planner *LayoutPlanner

	score        int
	palette      Palette
	positions    []core.Point
	correctIndex int
	crowded      bool

	difficulty           int
	objectsPerDifficulty int
	jitterMax            float64
	tileSize             float64
	bounds               core.Rect

	mode              GameMode
	secondsPerSuccess float64
}

func newRoundState(rng *rand.Rand, planner *LayoutPlanner, s Settings) *RoundState {
	return &RoundState{
		rng:                  rng,
		planner:              planner,
		difficulty:           s.Difficulty,
		objectsPerDifficulty: s.ObjectsPerDifficulty,
		jitterMax:            s.JitterMax,
		tileSize:             s.TileSize(),
		bounds:               s.PlayArea(),
	}
}

// StartRound generates a new palette, lays it out and picks the answer.
func (r *RoundState) StartRound() RoundDescriptor {
	decoys := DecoyCount(r.score, r.difficulty, r.objectsPerDifficulty)
	r.palette = GeneratePalette(r.rng, decoys, r.jitterMax)
	r.layout()
	// The answer is drawn over the whole palette, independently of which
	// slot holds the generator's base color.
	r.correctIndex = r.rng.Intn(len(r.palette))
	return r.Descriptor()
}

// layout places every palette entry with the current tile size and bounds.
func (r *RoundState) layout() {
	placements := r.planner.Place(len(r.palette), r.tileSize, r.bounds, nil)
	r.positions = make([]core.Point, len(placements))
	r.crowded = false
	for i, pl := range placements {
		r.positions[i] = pl.Pos
		r.crowded = r.crowded || pl.Exhausted
	}
}

// Descriptor returns a copy of the current round.
func (r *RoundState) Descriptor() RoundDescriptor {
	positions := make([]core.Point, len(r.positions))
	copy(positions, r.positions)
	return RoundDescriptor{
		Palette:      r.palette.Clone(),
		CorrectIndex: r.correctIndex,
		Positions:    positions,
		TileSize:     r.tileSize,
		Crowded:      r.crowded,
	}
}

// Active reports whether a round has been started.
func (r *RoundState) Active() bool {
	return len(r.palette) > 0
}

// Score returns the number of correct answers this game.
func (r *RoundState) Score() int { return r.score }

// Difficulty returns the difficulty multiplier.
func (r *RoundState) Difficulty() int { return r.difficulty }

// TileSize returns the current tile edge in world units.
func (r *RoundState) TileSize() float64 { return r.tileSize }

// Bounds returns the placement region.
func (r *RoundState) Bounds() core.Rect { return r.bounds }

// CorrectColor returns the color the player must find.
func (r *RoundState) CorrectColor() core.Color {
	if !r.Active() {
		return core.ColorNone
	}
	return r.palette[r.correctIndex]
}

// IsCorrectColor compares c with the answer on all four channels.
func (r *RoundState) IsCorrectColor(c core.Color) bool {
	return r.Active() && c.Equal(r.CorrectColor())
}

// Colors yields every palette slot with its correctness flag.
// The sequence is finite and can be ranged over repeatedly.
func (r *RoundState) Colors() iter.Seq[ColorEntry] {
	return func(yield func(ColorEntry) bool) {
		for i, c := range r.palette {
			if !yield(ColorEntry{Index: i, Color: c, Correct: r.IsCorrectColor(c)}) {
				return
			}
		}
	}
}

// HitTest returns the topmost tile containing p. Later tiles draw on top.
func (r *RoundState) HitTest(p core.Point) (int, bool) {
	for i := len(r.positions) - 1; i >= 0; i-- {
		if core.SquareAt(r.positions[i], r.tileSize).Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// EvaluateClick scores the click at p. In TimeTrial a correct answer extends
// the countdown through ext.
func (r *RoundState) EvaluateClick(p core.Point, hit HitTestFunc, ext Extender) bool {
	idx, ok := hit(p)
	if !ok || idx != r.correctIndex {
		return false
	}
	r.score++
	if r.mode == ModeTimeTrial && ext != nil {
		ext.Extend(r.secondsPerSuccess)
	}
	return true
}

// historyEntry captures the current round and the click that finished it.
func (r *RoundState) historyEntry(click core.Point, scored bool) LevelHistoryEntry {
	tiles := make([]TileRecord, 0, len(r.palette))
	for e := range r.Colors() {
		tiles = append(tiles, TileRecord{
			Color:   e.Color,
			Pos:     r.positions[e.Index],
			Correct: e.Correct,
		})
	}
	return LevelHistoryEntry{
		Click:        click,
		CorrectIndex: r.correctIndex,
		Tiles:        tiles,
		TileSize:     r.tileSize,
		Scored:       scored,
	}
}

// setBoard changes the tile size and placement bounds. A live round is laid
// out again so its tiles stay on the board.
func (r *RoundState) setBoard(tileSize float64, bounds core.Rect) {
	r.tileSize = tileSize
	r.bounds = bounds
	if r.Active() {
		r.layout()
	}
}

// reset clears the score and round for a new game in mode.
func (r *RoundState) reset(mode GameMode, secondsPerSuccess float64) {
	r.score = 0
	r.palette = nil
	r.positions = nil
	r.correctIndex = 0
	r.crowded = false
	r.mode = mode
	r.secondsPerSuccess = secondsPerSuccess
}
