package puzzle

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/huematch/internal/core"
)

// DefaultMaxAttempts is the number of retries per tile before a
// placement is accepted despite overlapping.
const DefaultMaxAttempts = 100

// Placement is the top-left corner of one placed tile.
type Placement struct {
	Pos core.Point
	// Exhausted is set when every retry overlapped and the last sample
	// was kept anyway.
	Exhausted bool
}

// LayoutPlanner places square tiles by rejection sampling.
type LayoutPlanner struct {
	rng         *rand.Rand
	maxAttempts int
	logger      *log.Logger
}

// NewLayoutPlanner creates a planner. A nil logger disables diagnostics.
func NewLayoutPlanner(rng *rand.Rand, maxAttempts int, logger *log.Logger) *LayoutPlanner {
	if maxAttempts < 0 {
		maxAttempts = 0
	}
	return &LayoutPlanner{rng: rng, maxAttempts: maxAttempts, logger: logger}
}

// Place returns count tile positions inside bounds. Tiles avoid each other
// and every rect in existing. Crowded boards degrade to overlapping tiles
// instead of failing.
func (p *LayoutPlanner) Place(count int, tileSize float64, bounds core.Rect, existing []core.Rect) []Placement {
	if count <= 0 {
		return nil
	}

	taken := make([]core.Rect, 0, len(existing)+count)
	taken = append(taken, existing...)
	out := make([]Placement, 0, count)

	for i := 0; i < count; i++ {
		pos := p.sample(tileSize, bounds)
		for attempt := 0; attempt < p.maxAttempts && overlapsAny(core.SquareAt(pos, tileSize), taken); attempt++ {
			pos = p.sample(tileSize, bounds)
		}

		box := core.SquareAt(pos, tileSize)
		exhausted := overlapsAny(box, taken)
		if exhausted && p.logger != nil {
			p.logger.Debug("layout exhausted, accepting overlap",
				"tile", i, "attempts", p.maxAttempts, "tile_size", tileSize)
		}

		taken = append(taken, box)
		out = append(out, Placement{Pos: pos, Exhausted: exhausted})
	}
	return out
}

// sample draws a top-left corner so the tile stays inside bounds.
func (p *LayoutPlanner) sample(tileSize float64, bounds core.Rect) core.Point {
	return core.Point{
		X: bounds.X + p.rng.Float64()*max(bounds.W-tileSize, 0),
		Y: bounds.Y + p.rng.Float64()*max(bounds.H-tileSize, 0),
	}
}

func overlapsAny(r core.Rect, others []core.Rect) bool {
	for _, o := range others {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
