package puzzle

import (
	"math/rand"

	"github.com/vovakirdan/huematch/internal/core"
)

// Palette is an ordered list of tile colors. Order is render order.
type Palette []core.Color

// GeneratePalette returns count decoys around one random base color.
// The base color sits at index 0. Each decoy adds a single jitter value,
// drawn from [0, jitterMax), to all three channels. Channels are not clamped.
func GeneratePalette(rng *rand.Rand, count int, jitterMax float64) Palette {
	if count < 0 {
		count = 0
	}

	base := core.RGB(rng.Float64(), rng.Float64(), rng.Float64())

	p := make(Palette, 0, count+1)
	p = append(p, base)
	for i := 0; i < count; i++ {
		j := rng.Float64() * jitterMax
		p = append(p, core.Color{
			R: base.R + j,
			G: base.G + j,
			B: base.B + j,
			A: base.A,
		})
	}
	return p
}

// Clone returns a copy that does not share storage with p.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}
