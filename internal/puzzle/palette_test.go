package puzzle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePaletteLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for count := 0; count <= 30; count++ {
		p := GeneratePalette(rng, count, 0.1)
		assert.Len(t, p, count+1, "count=%d", count)
	}

	assert.Len(t, GeneratePalette(rng, -4, 0.1), 1, "negative count still yields the base color")
}

func TestGeneratePaletteScalarJitter(t *testing.T) {
	const jitterMax = 0.1

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		p := GeneratePalette(rng, 12, jitterMax)
		base := p[0]

		require.Equal(t, 1.0, base.A)
		for _, c := range []float64{base.R, base.G, base.B} {
			require.GreaterOrEqual(t, c, 0.0)
			require.Less(t, c, 1.0)
		}

		for i, d := range p[1:] {
			jr, jg, jb := d.R-base.R, d.G-base.G, d.B-base.B
			assert.InDelta(t, jr, jg, 1e-12, "seed %d decoy %d: one jitter for every channel", seed, i)
			assert.InDelta(t, jr, jb, 1e-12, "seed %d decoy %d: one jitter for every channel", seed, i)
			assert.GreaterOrEqual(t, jr, -1e-12)
			assert.Less(t, jr, jitterMax+1e-12)
			assert.Equal(t, base.A, d.A)
		}
	}
}

func TestGeneratePaletteDoesNotClamp(t *testing.T) {
	// A jitter above 1 pushes channels past 1.
	rng := rand.New(rand.NewSource(7))
	p := GeneratePalette(rng, 200, 5)

	over := false
	for _, c := range p[1:] {
		if c.R > 1 || c.G > 1 || c.B > 1 {
			over = true
			break
		}
	}
	assert.True(t, over, "expected at least one channel above 1")
}

func TestPaletteClone(t *testing.T) {
	p := GeneratePalette(rand.New(rand.NewSource(3)), 3, 0.1)
	c := p.Clone()
	c[0].R = 42

	assert.NotEqual(t, 42.0, p[0].R)
	assert.Nil(t, Palette(nil).Clone())
}
