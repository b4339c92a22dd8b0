package puzzle

import "github.com/vovakirdan/huematch/internal/core"

// backgroundFade blends the backdrop from the previous target color to the
// next one.
type backgroundFade struct {
	from, to core.Color
	duration float64
	elapsed  float64
	active   bool
}

func (f *backgroundFade) start(from, to core.Color, duration float64) {
	f.from, f.to = from, to
	f.duration = duration
	f.elapsed = 0
	f.active = duration > 0
}

// advance moves the fade forward and returns the part of delta left over
// after it completed.
func (f *backgroundFade) advance(delta float64) float64 {
	if !f.active {
		return delta
	}
	f.elapsed += delta
	if f.elapsed < f.duration {
		return 0
	}
	left := f.elapsed - f.duration
	f.elapsed = f.duration
	f.active = false
	return left
}

func (f *backgroundFade) stop() {
	f.active = false
}

func (f *backgroundFade) color() core.Color {
	if !f.active || f.duration <= 0 {
		return f.to
	}
	return f.from.Lerp(f.to, f.elapsed/f.duration)
}
