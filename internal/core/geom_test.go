package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Point{15, 15}, true},
		{"top-left corner", Point{10, 10}, true},
		{"bottom-right edge (exclusive)", Point{30, 25}, false},
		{"outside left", Point{5, 15}, false},
		{"outside right", Point{35, 15}, false},
		{"outside top", Point{15, 5}, false},
		{"outside bottom", Point{15, 30}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 100, 60).Inset(25)
	if r != NewRect(25, 25, 50, 10) {
		t.Errorf("Inset(25) = %+v", r)
	}

	collapsed := NewRect(0, 0, 10, 10).Inset(20)
	if collapsed.W != 0 || collapsed.H != 0 {
		t.Errorf("Inset past the size should collapse to zero, got %+v", collapsed)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestColorHexAndLerp(t *testing.T) {
	c := RGB(1, 0, 0)
	if got := c.Hex(); got != "#ff0000" {
		t.Errorf("Hex() = %q, expected #ff0000", got)
	}

	// Out-of-range channels are clamped only when rendering
	over := RGB(1.2, 0.5, -0.1)
	if over.R != 1.2 {
		t.Error("RGB must not clamp channels")
	}
	if got := over.Hex(); got != "#ff8000" {
		t.Errorf("Hex() of out-of-range color = %q, expected #ff8000", got)
	}

	mid := RGB(0, 0, 0).Lerp(RGB(1, 1, 1), 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 || mid.A != 1 {
		t.Errorf("Lerp midpoint = %+v", mid)
	}

	parsed, err := ParseHex("#00ff00")
	if err != nil {
		t.Fatalf("ParseHex() failed: %v", err)
	}
	if !parsed.Equal(RGB(0, 1, 0)) {
		t.Errorf("ParseHex() = %+v", parsed)
	}
}
