package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecoyMultiplier(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{0, 2},
		{5, 2},
		{6, 3},
		{10, 3},
		{11, 4},
		{30, 4},
		{31, 5},
		{50, 5},
		{51, 6},
		{60, 6},
		{61, 7},
		{1000, 7},
	}

	for _, tc := range tests {
		if got := DecoyMultiplier(tc.score); got != tc.expected {
			t.Errorf("DecoyMultiplier(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestDecoyCount(t *testing.T) {
	assert.Equal(t, 4, DecoyCount(0, 1, 2))
	assert.Equal(t, 6, DecoyCount(7, 1, 2))
	assert.Equal(t, 28, DecoyCount(100, 2, 2))
	assert.Equal(t, 0, DecoyCount(3, 1, 0))
	assert.Equal(t, 0, DecoyCount(3, -1, 2))
}

func TestDecoyCountMonotonic(t *testing.T) {
	for difficulty := 1; difficulty <= 3; difficulty++ {
		prev := DecoyCount(0, difficulty, 2)
		for score := 1; score <= 200; score++ {
			cur := DecoyCount(score, difficulty, 2)
			if cur < prev {
				t.Fatalf("DecoyCount decreased at score %d (difficulty %d): %d < %d", score, difficulty, cur, prev)
			}
			prev = cur
		}
	}
}
