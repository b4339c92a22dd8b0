package puzzle

// DecoyMultiplier maps a cumulative score to the decoy multiplier.
//
//	[0,5] → 2, [6,10] → 3, [11,30] → 4, [31,50] → 5, [51,60] → 6, 61+ → 7
func DecoyMultiplier(score int) int {
	switch {
	case score <= 5:
		return 2
	case score <= 10:
		return 3
	case score <= 30:
		return 4
	case score <= 50:
		return 5
	case score <= 60:
		return 6
	default:
		return 7
	}
}

// DecoyCount returns how many decoys the next round shows.
func DecoyCount(score, difficulty, objectsPerDifficulty int) int {
	n := difficulty * DecoyMultiplier(score) * objectsPerDifficulty
	if n < 0 {
		return 0
	}
	return n
}
