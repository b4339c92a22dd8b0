package puzzle

import (
	"fmt"
	"iter"
	"slices"

	"github.com/vovakirdan/huematch/internal/core"
)

// DefaultPageSize is the number of history entries shown per page.
const DefaultPageSize = 5

// TileRecord is one tile of a finished round.
type TileRecord struct {
	Color   core.Color
	Pos     core.Point
	Correct bool
}

// Bounds returns the tile's square for the given edge length.
func (t TileRecord) Bounds(size float64) core.Rect {
	return core.SquareAt(t.Pos, size)
}

// LevelHistoryEntry records a finished round with enough detail to redraw it.
type LevelHistoryEntry struct {
	Click        core.Point
	CorrectIndex int
	Tiles        []TileRecord
	TileSize     float64
	Scored       bool
}

func (e LevelHistoryEntry) clone() LevelHistoryEntry {
	e.Tiles = slices.Clone(e.Tiles)
	return e
}

// Summary is the end-of-game report.
type Summary struct {
	Mode         GameMode
	LevelsPlayed int
	TotalScore   int
	MaxStreak    int
	TotalTime    float64
}

// FormattedTime returns TotalTime as MM:SS.
func (s Summary) FormattedTime() string {
	return FormatSeconds(s.TotalTime)
}

// FormatSeconds renders whole seconds as MM:SS.
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// HistoryLedger is the ordered log of finished rounds of one game.
// It only grows until Reset.
type HistoryLedger struct {
	levels        []LevelHistoryEntry
	totalScore    int
	currentStreak int
	maxStreak     int
	totalTime     float64
	mode          GameMode
}

// NewHistoryLedger returns an empty ledger.
func NewHistoryLedger() *HistoryLedger {
	return &HistoryLedger{}
}

// Record appends a finished round and updates the counters.
func (l *HistoryLedger) Record(entry LevelHistoryEntry) {
	if entry.Scored {
		// The max is taken before the increment, so it lags the live streak
		// by one round.
		l.maxStreak = max(l.maxStreak, l.currentStreak)
		l.currentStreak++
		l.totalScore++
	} else {
		l.currentStreak = 0
	}
	l.levels = append(l.levels, entry.clone())
}

// Get returns the entry at index.
func (l *HistoryLedger) Get(index int) (LevelHistoryEntry, error) {
	if index < 0 || index >= len(l.levels) {
		return LevelHistoryEntry{}, fmt.Errorf("%w: %d (recorded %d)", ErrIndexOutOfRange, index, len(l.levels))
	}
	return l.levels[index].clone(), nil
}

// Page yields up to size entries starting at start, keyed by absolute index.
// Out-of-range windows yield fewer entries or none.
func (l *HistoryLedger) Page(start, size int) iter.Seq2[int, LevelHistoryEntry] {
	return func(yield func(int, LevelHistoryEntry) bool) {
		from := max(start, 0)
		if size <= 0 {
			return
		}
		to := len(l.levels)
		if size < to-from {
			to = from + size
		}
		for i := from; i < to; i++ {
			if !yield(i, l.levels[i].clone()) {
				return
			}
		}
	}
}

// PageCount returns the number of pages of pageSize entries, at least one.
func (l *HistoryLedger) PageCount(pageSize int) int {
	if pageSize <= 0 || len(l.levels) == 0 {
		return 1
	}
	return (len(l.levels) + pageSize - 1) / pageSize
}

// AddTime accumulates played time.
func (l *HistoryLedger) AddTime(seconds float64) {
	if seconds > 0 {
		l.totalTime += seconds
	}
}

// Reset clears every entry and counter.
func (l *HistoryLedger) Reset() {
	*l = HistoryLedger{}
}

func (l *HistoryLedger) setMode(m GameMode) { l.mode = m }

func (l *HistoryLedger) LevelsPlayed() int  { return len(l.levels) }
func (l *HistoryLedger) TotalScore() int    { return l.totalScore }
func (l *HistoryLedger) CurrentStreak() int { return l.currentStreak }
func (l *HistoryLedger) MaxStreak() int     { return l.maxStreak }
func (l *HistoryLedger) TotalTime() float64 { return l.totalTime }

// Entries returns a copy of every recorded entry in order.
func (l *HistoryLedger) Entries() []LevelHistoryEntry {
	out := make([]LevelHistoryEntry, len(l.levels))
	for i, e := range l.levels {
		out[i] = e.clone()
	}
	return out
}

// Summary returns the counters as an end-of-game report.
func (l *HistoryLedger) Summary() Summary {
	return Summary{
		Mode:         l.mode,
		LevelsPlayed: len(l.levels),
		TotalScore:   l.totalScore,
		MaxStreak:    l.maxStreak,
		TotalTime:    l.totalTime,
	}
}
