package puzzle

// Event is a lifecycle notification for the host. The concrete types are
// RoundFinished, TimerFinished and NewGameRequested.
type Event interface {
	event()
}

// RoundFinished is emitted once per evaluated click.
type RoundFinished struct {
	Scored bool
	// Index is the clicked tile, or -1 when the click missed every tile.
	Index int
}

// TimerFinished is emitted when the countdown runs out; the game is over.
type TimerFinished struct {
	Score int
}

// NewGameRequested is emitted when a new game starts in Mode.
type NewGameRequested struct {
	Mode GameMode
}

func (RoundFinished) event()    {}
func (TimerFinished) event()    {}
func (NewGameRequested) event() {}
