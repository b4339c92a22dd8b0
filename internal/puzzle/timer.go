package puzzle

// TimerMode selects what happens when a countdown reaches its duration.
type TimerMode int

const (
	// TimerOnce stops in the Finished state.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps back to zero and keeps running.
	TimerRepeating
)

// TimerState is the lifecycle state of a CountdownTimer.
type TimerState int

const (
	TimerStatePaused TimerState = iota
	TimerStateRunning
	TimerStateFinished
)

func (s TimerState) String() string {
	switch s {
	case TimerStatePaused:
		return "paused"
	case TimerStateRunning:
		return "running"
	case TimerStateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// CountdownTimer is a pausable countdown whose duration can grow while it runs.
// Elapsed never exceeds the duration.
type CountdownTimer struct {
	duration float64
	elapsed  float64
	state    TimerState
	mode     TimerMode
}

// NewCountdownTimer returns a paused timer with zero duration.
func NewCountdownTimer(mode TimerMode) *CountdownTimer {
	return &CountdownTimer{mode: mode, state: TimerStatePaused}
}

// Advance moves the timer forward by delta seconds. It returns true when
// the duration was reached during this call: the Finished edge for
// TimerOnce, or a wrap for TimerRepeating.
func (t *CountdownTimer) Advance(delta float64) bool {
	if t.state != TimerStateRunning {
		return false
	}
	if delta > 0 {
		t.elapsed += delta
	}
	if t.elapsed < t.duration {
		return false
	}

	if t.mode == TimerRepeating {
		t.elapsed = 0
		return true
	}
	t.elapsed = t.duration
	t.state = TimerStateFinished
	return true
}

// Pause stops the timer. No-op unless running.
func (t *CountdownTimer) Pause() {
	if t.state == TimerStateRunning {
		t.state = TimerStatePaused
	}
}

// Unpause resumes a paused timer. No-op unless paused.
func (t *CountdownTimer) Unpause() {
	if t.state == TimerStatePaused {
		t.state = TimerStateRunning
	}
}

// Extend adds seconds to the duration without touching elapsed time.
// Finished timers and non-positive amounts are ignored.
func (t *CountdownTimer) Extend(seconds float64) {
	if t.state == TimerStateFinished || seconds <= 0 {
		return
	}
	t.duration += seconds
}

// Reset restarts the countdown from zero with a new duration, running.
func (t *CountdownTimer) Reset(duration float64) {
	t.reset(duration)
	t.state = TimerStateRunning
}

// ResetPaused is Reset but leaves the timer paused.
func (t *CountdownTimer) ResetPaused(duration float64) {
	t.reset(duration)
	t.state = TimerStatePaused
}

func (t *CountdownTimer) reset(duration float64) {
	if duration < 0 {
		duration = 0
	}
	t.duration = duration
	t.elapsed = 0
}

// Remaining returns the seconds left before the duration is reached.
func (t *CountdownTimer) Remaining() float64 {
	return t.duration - t.elapsed
}

func (t *CountdownTimer) Duration() float64 { return t.duration }
func (t *CountdownTimer) Elapsed() float64  { return t.elapsed }
func (t *CountdownTimer) State() TimerState { return t.state }
func (t *CountdownTimer) Mode() TimerMode   { return t.mode }

// Finished reports whether a TimerOnce countdown has run out.
func (t *CountdownTimer) Finished() bool {
	return t.state == TimerStateFinished
}
