// Package timer implements the session and cooldown state machines.
//
// The session timer never counts down: remaining time is always recomputed
// from accumulated elapsed time plus the current run segment's start
// timestamp, so pause/resume cycles, throttled ticks, and suspended
// processes cannot introduce drift. The cooldown is anchored to an absolute
// wall-clock deadline so it survives restarts.
package timer

import (
	"math"
	"time"

	"stehauf/internal/clock"
)

// State is the session timer's externally visible state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// CompletionFunc is invoked exactly once per completed session. It performs
// the completion side effects owned by collaborators: reward selection and
// the history append. It runs synchronously inside Tick, in the same event
// turn as the cooldown start, so no reader can observe one without the other.
type CompletionFunc func(now time.Time)

// SessionTimer tracks a single fixed-duration focus session.
type SessionTimer struct {
	clock            clock.Clock
	sessionDuration  time.Duration
	cooldownDuration time.Duration
	cooldown         *Cooldown
	onComplete       CompletionFunc

	accumulated time.Duration
	runStart    time.Time
	running     bool
	completing  bool
}

// NewSessionTimer creates an idle timer. cooldown must not be nil; the
// timer starts it on completion and refuses Start while it blocks.
func NewSessionTimer(clk clock.Clock, sessionDuration, cooldownDuration time.Duration, cooldown *Cooldown, onComplete CompletionFunc) *SessionTimer {
	return &SessionTimer{
		clock:            clk,
		sessionDuration:  sessionDuration,
		cooldownDuration: cooldownDuration,
		cooldown:         cooldown,
		onComplete:       onComplete,
	}
}

// State returns Idle, Running, or Paused.
func (t *SessionTimer) State() State {
	switch {
	case t.running:
		return StateRunning
	case t.accumulated > 0:
		return StatePaused
	default:
		return StateIdle
	}
}

// Start transitions Idle or Paused to Running. It is a no-op while the
// cooldown blocks or while already running; the return value reports
// whether a transition happened.
func (t *SessionTimer) Start() bool {
	if t.cooldown.IsBlocking() {
		return false
	}
	if t.running {
		return false
	}
	t.runStart = t.clock.Now()
	t.running = true
	return true
}

// Pause folds the current run segment into the accumulated total. Valid
// only while running.
func (t *SessionTimer) Pause() {
	if !t.running {
		return
	}
	t.accumulated += t.clock.Since(t.runStart)
	t.runStart = time.Time{}
	t.running = false
}

// Reset forces Idle with zero accumulated time from any state. The cooldown
// has an independent lifecycle and is not touched.
func (t *SessionTimer) Reset() {
	t.running = false
	t.accumulated = 0
	t.runStart = time.Time{}
}

// Elapsed returns focus time spent in the current session, including the
// live run segment.
func (t *SessionTimer) Elapsed() time.Duration {
	elapsed := t.accumulated
	if t.running {
		elapsed += t.clock.Since(t.runStart)
	}
	return elapsed
}

// Remaining returns the true fractional remaining time. May be negative
// once the session has run over; display paths use RemainingSeconds.
func (t *SessionTimer) Remaining() time.Duration {
	return t.sessionDuration - t.Elapsed()
}

// RemainingSeconds returns the remaining time for display: the ceiling of
// the fractional remainder, clamped to zero. The display never reads 00:00
// before the session has fully elapsed and shows the full duration at idle.
func (t *SessionTimer) RemainingSeconds() int {
	rem := t.Remaining()
	if rem <= 0 {
		return 0
	}
	return int(math.Ceil(rem.Seconds()))
}

// Duration returns the configured session length.
func (t *SessionTimer) Duration() time.Duration {
	return t.sessionDuration
}

// Tick evaluates the running session. Once remaining time reaches zero it
// fires the completion side effects — completion callback, cooldown start,
// reset to Idle — as one uninterrupted sequence, exactly once. The
// completing guard makes re-entrant ticks (including ones triggered from
// inside the callback) harmless.
func (t *SessionTimer) Tick() {
	if !t.running || t.completing {
		return
	}
	if t.Remaining() > 0 {
		return
	}

	t.completing = true
	now := t.clock.Now()

	if t.onComplete != nil {
		t.onComplete(now)
	}
	t.cooldown.Begin(t.cooldownDuration)

	t.running = false
	t.accumulated = 0
	t.runStart = time.Time{}
	t.completing = false
}
