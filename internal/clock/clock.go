// Package clock provides the time source used by the timer and cooldown
// state machines. All temporal logic goes through the Clock interface so
// tests can drive time manually.
package clock

import "time"

// Clock supplies wall-clock timestamps. Values returned by Now carry Go's
// monotonic reading, so durations derived via Since are immune to wall-clock
// adjustments while the process is alive.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type systemClock struct{}

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// System returns the real clock.
func System() Clock {
	return systemClock{}
}

// Manual is a hand-advanced clock for tests.
type Manual struct {
	now time.Time
}

// NewManual creates a manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) Since(t time.Time) time.Duration { return m.now.Sub(t) }

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) { m.now = m.now.Add(d) }

// Set jumps the clock to the given instant. Used to simulate reloads and
// machine sleep, where arbitrary wall time passes between observations.
func (m *Manual) Set(t time.Time) { m.now = t }
