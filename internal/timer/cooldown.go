package timer

import (
	"math"
	"time"

	"go.uber.org/zap"

	"stehauf/internal/clock"
	"stehauf/internal/storage"
)

// cooldownEndKey stores the absolute deadline as epoch milliseconds. An
// absolute instant, not a countdown: a counter would go stale across
// restarts and suspended processes, where no tick loop is running.
const cooldownEndKey = "stehauf_cooldown_end"

// Cooldown is the mandatory lockout window after a completed session.
type Cooldown struct {
	clock clock.Clock
	kv    storage.Store
	log   *zap.SugaredLogger

	// end is the zero time while inactive.
	end time.Time
}

// NewCooldown restores the cooldown from persisted state. A deadline in the
// future resumes Active with recomputed remaining time; a deadline in the
// past is cleared immediately.
func NewCooldown(clk clock.Clock, kv storage.Store, log *zap.SugaredLogger) *Cooldown {
	c := &Cooldown{clock: clk, kv: kv, log: log}

	endMillis := storage.ReadJSON(kv, log, cooldownEndKey, int64(0))
	if endMillis > 0 {
		end := time.UnixMilli(endMillis)
		if end.After(clk.Now()) {
			c.end = end
		} else if err := kv.Delete(cooldownEndKey); err != nil {
			log.Warnw("failed to clear expired cooldown", "error", err)
		}
	}
	return c
}

// Begin starts a cooldown of the given length and persists its deadline.
func (c *Cooldown) Begin(d time.Duration) {
	c.end = c.clock.Now().Add(d)
	storage.WriteJSON(c.kv, c.log, cooldownEndKey, c.end.UnixMilli())
}

// Active reports whether a deadline is set. The deadline may already have
// passed; Tick performs the transition to inactive.
func (c *Cooldown) Active() bool {
	return !c.end.IsZero()
}

// IsBlocking reports whether a new session must be refused right now.
func (c *Cooldown) IsBlocking() bool {
	return c.Remaining() > 0
}

// Remaining returns the time until the deadline, clamped to zero.
func (c *Cooldown) Remaining() time.Duration {
	if c.end.IsZero() {
		return 0
	}
	rem := c.end.Sub(c.clock.Now())
	if rem < 0 {
		return 0
	}
	return rem
}

// RemainingSeconds returns the remaining cooldown for display, rounded up.
func (c *Cooldown) RemainingSeconds() int {
	rem := c.Remaining()
	if rem <= 0 {
		return 0
	}
	return int(math.Ceil(rem.Seconds()))
}

// Tick performs the Active -> Inactive transition once the deadline has
// passed, clearing the persisted state. Called at least once per second
// while active.
func (c *Cooldown) Tick() {
	if c.end.IsZero() || c.clock.Now().Before(c.end) {
		return
	}
	c.clear()
}

// Clear deactivates the cooldown unconditionally. Only the full-reset path
// uses this; a session completion always serves its full lockout.
func (c *Cooldown) Clear() {
	if c.end.IsZero() {
		return
	}
	c.clear()
}

func (c *Cooldown) clear() {
	c.end = time.Time{}
	if err := c.kv.Delete(cooldownEndKey); err != nil {
		c.log.Warnw("failed to clear cooldown deadline", "error", err)
	}
}
