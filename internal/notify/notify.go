// Package notify sends best-effort desktop notifications on session
// completion. Delivery is never guaranteed, never retried, and never allowed
// to block or fail the timer path.
package notify

// Notifier sends a desktop notification. Implementations must be
// non-blocking.
type Notifier interface {
	Notify(title, body string)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Notify(title, body string) {}
