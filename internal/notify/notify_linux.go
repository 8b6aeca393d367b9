//go:build linux

package notify

import (
	"os/exec"

	"go.uber.org/zap"
)

// NotifySendNotifier sends Linux desktop notifications via notify-send.
// Notifications are sent in a non-blocking goroutine so slow delivery
// cannot stall the timer loop.
type NotifySendNotifier struct {
	enabled bool
	log     *zap.SugaredLogger
}

// NewPlatformNotifier creates the platform-appropriate notifier for Linux.
// If enabled is false, notifications are silently dropped.
func NewPlatformNotifier(enabled bool, log *zap.SugaredLogger) Notifier {
	return &NotifySendNotifier{enabled: enabled, log: log}
}

// Notify sends a Linux desktop notification. The call returns immediately;
// errors are logged and otherwise ignored.
func (n *NotifySendNotifier) Notify(title, body string) {
	if !n.enabled {
		return
	}
	go func() {
		cmd := exec.Command("notify-send", "--app-name", "stehauf", title, body)
		if err := cmd.Run(); err != nil {
			n.log.Warnw("failed to send desktop notification", "error", err)
		}
	}()
}
