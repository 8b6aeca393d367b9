//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// OSAScriptNotifier sends macOS notifications via osascript.
// Notifications are sent in a non-blocking goroutine so slow delivery
// cannot stall the timer loop.
type OSAScriptNotifier struct {
	enabled bool
	log     *zap.SugaredLogger
}

// NewPlatformNotifier creates the platform-appropriate notifier for macOS.
// If enabled is false, notifications are silently dropped.
func NewPlatformNotifier(enabled bool, log *zap.SugaredLogger) Notifier {
	return &OSAScriptNotifier{enabled: enabled, log: log}
}

// Notify sends a macOS notification. The call returns immediately; errors
// are logged and otherwise ignored.
func (n *OSAScriptNotifier) Notify(title, body string) {
	if !n.enabled {
		return
	}
	go func() {
		script := fmt.Sprintf(
			`display notification "%s" with title "%s"`,
			escapeAppleScript(body), escapeAppleScript(title),
		)
		cmd := exec.Command("osascript", "-e", script)
		if err := cmd.Run(); err != nil {
			n.log.Warnw("failed to send desktop notification", "error", err)
		}
	}()
}

// escapeAppleScript escapes characters that could break AppleScript strings.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
