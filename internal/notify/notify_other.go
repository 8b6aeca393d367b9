//go:build !linux && !darwin

package notify

import "go.uber.org/zap"

// NewPlatformNotifier returns a no-op notifier on platforms without a
// supported notification mechanism.
func NewPlatformNotifier(enabled bool, log *zap.SugaredLogger) Notifier {
	return Nop{}
}
