// Package logging builds the application logger. Transient failures
// (storage soft-fails, holiday fetch errors, notification errors) are logged
// here and never surfaced to the UI.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options control where and how much the logger writes.
type Options struct {
	// Path is the log file location. Empty means log to stderr.
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// New creates a SugaredLogger writing JSON lines to a rotating file, or to
// stderr when no path is configured.
func New(opts Options) *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewJSONEncoder(encCfg)

	var sink zapcore.WriteSyncer
	if opts.Path == "" {
		sink = zapcore.AddSync(os.Stderr)
	} else {
		if dir := filepath.Dir(opts.Path); dir != "" {
			_ = os.MkdirAll(dir, 0o755)
		}
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		})
	}

	core := zapcore.NewCore(enc, sink, zapcore.InfoLevel)
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
