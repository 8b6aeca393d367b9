package storage

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Open returns the configured store. An empty dbPath selects the in-memory
// store. When SQLite cannot be opened the in-memory store is used instead,
// with a logged warning; the application keeps working, state just won't
// survive a restart.
func Open(dbPath string, log *zap.SugaredLogger) (Store, bool) {
	if dbPath == "" {
		return NewMemoryStore(), false
	}

	store, err := OpenSQLite(expandTilde(dbPath))
	if err != nil {
		log.Warnw("sqlite storage unavailable, falling back to in-memory store", "error", err)
		return NewMemoryStore(), false
	}
	return store, true
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
