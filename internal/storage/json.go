package storage

import (
	"encoding/json"

	"go.uber.org/zap"
)

// ReadJSON loads and decodes the value under key. Missing keys, read errors,
// and corrupt JSON all yield the provided default: persisted state is never
// allowed to take the application down.
func ReadJSON[T any](s Store, log *zap.SugaredLogger, key string, def T) T {
	raw, ok, err := s.Get(key)
	if err != nil {
		log.Warnw("storage read failed", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warnw("corrupt value in storage, using default", "key", key, "error", err)
		return def
	}
	return v
}

// WriteJSON encodes v and stores it under key. Write failures are logged
// and swallowed; the in-memory copy remains authoritative for the session.
func WriteJSON(s Store, log *zap.SugaredLogger, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Warnw("storage encode failed", "key", key, "error", err)
		return
	}
	if err := s.Set(key, raw); err != nil {
		log.Warnw("storage write failed", "key", key, "error", err)
	}
}
