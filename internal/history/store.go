package history

import (
	"sort"

	"go.uber.org/zap"

	"stehauf/internal/storage"
)

// Storage keys. One logical key per concern; every write replaces the
// whole value.
const (
	sessionsKey       = "stehauf_sessions"
	activeDaysKey     = "stehauf_active_days"
	homeofficeDaysKey = "stehauf_homeoffice_days"
)

// Store holds the session log and day sets, mirrored to the storage port on
// every mutation. There is a single writer (the UI event loop), so no
// locking is needed here.
type Store struct {
	kv  storage.Store
	log *zap.SugaredLogger

	sessions       []Session
	activeDays     []string
	homeofficeDays []string
}

// NewStore loads persisted state from kv. Corrupt or missing values fall
// back to empty collections.
func NewStore(kv storage.Store, log *zap.SugaredLogger) *Store {
	return &Store{
		kv:             kv,
		log:            log,
		sessions:       storage.ReadJSON(kv, log, sessionsKey, []Session{}),
		activeDays:     storage.ReadJSON(kv, log, activeDaysKey, []string{}),
		homeofficeDays: storage.ReadJSON(kv, log, homeofficeDaysKey, []string{}),
	}
}

// All returns a snapshot of the full session log in append order.
func (s *Store) All() []Session {
	out := make([]Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Append adds one record and persists the full collection.
func (s *Store) Append(sess Session) {
	s.sessions = append(s.sessions, sess)
	storage.WriteJSON(s.kv, s.log, sessionsKey, s.sessions)
}

// ReplaceAll swaps the entire session log. De-duplication against existing
// records is the caller's job; see MergeImported.
func (s *Store) ReplaceAll(sessions []Session) {
	s.sessions = make([]Session, len(sessions))
	copy(s.sessions, sessions)
	storage.WriteJSON(s.kv, s.log, sessionsKey, s.sessions)
}

// Clear removes all session records. Only the full-reset path calls this.
func (s *Store) Clear() {
	s.sessions = nil
	if err := s.kv.Delete(sessionsKey); err != nil {
		s.log.Warnw("failed to clear sessions", "error", err)
	}
}

// ActiveDays returns the sorted set of days the user interacted with the app.
func (s *Store) ActiveDays() []string {
	out := make([]string, len(s.activeDays))
	copy(out, s.activeDays)
	return out
}

// TouchActiveDay records date as an active day. The set only grows.
func (s *Store) TouchActiveDay(date string) {
	if containsDay(s.activeDays, date) {
		return
	}
	s.activeDays = append(s.activeDays, date)
	sort.Strings(s.activeDays)
	storage.WriteJSON(s.kv, s.log, activeDaysKey, s.activeDays)
}

// HomeofficeDays returns the sorted set of user-flagged remote-work days.
func (s *Store) HomeofficeDays() []string {
	out := make([]string, len(s.homeofficeDays))
	copy(out, s.homeofficeDays)
	return out
}

// MarkHomeofficeDay flags date as a homeoffice day. Explicit user action
// only; the set never shrinks outside of a full reset.
func (s *Store) MarkHomeofficeDay(date string) {
	if containsDay(s.homeofficeDays, date) {
		return
	}
	s.homeofficeDays = append(s.homeofficeDays, date)
	sort.Strings(s.homeofficeDays)
	storage.WriteJSON(s.kv, s.log, homeofficeDaysKey, s.homeofficeDays)
}

// ReplaceDays swaps both day sets, used by CSV import.
func (s *Store) ReplaceDays(activeDays, homeofficeDays []string) {
	s.activeDays = dedupSorted(activeDays)
	s.homeofficeDays = dedupSorted(homeofficeDays)
	storage.WriteJSON(s.kv, s.log, activeDaysKey, s.activeDays)
	storage.WriteJSON(s.kv, s.log, homeofficeDaysKey, s.homeofficeDays)
}

// ResetAll wipes sessions and both day sets. Irreversible; callers must
// confirm with the user first.
func (s *Store) ResetAll() {
	s.sessions = nil
	s.activeDays = nil
	s.homeofficeDays = nil
	for _, key := range []string{sessionsKey, activeDaysKey, homeofficeDaysKey} {
		if err := s.kv.Delete(key); err != nil {
			s.log.Warnw("failed to delete key during reset", "key", key, "error", err)
		}
	}
}

func containsDay(days []string, date string) bool {
	for _, d := range days {
		if d == date {
			return true
		}
	}
	return false
}

func dedupSorted(days []string) []string {
	seen := make(map[string]bool, len(days))
	out := make([]string, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}
