// Package history owns the persisted session log and the active-day and
// homeoffice-day sets. Entries are append-only: the normal flow only ever
// adds records, and bulk replacement happens solely on CSV import and reset.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout and TimeLayout are the canonical persisted formats. Dates are
// local calendar days, never UTC-normalized.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Session is one completed focus interval. Immutable once created.
type Session struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	Completed       bool   `json:"completed"`
	Reward          Reward `json:"reward"`
}

// NewSession builds a completed session record for the given instant.
// The ID combines the creation timestamp with a random suffix so records
// created within the same clock tick stay distinct.
func NewSession(now time.Time, durationMinutes int, reward Reward) Session {
	return Session{
		ID:              fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Date:            now.Format(DateLayout),
		Time:            now.Format(TimeLayout),
		DurationMinutes: durationMinutes,
		Completed:       true,
		Reward:          reward,
	}
}

// ImportedID builds a fresh ID for a session read from CSV. Imported rows
// never reuse IDs from the file; uniqueness within the store is what counts.
func ImportedID(date, timeOfDay string) string {
	return fmt.Sprintf("%s-%s-%s", date, timeOfDay, uuid.NewString()[:8])
}
