package history

// MergeImported combines an existing session log with imported records.
// An imported session counts as a duplicate of an existing one when date,
// time, and reward payload are all equal; duplicates are dropped, never
// overwritten. IDs are deliberately ignored since imports mint fresh ones.
func MergeImported(existing, imported []Session) []Session {
	out := make([]Session, len(existing), len(existing)+len(imported))
	copy(out, existing)

	for _, imp := range imported {
		if !isDuplicate(out, imp) {
			out = append(out, imp)
		}
	}
	return out
}

func isDuplicate(sessions []Session, candidate Session) bool {
	for _, s := range sessions {
		if s.Date == candidate.Date && s.Time == candidate.Time && s.Reward.Equal(candidate.Reward) {
			return true
		}
	}
	return false
}
