// Package stats computes derived statistics from the session history.
// Aggregate is a pure function: same input, same output, no side effects,
// safe to recompute on every read.
package stats

import (
	"time"

	"stehauf/internal/history"
)

// Aggregate computes the full Summary for the given input. Date strings are
// interpreted as local calendar dates throughout; routing them through a
// UTC-based parser shifts sessions across midnight boundaries.
func Aggregate(in Input) Summary {
	var sum Summary

	sum.ActiveDayCount = len(in.ActiveDays)
	sum.TodayIsHomeoffice = containsDay(in.HomeofficeDays, in.Today)

	completed := completedSessions(in.Sessions)

	today, ok := parseLocalDate(in.Today)
	if ok {
		sum.CompletedToday = countOnDate(completed, in.Today)
		sum.SessionsThisWeek = countInRange(completed, weekStart(today), weekStart(today).AddDate(0, 0, 7))
		sum.SessionsThisMonth = countInRange(completed, monthStart(today), monthStart(today).AddDate(0, 1, 0))
		sum.SessionsThisYear = countInRange(completed, yearStart(today), yearStart(today).AddDate(1, 0, 0))
		sum.MonthlyCurrentYear, sum.MonthlyPreviousYear = monthlySeries(completed, today.Year())
	}

	dayCounts := make(map[string]int)
	weekCounts := make(map[string]int)
	monthCounts := make(map[string]int)
	yearCounts := make(map[int]int)

	for _, s := range completed {
		d, ok := parseLocalDate(s.Date)
		if !ok {
			continue
		}
		dayCounts[s.Date]++
		weekCounts[weekStart(d).Format(history.DateLayout)]++
		monthCounts[s.Date[:7]]++
		yearCounts[d.Year()]++
	}

	total := 0
	for _, n := range dayCounts {
		total += n
	}

	sum.AverageSessionsPerDay = average(total, len(dayCounts))
	sum.AverageSessionsPerWeek = average(total, len(weekCounts))
	sum.AverageSessionsPerMonth = average(total, len(monthCounts))

	sum.BestDaySessions = maxCount(dayCounts)
	sum.BestWeekSessions = maxCount(weekCounts)
	sum.BestMonthSessions = maxCount(monthCounts)
	for _, n := range yearCounts {
		if n > sum.BestYearSessions {
			sum.BestYearSessions = n
		}
	}

	return sum
}

func completedSessions(sessions []history.Session) []history.Session {
	out := make([]history.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Completed {
			out = append(out, s)
		}
	}
	return out
}

// parseLocalDate parses a YYYY-MM-DD string as a local calendar date.
func parseLocalDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(history.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// weekStart returns the Monday of t's week. Weeks start on Monday per the
// German locale convention.
func weekStart(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-daysSinceMonday, 0, 0, 0, 0, t.Location())
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func yearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func countOnDate(sessions []history.Session, date string) int {
	n := 0
	for _, s := range sessions {
		if s.Date == date {
			n++
		}
	}
	return n
}

// countInRange counts sessions whose date falls in [start, end).
func countInRange(sessions []history.Session, start, end time.Time) int {
	n := 0
	for _, s := range sessions {
		d, ok := parseLocalDate(s.Date)
		if !ok {
			continue
		}
		if !d.Before(start) && d.Before(end) {
			n++
		}
	}
	return n
}

// monthlySeries buckets completed sessions by calendar month for the given
// year and the year before it.
func monthlySeries(sessions []history.Session, currentYear int) (current, previous [12]int) {
	for _, s := range sessions {
		d, ok := parseLocalDate(s.Date)
		if !ok {
			continue
		}
		switch d.Year() {
		case currentYear:
			current[d.Month()-1]++
		case currentYear - 1:
			previous[d.Month()-1]++
		}
	}
	return current, previous
}

// average divides count by denominator, yielding 0 for an empty
// denominator rather than NaN.
func average(count, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(count) / float64(denominator)
}

func maxCount(counts map[string]int) int {
	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}
	return best
}

func containsDay(days []string, date string) bool {
	for _, d := range days {
		if d == date {
			return true
		}
	}
	return false
}
