package stats

import "stehauf/internal/history"

// Input is everything the aggregator reads. It never consults the wall
// clock or storage itself.
type Input struct {
	Sessions       []history.Session
	ActiveDays     []string
	HomeofficeDays []string
	// Today is the current local calendar day, YYYY-MM-DD.
	Today string
}

// Summary holds every derived statistic. All counts cover completed
// sessions only; an empty history yields the zero value.
type Summary struct {
	CompletedToday    int
	SessionsThisWeek  int
	SessionsThisMonth int
	SessionsThisYear  int

	// Monthly session counts for charting, index 0 = January.
	MonthlyCurrentYear  [12]int
	MonthlyPreviousYear [12]int

	AverageSessionsPerDay   float64
	AverageSessionsPerWeek  float64
	AverageSessionsPerMonth float64

	// All-time maxima over any single calendar day, Monday-start week,
	// month, and year.
	BestDaySessions   int
	BestWeekSessions  int
	BestMonthSessions int
	BestYearSessions  int

	ActiveDayCount    int
	TodayIsHomeoffice bool
}
