package stats

import (
	"reflect"
	"testing"

	"stehauf/internal/history"
)

func done(date string) history.Session {
	return history.Session{Date: date, Time: "09:00:00", DurationMinutes: 15, Completed: true}
}

// fixtureInput spans two weeks, two months, and two years.
// Today is Thursday 2024-03-07; the week runs Mon 2024-03-04 .. Sun 2024-03-10.
func fixtureInput() Input {
	return Input{
		Sessions: []history.Session{
			done("2024-03-07"),
			done("2024-03-07"),
			done("2024-03-04"),
			done("2024-03-03"), // Sunday of the previous week
			done("2024-02-15"),
			done("2023-03-10"),
			{Date: "2024-03-07", Completed: false}, // aborted, never counted
		},
		ActiveDays:     []string{"2023-03-10", "2024-02-15", "2024-03-03", "2024-03-04", "2024-03-07"},
		HomeofficeDays: []string{"2024-03-01"},
		Today:          "2024-03-07",
	}
}

func TestAggregate_Empty(t *testing.T) {
	sum := Aggregate(Input{Today: "2024-03-07"})

	if !reflect.DeepEqual(sum, Summary{}) {
		t.Errorf("empty input produced non-zero summary: %+v", sum)
	}
}

func TestAggregate_PeriodCounts(t *testing.T) {
	sum := Aggregate(fixtureInput())

	if sum.CompletedToday != 2 {
		t.Errorf("CompletedToday = %d, want 2", sum.CompletedToday)
	}
	if sum.SessionsThisWeek != 3 {
		t.Errorf("SessionsThisWeek = %d, want 3 (Sunday 03-03 belongs to the previous week)", sum.SessionsThisWeek)
	}
	if sum.SessionsThisMonth != 4 {
		t.Errorf("SessionsThisMonth = %d, want 4", sum.SessionsThisMonth)
	}
	if sum.SessionsThisYear != 5 {
		t.Errorf("SessionsThisYear = %d, want 5", sum.SessionsThisYear)
	}
}

func TestAggregate_MonthlySeries(t *testing.T) {
	sum := Aggregate(fixtureInput())

	wantCurrent := [12]int{}
	wantCurrent[1] = 1 // February
	wantCurrent[2] = 4 // March
	if sum.MonthlyCurrentYear != wantCurrent {
		t.Errorf("MonthlyCurrentYear = %v, want %v", sum.MonthlyCurrentYear, wantCurrent)
	}

	wantPrevious := [12]int{}
	wantPrevious[2] = 1 // March 2023
	if sum.MonthlyPreviousYear != wantPrevious {
		t.Errorf("MonthlyPreviousYear = %v, want %v", sum.MonthlyPreviousYear, wantPrevious)
	}
}

func TestAggregate_Averages(t *testing.T) {
	sum := Aggregate(fixtureInput())

	// 6 completed sessions over 5 distinct days, 4 weeks, 3 months.
	if got, want := sum.AverageSessionsPerDay, 1.2; got != want {
		t.Errorf("AverageSessionsPerDay = %v, want %v", got, want)
	}
	if got, want := sum.AverageSessionsPerWeek, 1.5; got != want {
		t.Errorf("AverageSessionsPerWeek = %v, want %v", got, want)
	}
	if got, want := sum.AverageSessionsPerMonth, 2.0; got != want {
		t.Errorf("AverageSessionsPerMonth = %v, want %v", got, want)
	}
}

func TestAggregate_Bests(t *testing.T) {
	sum := Aggregate(fixtureInput())

	if sum.BestDaySessions != 2 {
		t.Errorf("BestDaySessions = %d, want 2", sum.BestDaySessions)
	}
	if sum.BestWeekSessions != 3 {
		t.Errorf("BestWeekSessions = %d, want 3", sum.BestWeekSessions)
	}
	if sum.BestMonthSessions != 4 {
		t.Errorf("BestMonthSessions = %d, want 4", sum.BestMonthSessions)
	}
	if sum.BestYearSessions != 5 {
		t.Errorf("BestYearSessions = %d, want 5", sum.BestYearSessions)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	in := fixtureInput()

	first := Aggregate(in)
	second := Aggregate(in)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input produced different summaries:\n%+v\n%+v", first, second)
	}
}

func TestAggregate_BestsNeverDecrease(t *testing.T) {
	in := fixtureInput()
	before := Aggregate(in)

	in.Sessions = append(in.Sessions, done("2024-03-08"), done("2024-04-01"))
	after := Aggregate(in)

	if after.BestDaySessions < before.BestDaySessions {
		t.Errorf("BestDaySessions decreased: %d -> %d", before.BestDaySessions, after.BestDaySessions)
	}
	if after.BestWeekSessions < before.BestWeekSessions {
		t.Errorf("BestWeekSessions decreased: %d -> %d", before.BestWeekSessions, after.BestWeekSessions)
	}
	if after.BestMonthSessions < before.BestMonthSessions {
		t.Errorf("BestMonthSessions decreased: %d -> %d", before.BestMonthSessions, after.BestMonthSessions)
	}
	if after.BestYearSessions < before.BestYearSessions {
		t.Errorf("BestYearSessions decreased: %d -> %d", before.BestYearSessions, after.BestYearSessions)
	}
}

func TestAggregate_DaySets(t *testing.T) {
	sum := Aggregate(fixtureInput())

	if sum.ActiveDayCount != 5 {
		t.Errorf("ActiveDayCount = %d, want 5", sum.ActiveDayCount)
	}
	if sum.TodayIsHomeoffice {
		t.Error("TodayIsHomeoffice = true, but 2024-03-07 is not flagged")
	}

	in := fixtureInput()
	in.HomeofficeDays = append(in.HomeofficeDays, "2024-03-07")
	if !Aggregate(in).TodayIsHomeoffice {
		t.Error("TodayIsHomeoffice = false after flagging today")
	}
}

func TestAggregate_SkipsUnparseableDates(t *testing.T) {
	sum := Aggregate(Input{
		Sessions: []history.Session{
			{Date: "07.03.2024", Completed: true},
			{Date: "not-a-date", Completed: true},
			done("2024-03-07"),
		},
		Today: "2024-03-07",
	})

	if sum.SessionsThisYear != 1 {
		t.Errorf("SessionsThisYear = %d, want 1 (malformed dates skipped)", sum.SessionsThisYear)
	}
	if sum.BestDaySessions != 1 {
		t.Errorf("BestDaySessions = %d, want 1", sum.BestDaySessions)
	}
}

func TestWeekStart_Monday(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2024-03-04", "2024-03-04"}, // Monday maps to itself
		{"2024-03-07", "2024-03-04"}, // Thursday
		{"2024-03-10", "2024-03-04"}, // Sunday still belongs to Monday's week
		{"2024-03-11", "2024-03-11"}, // next Monday
	}
	for _, tc := range cases {
		d, ok := parseLocalDate(tc.date)
		if !ok {
			t.Fatalf("parseLocalDate(%q) failed", tc.date)
		}
		if got := weekStart(d).Format(history.DateLayout); got != tc.want {
			t.Errorf("weekStart(%s) = %s, want %s", tc.date, got, tc.want)
		}
	}
}
