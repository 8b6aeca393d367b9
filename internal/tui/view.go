package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stehauf/internal/history"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("69"))

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	cooldownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	accentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	chartBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	chartPrevBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var monthNames = [12]string{
	"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
	"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("StehAuf! Büro-Challenge"),
		m.viewTimer(),
		m.viewStats(),
		m.viewReward(),
		m.viewMonthlyChart(),
		m.viewFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) viewTimer() string {
	var b strings.Builder

	if m.cooldown.IsBlocking() {
		b.WriteString(panelTitleStyle.Render("Cooldown"))
		b.WriteString("\n")
		b.WriteString(cooldownStyle.Render(formatClock(m.cooldown.RemainingSeconds())))
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(m.cooldownProgress()))
		b.WriteString("\n")
		b.WriteString(cooldownStyle.Render("Nächste Session in " + formatClock(m.cooldown.RemainingSeconds())))
	} else {
		b.WriteString(panelTitleStyle.Render("Session"))
		b.WriteString("\n")
		b.WriteString(clockStyle.Render(formatClock(m.timer.RemainingSeconds())))
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(m.sessionProgress()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.timer.State().String()))
	}

	return panelStyle.Render(b.String())
}

func (m Model) sessionProgress() float64 {
	total := m.timer.Duration().Seconds()
	if total <= 0 {
		return 0
	}
	return m.timer.Elapsed().Seconds() / total
}

func (m Model) cooldownProgress() float64 {
	total := float64(m.cfg.Timer.CooldownMinutes * 60)
	if total <= 0 {
		return 0
	}
	return 1 - float64(m.cooldown.RemainingSeconds())/total
}

func (m Model) viewStats() string {
	var b strings.Builder
	s := m.summary

	b.WriteString(panelTitleStyle.Render("Heute"))
	b.WriteString("  ")
	if s.TodayIsHomeoffice {
		b.WriteString(dimStyle.Render("Homeoffice"))
	} else {
		b.WriteString(fmt.Sprintf("%d/%d", s.CompletedToday, m.cfg.Timer.DailyGoal))
		if m.cfg.Timer.DailyGoal > 0 && s.CompletedToday > m.cfg.Timer.DailyGoal {
			b.WriteString(accentStyle.Render(" (Bonus!)"))
		}
	}
	if m.loadingHolidays {
		b.WriteString(dimStyle.Render("  lade Feiertage..."))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Aktuell      Woche %d · Monat %d · Jahr %d\n",
		s.SessionsThisWeek, s.SessionsThisMonth, s.SessionsThisYear))
	b.WriteString(fmt.Sprintf("Durchschnitt Tag %.2f · Woche %.2f · Monat %.2f\n",
		s.AverageSessionsPerDay, s.AverageSessionsPerWeek, s.AverageSessionsPerMonth))
	b.WriteString("Rekorde      ")
	b.WriteString(accentStyle.Render(fmt.Sprintf("Tag %d · Woche %d · Monat %d · Jahr %d",
		s.BestDaySessions, s.BestWeekSessions, s.BestMonthSessions, s.BestYearSessions)))

	return panelStyle.Render(b.String())
}

func (m Model) viewReward() string {
	var b strings.Builder
	r := m.reward.current

	if r == nil {
		b.WriteString(panelTitleStyle.Render("Belohnung"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Stell dich hin, um deine erste Belohnung zu erhalten!"))
		return panelStyle.Render(b.String())
	}

	b.WriteString(panelTitleStyle.Render(rewardTitle(r.Kind)))
	b.WriteString("\n")
	if r.Kind == history.KindQuiz {
		b.WriteString(r.Question)
		b.WriteString("\n")
		if m.reward.showAnswer {
			b.WriteString(accentStyle.Render(r.Answer))
		} else {
			b.WriteString(dimStyle.Render("[a] Antwort anzeigen"))
		}
	} else {
		b.WriteString(r.Text)
	}

	return panelStyle.Render(b.String())
}

func rewardTitle(kind history.RewardKind) string {
	switch kind {
	case history.KindFact:
		return "Historische Tatsache"
	case history.KindScience:
		return "Wissenschaftlicher Fakt"
	case history.KindTrivia:
		return "Allgemeinwissen"
	case history.KindEnergy:
		return "Energie-Fakt"
	case history.KindQuiz:
		return "Frage & Antwort"
	default:
		return "Belohnung"
	}
}

// viewMonthlyChart renders the per-month session counts for the current
// year as bars, with last year's count alongside for comparison.
func (m Model) viewMonthlyChart() string {
	s := m.summary

	maxCount := 1
	for i := 0; i < 12; i++ {
		if s.MonthlyCurrentYear[i] > maxCount {
			maxCount = s.MonthlyCurrentYear[i]
		}
	}

	const maxBar = 24
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Sessions pro Monat"))
	for i := 0; i < 12; i++ {
		cur := s.MonthlyCurrentYear[i]
		prev := s.MonthlyPreviousYear[i]
		if cur == 0 && prev == 0 {
			continue
		}
		barLen := cur * maxBar / maxCount
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s %d",
			monthNames[i],
			chartBarStyle.Render(strings.Repeat("█", barLen)),
			cur,
		))
		if prev > 0 {
			b.WriteString(chartPrevBarStyle.Render(fmt.Sprintf("  (Vorjahr %d)", prev)))
		}
	}

	return panelStyle.Render(b.String())
}

func (m Model) viewFooter() string {
	if m.confirmReset {
		return cooldownStyle.Render("Alle Daten unwiderruflich löschen? [y/N]")
	}

	help := []string{
		m.keys.StartPause.Help().Key + " " + m.keys.StartPause.Help().Desc,
		m.keys.Reset.Help().Key + " " + m.keys.Reset.Help().Desc,
		m.keys.Homeoffice.Help().Key + " " + m.keys.Homeoffice.Help().Desc,
		m.keys.Answer.Help().Key + " " + m.keys.Answer.Help().Desc,
		m.keys.ResetAll.Help().Key + " " + m.keys.ResetAll.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return dimStyle.Render(strings.Join(help, " · "))
}
