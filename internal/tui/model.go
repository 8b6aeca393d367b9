// Package tui renders the stehauf dashboard: the session timer with its
// cooldown, current statistics, and the reward earned for the last
// completed session.
package tui

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"stehauf/internal/clock"
	"stehauf/internal/config"
	"stehauf/internal/history"
	"stehauf/internal/holidays"
	"stehauf/internal/notify"
	"stehauf/internal/rewards"
	"stehauf/internal/stats"
	"stehauf/internal/storage"
	"stehauf/internal/timer"
)

// The timer display only needs second resolution; remaining time is always
// recomputed from timestamps, so a coarser or throttled tick cannot drift.
const tickInterval = time.Second

type tickMsg time.Time

type holidaysMsg []holidays.Holiday

// rewardState is shared between the completion callback and the view. A
// pointer, because bubbletea copies the Model on every Update.
type rewardState struct {
	current    *history.Reward
	showAnswer bool
}

// Deps are the collaborators the dashboard operates on.
type Deps struct {
	Clock    clock.Clock
	KV       storage.Store
	Log      *zap.SugaredLogger
	History  *history.Store
	Holidays *holidays.Client // nil disables the background fetch
	Notifier notify.Notifier
}

type Model struct {
	cfg  config.Config
	keys KeyMap
	bar  progress.Model

	clk      clock.Clock
	timer    *timer.SessionTimer
	cooldown *timer.Cooldown
	hist     *history.Store
	holiday  *holidays.Client
	notifier notify.Notifier

	reward          *rewardState
	summary         stats.Summary
	holidayList     []holidays.Holiday
	loadingHolidays bool

	width, height int
	confirmReset  bool
	quitting      bool
}

// New wires the state machines and the completion transaction. The
// completion callback appends the session, records the active day, and
// selects the reward; the timer machine itself starts the cooldown in the
// same turn, so readers never observe one effect without the other.
func New(cfg config.Config, deps Deps) Model {
	cooldown := timer.NewCooldown(deps.Clock, deps.KV, deps.Log)
	rng := rand.New(rand.NewSource(deps.Clock.Now().UnixNano()))
	reward := &rewardState{}

	onComplete := func(now time.Time) {
		picked := rewards.Pick(rng, reward.current)
		sess := history.NewSession(now, cfg.Timer.SessionMinutes, picked)
		deps.History.Append(sess)
		deps.History.TouchActiveDay(sess.Date)
		reward.current = &picked
		reward.showAnswer = false
		deps.Notifier.Notify(
			"StehAuf! Büro-Challenge",
			fmt.Sprintf("Glückwunsch! %d Minuten geschafft. Nächste Session in %d Minuten.",
				cfg.Timer.SessionMinutes, cfg.Timer.CooldownMinutes),
		)
	}

	sessionTimer := timer.NewSessionTimer(
		deps.Clock,
		time.Duration(cfg.Timer.SessionMinutes)*time.Minute,
		time.Duration(cfg.Timer.CooldownMinutes)*time.Minute,
		cooldown,
		onComplete,
	)

	m := Model{
		cfg:             cfg,
		keys:            DefaultKeyMap(),
		bar:             progress.New(progress.WithDefaultGradient()),
		clk:             deps.Clock,
		timer:           sessionTimer,
		cooldown:        cooldown,
		hist:            deps.History,
		holiday:         deps.Holidays,
		notifier:        deps.Notifier,
		reward:          reward,
		loadingHolidays: deps.Holidays != nil,
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd()}
	if m.holiday != nil {
		cmds = append(cmds, m.fetchHolidaysCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchHolidaysCmd loads the holiday lists for the current and previous
// year in the background. The client degrades to cached or empty lists on
// failure, so this command never produces an error message.
func (m Model) fetchHolidaysCmd() tea.Cmd {
	client := m.holiday
	year := m.clk.Now().Year()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		list := client.Holidays(ctx, year)
		list = append(list, client.Holidays(ctx, year-1)...)
		return holidaysMsg(list)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = barWidth(msg.Width)
		return m, nil

	case tickMsg:
		// Cooldown first so its Active -> Inactive transition is visible to
		// the session timer within the same tick.
		m.cooldown.Tick()
		m.timer.Tick()
		m.recompute()
		return m, tea.Batch(m.tickCmd(), m.titleCmd())

	case holidaysMsg:
		m.holidayList = msg
		m.loadingHolidays = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		return m.handleResetConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.StartPause):
		if m.timer.State() == timer.StateRunning {
			m.timer.Pause()
		} else {
			m.timer.Start()
		}
		return m, m.titleCmd()

	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
		return m, m.titleCmd()

	case key.Matches(msg, m.keys.Homeoffice):
		today := m.clk.Now().Format(history.DateLayout)
		m.hist.MarkHomeofficeDay(today)
		m.hist.TouchActiveDay(today)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.Answer):
		if m.reward.current != nil && m.reward.current.Kind == history.KindQuiz {
			m.reward.showAnswer = true
		}
		return m, nil

	case key.Matches(msg, m.keys.ResetAll):
		m.confirmReset = true
		return m, nil
	}

	return m, nil
}

// handleResetConfirmKey gates the irreversible full reset behind an
// explicit confirmation.
func (m Model) handleResetConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmReset = false
	if msg.String() == "y" {
		m.hist.ResetAll()
		m.cooldown.Clear()
		m.timer.Reset()
		m.reward.current = nil
		m.reward.showAnswer = false
		m.recompute()
	}
	return m, nil
}

func (m *Model) recompute() {
	m.summary = stats.Aggregate(stats.Input{
		Sessions:       m.hist.All(),
		ActiveDays:     m.hist.ActiveDays(),
		HomeofficeDays: m.hist.HomeofficeDays(),
		Today:          m.clk.Now().Format(history.DateLayout),
	})
}

// titleCmd mirrors the remaining time into the terminal title while the
// timer runs or the cooldown is active.
func (m Model) titleCmd() tea.Cmd {
	switch {
	case m.timer.State() == timer.StateRunning:
		return tea.SetWindowTitle(formatClock(m.timer.RemainingSeconds()) + " – StehAuf!")
	case m.cooldown.Active():
		return tea.SetWindowTitle(formatClock(m.cooldown.RemainingSeconds()) + " – Cooldown")
	default:
		return tea.SetWindowTitle("StehAuf!")
	}
}

func barWidth(totalW int) int {
	w := totalW - 8
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	return w
}

// formatClock renders whole seconds as MM:SS.
func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
