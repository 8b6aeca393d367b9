package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stehauf/internal/clock"
	"stehauf/internal/config"
	"stehauf/internal/csvio"
	"stehauf/internal/history"
	"stehauf/internal/holidays"
	"stehauf/internal/logging"
	"stehauf/internal/notify"
	"stehauf/internal/stats"
	"stehauf/internal/storage"
	"stehauf/internal/timer"
	"stehauf/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stehauf",
		Short:         "Stand-up session timer with cooldown, history, and statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
	}

	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newResetCmd())
	return root
}

// app bundles the wiring shared by every command: config, logger, storage,
// and the history store on top of it.
type app struct {
	cfg  config.Config
	log  *zap.SugaredLogger
	kv   storage.Store
	hist *history.Store
}

func loadApp() (*app, error) {
	loadResult, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	for _, w := range loadResult.Warnings {
		fmt.Fprintf(os.Stderr, "stehauf: config warning: %s\n", w)
	}
	cfg := loadResult.Config

	log := logging.New(logging.Options{
		Path:       expandTilde(cfg.Log.Path),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	kv, persistent := storage.Open(cfg.Storage.DBPath, log)
	if !persistent && cfg.Storage.DBPath != "" {
		fmt.Fprintln(os.Stderr, "stehauf: warning: running without persistent storage")
	}

	return &app{
		cfg:  cfg,
		log:  log,
		kv:   kv,
		hist: history.NewStore(kv, log),
	}, nil
}

func (a *app) close() {
	if err := a.kv.Close(); err != nil {
		a.log.Warnw("closing storage", "error", err)
	}
	_ = a.log.Sync()
}

func runTUI() error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	var holidayClient *holidays.Client
	if a.cfg.Holidays.Enabled {
		holidayClient = holidays.NewClient(a.kv, a.log, clock.System(), a.cfg.Holidays.CountryCode)
	}

	model := tui.New(a.cfg, tui.Deps{
		Clock:    clock.System(),
		KV:       a.kv,
		Log:      a.log,
		History:  a.hist,
		Holidays: holidayClient,
		Notifier: notify.NewPlatformNotifier(a.cfg.Notifications.SystemNotify, a.log),
	})

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export sessions and day sets as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			doc := csvio.Document{
				Sessions:       a.hist.All(),
				ActiveDays:     a.hist.ActiveDays(),
				HomeofficeDays: a.hist.HomeofficeDays(),
			}
			if err := csvio.Export(f, doc); err != nil {
				return fmt.Errorf("exporting: %w", err)
			}

			fmt.Printf("exported %d sessions, %d active days, %d homeoffice days to %s\n",
				len(doc.Sessions), len(doc.ActiveDays), len(doc.HomeofficeDays), args[0])
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a CSV export, merging with existing data",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			result, err := csvio.Import(f)
			if err != nil {
				if errors.Is(err, csvio.ErrHeaderMismatch) {
					return fmt.Errorf("invalid CSV format: %w", err)
				}
				return fmt.Errorf("importing: %w", err)
			}

			before := len(a.hist.All())
			merged := history.MergeImported(a.hist.All(), result.Sessions)
			a.hist.ReplaceAll(merged)
			a.hist.ReplaceDays(
				append(a.hist.ActiveDays(), result.ActiveDays...),
				append(a.hist.HomeofficeDays(), result.HomeofficeDays...),
			)

			fmt.Printf("imported %d sessions (%d duplicates dropped)\n",
				len(merged)-before, len(result.Sessions)-(len(merged)-before))
			for _, skip := range result.Skipped {
				fmt.Fprintf(os.Stderr, "skipped line %d: %s\n", skip.Line, skip.Reason)
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print session statistics",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			sum := stats.Aggregate(stats.Input{
				Sessions:       a.hist.All(),
				ActiveDays:     a.hist.ActiveDays(),
				HomeofficeDays: a.hist.HomeofficeDays(),
				Today:          clock.System().Now().Format(history.DateLayout),
			})

			fmt.Printf("Heute:        %d/%d\n", sum.CompletedToday, a.cfg.Timer.DailyGoal)
			fmt.Printf("Aktuell:      Woche %d · Monat %d · Jahr %d\n",
				sum.SessionsThisWeek, sum.SessionsThisMonth, sum.SessionsThisYear)
			fmt.Printf("Durchschnitt: Tag %.2f · Woche %.2f · Monat %.2f\n",
				sum.AverageSessionsPerDay, sum.AverageSessionsPerWeek, sum.AverageSessionsPerMonth)
			fmt.Printf("Rekorde:      Tag %d · Woche %d · Monat %d · Jahr %d\n",
				sum.BestDaySessions, sum.BestWeekSessions, sum.BestMonthSessions, sum.BestYearSessions)
			fmt.Printf("Aktive Tage:  %d\n", sum.ActiveDayCount)
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all sessions, day sets, and the cooldown (irreversible)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			if !yes && !confirm("Alle Daten unwiderruflich löschen? [y/N] ") {
				fmt.Println("abgebrochen")
				return nil
			}

			a.hist.ResetAll()
			timer.NewCooldown(clock.System(), a.kv, a.log).Clear()
			fmt.Println("Alle Daten wurden zurückgesetzt.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "j" || answer == "ja"
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return home + path[1:]
		}
	}
	return path
}
