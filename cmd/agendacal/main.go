// Command agendacal renders the booking calendar for a month in the
// terminal. It loads its configuration from YAML, merges appointments from
// inline fixtures and ICS files, and either prints the view once or keeps
// it refreshed on a cron schedule.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"agendacal/calendar"
	"agendacal/internal/config"
	"agendacal/internal/icsimport"
	applog "agendacal/internal/log"
	"agendacal/internal/render"
)

type flags struct {
	configPath string
	month      string // "YYYY-MM", defaults to the current month
	day        int    // day-of-month detail view, 0 for none
	watch      bool
}

// envOverrides take precedence over flag defaults but not explicit flags.
type envOverrides struct {
	ConfigPath string `env:"AGENDACAL_CONFIG"`
	LogLevel   string `env:"AGENDACAL_LOG_LEVEL"`
}

func main() {
	fl := parseFlags()

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		fmt.Fprintf(os.Stderr, "reading environment: %v\n", err)
		os.Exit(1)
	}
	if fl.configPath == defaultConfigPath && ov.ConfigPath != "" {
		fl.configPath = ov.ConfigPath
	}

	cfg, err := config.Load(fl.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config %s: %v\n", fl.configPath, err)
		os.Exit(1)
	}

	level := cfg.LogLevel
	if ov.LogLevel != "" {
		level = ov.LogLevel
	}
	logger := applog.New(level)
	calendar.SetLogger(logger)

	loc, err := cfg.Location()
	if err != nil {
		logger.WithError(err).Fatal("invalid timezone")
	}

	reference, err := parseMonth(fl.month, loc)
	if err != nil {
		logger.WithError(err).Fatal("invalid -month value")
	}

	logger.WithFields(logrus.Fields{
		"config":   fl.configPath,
		"timezone": cfg.Timezone,
		"month":    reference.Format("2006-01"),
		"watch":    fl.watch,
	}).Info("agendacal starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.WithField("signal", sig.String()).Info("shutting down")
		cancel()
	}()

	run := func() {
		if err := renderOnce(os.Stdout, cfg, reference, fl.day, loc, logger); err != nil {
			logger.WithError(err).Error("render failed")
		}
	}

	run()
	if !fl.watch {
		return
	}

	sched := cron.New(cron.WithSeconds(), cron.WithLocation(loc))
	if _, err := sched.AddFunc(cfg.RefreshCron, run); err != nil {
		logger.WithError(err).WithField("schedule", cfg.RefreshCron).Fatal("invalid refresh schedule")
	}
	sched.Start()

	<-ctx.Done()
	<-sched.Stop().Done()
	logger.Info("agendacal exiting")
}

// renderOnce builds the month view with fresh appointments and writes it,
// plus the optional day detail, to w.
func renderOnce(w *os.File, cfg *config.Config, reference time.Time, day int, loc *time.Location, logger *logrus.Entry) error {
	now := time.Now().In(loc)

	appts, err := collectAppointments(cfg, reference, loc, logger)
	if err != nil {
		return err
	}

	days := calendar.MonthGrid(reference, appts, cfg.Calendar, now)
	if err := render.Month(w, reference, days, cfg.Calendar, now); err != nil {
		return err
	}

	if day <= 0 {
		return nil
	}
	return renderDay(w, days, cfg.Calendar, day, now)
}

// renderDay prints the detail for one day of the current view, applying
// the click-time working-hours gate first.
func renderDay(w *os.File, days []calendar.CalendarDay, cfg calendar.Config, day int, now time.Time) error {
	for _, d := range days {
		if !d.IsCurrentMonth || d.Date.Day() != day {
			continue
		}
		fmt.Fprintln(w)
		if calendar.ShouldBlockBooking(cfg.WorkingHours, d.Date, cfg.WorkingHoursCurrentDayOnly, now) {
			fmt.Fprintln(w, calendar.BookingRefusalMessage(cfg.WorkingHours, d.Date, cfg.WorkingHoursCurrentDayOnly, now))
			return nil
		}
		return render.Day(w, d, cfg, now)
	}
	return fmt.Errorf("day %d is not in the displayed month", day)
}

// collectAppointments merges inline fixtures with every configured ICS
// file, scoped to the displayed month's grid window.
func collectAppointments(cfg *config.Config, reference time.Time, loc *time.Location, logger *logrus.Entry) ([]calendar.Appointment, error) {
	appts := cfg.CalendarAppointments(loc)

	if len(cfg.ICSFiles) == 0 {
		return appts, nil
	}

	first := calendar.FirstOfMonth(reference)
	opts := icsimport.Options{
		Location:   loc,
		RangeStart: first.AddDate(0, 0, -7),
		RangeEnd:   first.AddDate(0, 1, 14),
		Logger:     logger,
	}
	for _, path := range cfg.ICSFiles {
		imported, err := icsimport.LoadFile(path, opts)
		if err != nil {
			logger.WithError(err).WithField("file", path).Warn("skipping ICS file")
			continue
		}
		appts = append(appts, imported...)
	}
	return appts, nil
}

const defaultConfigPath = "agendacal.yaml"

func parseFlags() flags {
	var fl flags
	flag.StringVar(&fl.configPath, "config", defaultConfigPath, "Path to config file")
	flag.StringVar(&fl.month, "month", "", "Month to display as YYYY-MM (default: current month)")
	flag.IntVar(&fl.day, "day", 0, "Show the detail view for this day of the month")
	flag.BoolVar(&fl.watch, "watch", false, "Keep running and re-render on the refresh schedule")
	flag.Parse()
	return fl
}

func parseMonth(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		now := time.Now().In(loc)
		return calendar.FirstOfMonth(now), nil
	}
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
