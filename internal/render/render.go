// Package render draws the month view and day details as plain text for
// the demo CLI.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"agendacal/calendar"
)

// Cell markers.
//
//	*  day has appointments
//	F  holiday
//	D  disabled date
//	x  day is unavailable for booking
const legend = "Legenda: * agendado  F feriado  D desabilitada  x indisponível"

// Month writes a 6x7 text grid of the given month view.
func Month(w io.Writer, reference time.Time, days []calendar.CalendarDay, cfg calendar.Config, now time.Time) error {
	title := fmt.Sprintf("%s de %d", upperFirst(calendar.MonthName(reference)), reference.Year())
	if _, err := fmt.Fprintf(w, "%s\n\n", title); err != nil {
		return err
	}

	for _, name := range calendar.WeekdayHeader {
		fmt.Fprintf(w, "%5s", name)
	}
	fmt.Fprintln(w)

	for i, day := range days {
		fmt.Fprintf(w, "%5s", cell(day))
		if (i+1)%7 == 0 {
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "\n%s\n", legend)

	if cfg.WorkingHours != "" {
		fmt.Fprintln(w, calendar.WorkingHoursMessage(cfg.WorkingHours, now))
	}
	return nil
}

func cell(day calendar.CalendarDay) string {
	if !day.IsCurrentMonth {
		return fmt.Sprintf("(%d)", day.Date.Day())
	}

	var marker string
	switch {
	case day.IsHoliday:
		marker = "F"
	case day.IsDisabledDate:
		marker = "D"
	case len(day.Appointments) > 0:
		marker = "*"
	case day.IsDisabled:
		marker = "x"
	}
	return fmt.Sprintf("%d%s", day.Date.Day(), marker)
}

// Day writes the detail view for one day: the tooltip line, the day's
// appointments, and the remaining available slots.
func Day(w io.Writer, day calendar.CalendarDay, cfg calendar.Config, now time.Time) error {
	if _, err := fmt.Fprintln(w, calendar.DayTooltip(day, cfg, now)); err != nil {
		return err
	}

	for _, appt := range day.Appointments {
		if appt.Time != "" {
			fmt.Fprintf(w, "  %s  %s\n", appt.Time, appt.Title)
		} else {
			fmt.Fprintf(w, "  (dia inteiro)  %s\n", appt.Title)
		}
	}

	cfg.Normalize()
	if day.IsDisabled || !*cfg.ShowAvailableSlots || len(cfg.Hours) == 0 {
		return nil
	}

	slots := calendar.AvailableSlots(cfg.Hours, day.Appointments, cfg.MinTime, day.Date, now)
	var free []string
	for _, s := range slots {
		if s.IsAvailable {
			free = append(free, s.Time)
		}
	}
	if len(free) == 0 {
		fmt.Fprintln(w, "  Nenhum horário disponível")
		return nil
	}
	fmt.Fprintf(w, "  Horários disponíveis: %s\n", strings.Join(free, ", "))
	return nil
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
