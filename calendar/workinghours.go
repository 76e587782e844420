package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// workingHoursRe validates the "HH:MM-HH:MM" window: hours 00-23, minutes
// 00-59 on both ends. A leading zero on the hour is optional.
var workingHoursRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]-([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidWorkingHours reports whether s is a well-formed working-hours window.
func ValidWorkingHours(s string) bool {
	return workingHoursRe.MatchString(s)
}

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
// The boolean is false for malformed input.
func TimeToMinutes(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// WithinWorkingHours reports whether now's clock time falls inside the
// configured window. An empty window means no restriction. A malformed
// window also means no restriction: the engine fails open and logs a
// warning rather than blocking the whole calendar.
//
// Windows where the end precedes the start span midnight (e.g.
// "22:00-06:00") and match times on either side of it. Both ends are
// inclusive.
func WithinWorkingHours(workingHours string, now time.Time) bool {
	if workingHours == "" {
		return true
	}
	if !ValidWorkingHours(workingHours) {
		logger.WithField("working_hours", workingHours).
			Warn("invalid working hours format, expected HH:MM-HH:MM; ignoring restriction")
		return true
	}

	current := now.Hour()*60 + now.Minute()

	bounds := strings.SplitN(workingHours, "-", 2)
	start, _ := TimeToMinutes(bounds[0])
	end, _ := TimeToMinutes(bounds[1])

	if end < start {
		// Overnight window.
		return current >= start || current <= end
	}
	return current >= start && current <= end
}

// ShouldBlockBooking is the click-time gate: it decides whether opening the
// booking form for date must be refused because now is outside the working
// hours. It is distinct from the grid-level gating in MonthGrid: when
// WorkingHoursCurrentDayOnly is false the grid never disables cells for
// this rule and every date is instead intercepted here.
func ShouldBlockBooking(workingHours string, date time.Time, currentDayOnly bool, now time.Time) bool {
	if workingHours == "" {
		return false
	}
	if !ValidWorkingHours(workingHours) {
		logger.WithField("working_hours", workingHours).
			Warn("invalid working hours format, expected HH:MM-HH:MM; ignoring restriction")
		return false
	}
	if WithinWorkingHours(workingHours, now) {
		return false
	}
	if currentDayOnly {
		return Today(date, now)
	}
	return true
}

// WorkingHoursMessage renders the open/closed status line shown by callers,
// e.g. "Horário de funcionamento: 08:00 às 18:00 (Aberto agora)". It
// returns "" when no usable window is configured.
func WorkingHoursMessage(workingHours string, now time.Time) string {
	if workingHours == "" || !strings.Contains(workingHours, "-") {
		return ""
	}

	bounds := strings.SplitN(workingHours, "-", 2)
	status := "Fechado agora"
	if WithinWorkingHours(workingHours, now) {
		status = "Aberto agora"
	}
	return fmt.Sprintf("Horário de funcionamento: %s às %s (%s)", bounds[0], bounds[1], status)
}

// BookingRefusalMessage is the message surfaced when ShouldBlockBooking
// refuses a click.
func BookingRefusalMessage(workingHours string, date time.Time, currentDayOnly bool, now time.Time) string {
	bounds := strings.SplitN(workingHours, "-", 2)
	if len(bounds) != 2 {
		return ""
	}
	msg := fmt.Sprintf("Agendamentos só podem ser feitos durante o horário de funcionamento: %s às %s", bounds[0], bounds[1])
	if currentDayOnly && Today(date, now) {
		msg += " (Restrição aplicada apenas para hoje)"
	}
	return msg
}
