package calendar

import (
	"time"

	"agendacal/calendar/holiday"
)

// GridCells is the fixed size of the month view: 6 weeks of 7 days,
// starting on the Sunday on or before the 1st of the month.
const GridCells = 42

// holidayTable is the merged holiday lookup for one computed grid: a union
// of the caller's recurring holidays and the year's movable holidays, both
// keyed by "DD/MM". On a same-date collision the custom entry wins the
// label; membership in the movable set is tracked separately because it
// selects which booking-permission flag governs the date.
type holidayTable struct {
	merged  map[string]Holiday
	movable map[string]Holiday
}

func buildHolidayTable(cfg Config, year int) holidayTable {
	t := holidayTable{
		merged:  make(map[string]Holiday),
		movable: make(map[string]Holiday),
	}

	for _, h := range cfg.Holidays {
		if h.Date == "" {
			continue
		}
		if _, exists := t.merged[h.Date]; !exists {
			t.merged[h.Date] = h
		}
	}

	if cfg.christianHolidaysEnabled() {
		for _, h := range ConvertMovableHolidays(holiday.MovableHolidays(year, holiday.DefaultOptions())) {
			t.movable[h.Date] = h
			if _, exists := t.merged[h.Date]; !exists {
				t.merged[h.Date] = h
			}
		}
	}

	return t
}

// ConvertMovableHolidays truncates year-specific movable holidays
// ("DD/MM/YYYY") to the recurring "DD/MM" form used by the grid lookup.
func ConvertMovableHolidays(movable []holiday.Holiday) []Holiday {
	out := make([]Holiday, 0, len(movable))
	for _, h := range movable {
		if len(h.Date) < 5 {
			continue
		}
		out = append(out, Holiday{Label: h.Label, Date: h.Date[:5]})
	}
	return out
}

// MonthGrid classifies every cell of the 6-week grid around reference's
// month. The result always has exactly GridCells contiguous entries,
// starting on a Sunday and ending on a Saturday. Classification is
// independent per cell; identical inputs (including now) produce an
// identical grid.
func MonthGrid(reference time.Time, appointments []Appointment, cfg Config, now time.Time) []CalendarDay {
	cfg.Normalize()

	byDay := make(map[string][]Appointment, len(appointments))
	for _, appt := range appointments {
		key := DateKey(appt.Date)
		byDay[key] = append(byDay[key], appt)
	}

	holidays := buildHolidayTable(cfg, reference.Year())

	disabled := make(map[string]DisabledDate, len(cfg.DisabledDates))
	for _, d := range cfg.DisabledDates {
		if d.Date == "" {
			continue
		}
		if _, exists := disabled[d.Date]; !exists {
			disabled[d.Date] = d
		}
	}

	// The working-hours grid gate only ever applies to today's cell, and
	// only in current-day-only mode; otherwise the rule is enforced at
	// click time by ShouldBlockBooking, never by the grid.
	outsideHours := cfg.WorkingHours != "" &&
		cfg.WorkingHoursCurrentDayOnly &&
		!WithinWorkingHours(cfg.WorkingHours, now)

	days := make([]CalendarDay, 0, GridCells)
	date := firstDayOfGrid(reference)

	for i := 0; i < GridCells; i++ {
		dayAppointments := byDay[DateKey(date)]

		day := CalendarDay{
			Date:           date,
			IsCurrentMonth: date.Month() == reference.Month() && date.Year() == reference.Year(),
			IsPast:         PastDate(date, now),
			IsSunday:       Sunday(date),
			Appointments:   dayAppointments,
		}

		capacity := cfg.MaxAppointmentsPerDay
		if cfg.hoursConfigured() {
			capacity = MaxAppointmentsFromHours(cfg.Hours, nil, cfg.MinTime, date, now)
		}
		maxReached := len(dayAppointments) >= capacity

		workingHoursDisabled := outsideHours && Today(date, now)

		recurring := RecurringKey(date)
		holidayDisabled := false
		if h, ok := holidays.merged[recurring]; ok {
			day.IsHoliday = true
			day.HolidayLabel = h.Label
			if _, christian := holidays.movable[recurring]; christian {
				holidayDisabled = !cfg.AllowChristianHolidayBooking
			} else {
				holidayDisabled = !cfg.AllowHolidayBooking
			}
		}

		if d, ok := disabled[DateKey(date)]; ok {
			day.IsDisabledDate = true
			day.DisabledDateLabel = d.Label
		}

		day.IsDisabled = day.IsPast ||
			(!cfg.EnableSaturday && Saturday(date)) ||
			(!cfg.EnableSunday && Sunday(date)) ||
			(cfg.blockDay() && maxReached) ||
			workingHoursDisabled ||
			holidayDisabled ||
			day.IsDisabledDate

		days = append(days, day)
		date = date.AddDate(0, 0, 1)
	}

	return days
}

// DayCapacity returns the effective booking capacity for one date: the
// fixed per-day cap, or the dynamic count of bookable slots when explicit
// hours are configured.
func DayCapacity(cfg Config, date, now time.Time) int {
	cfg.Normalize()
	if cfg.hoursConfigured() {
		return MaxAppointmentsFromHours(cfg.Hours, nil, cfg.MinTime, date, now)
	}
	return cfg.MaxAppointmentsPerDay
}
