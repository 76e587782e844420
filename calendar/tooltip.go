package calendar

import (
	"fmt"
	"time"
)

// DayTooltip builds the human-readable description of a grid cell.
//
// Disabled days get a single reason picked in fixed priority order:
// holiday, then explicit disabled date, then capacity, then a generic
// "unavailable". This ordering is independent of how IsDisabled was
// derived — gating is a flat OR over all blocking terms, but the text
// always names the highest-priority matching reason.
func DayTooltip(day CalendarDay, cfg Config, now time.Time) string {
	cfg.Normalize()

	tooltip := FormatDate(day.Date)

	if day.IsHoliday && day.HolidayLabel != "" {
		tooltip += " - " + day.HolidayLabel
	}
	if day.IsDisabledDate && day.DisabledDateLabel != "" {
		tooltip += " - " + day.DisabledDateLabel
	}

	if cfg.showAvailableSlots() && !day.IsDisabled && !day.IsPast {
		var available int
		if cfg.hoursConfigured() {
			available = MaxAppointmentsFromHours(cfg.Hours, day.Appointments, cfg.MinTime, day.Date, now)
		} else {
			available = cfg.MaxAppointmentsPerDay - len(day.Appointments)
		}
		tooltip += fmt.Sprintf(" - %d vagas disponíveis", available)
	}

	if day.IsDisabled {
		switch {
		case day.IsHoliday && !cfg.AllowHolidayBooking:
			tooltip += " - Feriado (agendamentos não permitidos)"
		case day.IsDisabledDate:
			tooltip += " - Data desabilitada"
		case len(day.Appointments) >= DayCapacity(cfg, day.Date, now):
			tooltip += " - Limite de agendamentos atingido"
		default:
			tooltip += " - Não disponível"
		}
	}

	return tooltip
}
