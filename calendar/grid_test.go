package calendar

import (
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func findDay(t *testing.T, days []CalendarDay, target time.Time) CalendarDay {
	t.Helper()
	for _, d := range days {
		if SameDay(d.Date, target) {
			return d
		}
	}
	t.Fatalf("date %s not in grid", target.Format("2006-01-02"))
	return CalendarDay{}
}

func TestMonthGridShape(t *testing.T) {
	now := date(2025, time.September, 1)

	tests := []struct {
		name      string
		reference time.Time
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "month starting on a Monday",
			reference: date(2025, time.September, 1),
			wantFirst: date(2025, time.August, 31),
			wantLast:  date(2025, time.October, 11),
		},
		{
			name:      "month starting on a Sunday",
			reference: date(2026, time.February, 15),
			wantFirst: date(2026, time.February, 1),
			wantLast:  date(2026, time.March, 14),
		},
		{
			name:      "december year boundary",
			reference: date(2025, time.December, 25),
			wantFirst: date(2025, time.November, 30),
			wantLast:  date(2026, time.January, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := MonthGrid(tt.reference, nil, Config{}, now)

			if len(days) != GridCells {
				t.Fatalf("expected %d cells, got %d", GridCells, len(days))
			}
			if !SameDay(days[0].Date, tt.wantFirst) {
				t.Errorf("first cell = %s, want %s", days[0].Date.Format("2006-01-02"), tt.wantFirst.Format("2006-01-02"))
			}
			if !SameDay(days[len(days)-1].Date, tt.wantLast) {
				t.Errorf("last cell = %s, want %s", days[len(days)-1].Date.Format("2006-01-02"), tt.wantLast.Format("2006-01-02"))
			}
			if days[0].Date.Weekday() != time.Sunday {
				t.Errorf("grid starts on %s, want Sunday", days[0].Date.Weekday())
			}
			if days[len(days)-1].Date.Weekday() != time.Saturday {
				t.Errorf("grid ends on %s, want Saturday", days[len(days)-1].Date.Weekday())
			}
			for i := 1; i < len(days); i++ {
				if !SameDay(days[i].Date, days[i-1].Date.AddDate(0, 0, 1)) {
					t.Fatalf("gap in grid at index %d: %s after %s", i,
						days[i].Date.Format("2006-01-02"), days[i-1].Date.Format("2006-01-02"))
				}
			}
			for _, d := range days {
				wantCurrent := d.Date.Month() == tt.reference.Month() && d.Date.Year() == tt.reference.Year()
				if d.IsCurrentMonth != wantCurrent {
					t.Errorf("%s IsCurrentMonth = %v, want %v", d.Date.Format("2006-01-02"), d.IsCurrentMonth, wantCurrent)
				}
			}
		})
	}
}

func TestMonthGridPastDaysDisabled(t *testing.T) {
	now := time.Date(2025, time.September, 15, 13, 45, 0, 0, time.UTC)
	days := MonthGrid(date(2025, time.September, 1), nil, Config{EnableSaturday: true, EnableSunday: true}, now)

	for _, d := range days {
		wantPast := d.Date.Before(date(2025, time.September, 15))
		if d.IsPast != wantPast {
			t.Errorf("%s IsPast = %v, want %v", d.Date.Format("2006-01-02"), d.IsPast, wantPast)
		}
		if wantPast && !d.IsDisabled {
			t.Errorf("%s is past but not disabled", d.Date.Format("2006-01-02"))
		}
	}

	today := findDay(t, days, date(2025, time.September, 15))
	if today.IsPast {
		t.Error("today must not be flagged past")
	}
}

func TestMonthGridWeekendGating(t *testing.T) {
	now := date(2025, time.September, 1)

	tests := []struct {
		name           string
		cfg            Config
		wantSatBlocked bool
		wantSunBlocked bool
	}{
		{"weekends disabled by default", Config{}, true, true},
		{"saturday enabled", Config{EnableSaturday: true}, false, true},
		{"sunday enabled", Config{EnableSunday: true}, true, false},
		{"both enabled", Config{EnableSaturday: true, EnableSunday: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := MonthGrid(date(2025, time.September, 1), nil, tt.cfg, now)
			for _, d := range days {
				if d.IsPast {
					continue
				}
				switch d.Date.Weekday() {
				case time.Saturday:
					if d.IsDisabled != tt.wantSatBlocked {
						t.Errorf("%s disabled = %v, want %v", d.Date.Format("2006-01-02"), d.IsDisabled, tt.wantSatBlocked)
					}
				case time.Sunday:
					if d.IsDisabled != tt.wantSunBlocked {
						t.Errorf("%s disabled = %v, want %v", d.Date.Format("2006-01-02"), d.IsDisabled, tt.wantSunBlocked)
					}
					if !d.IsSunday {
						t.Errorf("%s missing Sunday marker", d.Date.Format("2006-01-02"))
					}
				}
			}
		})
	}
}

func TestMonthGridCapacity(t *testing.T) {
	now := date(2025, time.September, 1)
	appointments := []Appointment{
		{ID: "1", Title: "Consulta", Date: date(2025, time.September, 10)},
		{ID: "2", Title: "Retorno", Date: date(2025, time.September, 10)},
	}

	tests := []struct {
		name         string
		cfg          Config
		wantDisabled bool
	}{
		{
			name:         "capacity reached blocks day",
			cfg:          Config{MaxAppointmentsPerDay: 2},
			wantDisabled: true,
		},
		{
			name:         "capacity not reached",
			cfg:          Config{MaxAppointmentsPerDay: 3},
			wantDisabled: false,
		},
		{
			name:         "blockDay false keeps day open",
			cfg:          Config{MaxAppointmentsPerDay: 2, BlockDay: Bool(false)},
			wantDisabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := MonthGrid(date(2025, time.September, 1), appointments, tt.cfg, now)
			day := findDay(t, days, date(2025, time.September, 10))
			if day.IsDisabled != tt.wantDisabled {
				t.Errorf("disabled = %v, want %v", day.IsDisabled, tt.wantDisabled)
			}
			if len(day.Appointments) != 2 {
				t.Errorf("appointments on day = %d, want 2", len(day.Appointments))
			}
		})
	}
}

func TestMonthGridDynamicCapacityFromHours(t *testing.T) {
	now := date(2025, time.September, 1)
	appointments := []Appointment{
		{ID: "1", Title: "A", Date: date(2025, time.September, 10), Time: "08:00"},
		{ID: "2", Title: "B", Date: date(2025, time.September, 10), Time: "09:00"},
	}

	// Two configured slots: capacity is 2 regardless of MaxAppointmentsPerDay.
	cfg := Config{
		Hours:                 []string{"08:00", "09:00"},
		MaxAppointmentsPerDay: 10,
	}

	days := MonthGrid(date(2025, time.September, 1), appointments, cfg, now)
	day := findDay(t, days, date(2025, time.September, 10))
	if !day.IsDisabled {
		t.Error("day with all slots booked should be disabled")
	}

	cfg.BlockDay = Bool(false)
	days = MonthGrid(date(2025, time.September, 1), appointments, cfg, now)
	day = findDay(t, days, date(2025, time.September, 10))
	if day.IsDisabled {
		t.Error("blockDay=false must keep the full day open")
	}
}

func TestMonthGridHolidayPermissionAxes(t *testing.T) {
	// Carnival 2025 (movable, Easter-47) falls on Tuesday 04/03.
	now := date(2025, time.January, 15)
	reference := date(2025, time.March, 1)
	carnival := date(2025, time.March, 4)

	tests := []struct {
		name         string
		cfg          Config
		wantDisabled bool
		wantLabel    string
	}{
		{
			name:         "movable holiday blocked by default",
			cfg:          Config{},
			wantDisabled: true,
			wantLabel:    "Carnaval",
		},
		{
			name:         "allowChristianHolidayBooking frees movable date",
			cfg:          Config{AllowChristianHolidayBooking: true},
			wantDisabled: false,
			wantLabel:    "Carnaval",
		},
		{
			name: "allowHolidayBooking alone does not free movable date",
			cfg:  Config{AllowHolidayBooking: true},
			// Same date, wrong permission axis.
			wantDisabled: true,
			wantLabel:    "Carnaval",
		},
		{
			name: "custom holiday on same date still governed by christian flag",
			cfg: Config{
				Holidays:                     []Holiday{{Label: "Aniversário da cidade", Date: "04/03"}},
				AllowChristianHolidayBooking: true,
			},
			wantDisabled: false,
			wantLabel:    "Aniversário da cidade",
		},
		{
			name: "custom holiday with movable disabled uses custom flag",
			cfg: Config{
				Holidays:                ([]Holiday{{Label: "Aniversário da cidade", Date: "04/03"}}),
				EnableChristianHolidays: Bool(false),
			},
			wantDisabled: true,
			wantLabel:    "Aniversário da cidade",
		},
		{
			name: "custom holiday freed by allowHolidayBooking when movable disabled",
			cfg: Config{
				Holidays:                []Holiday{{Label: "Aniversário da cidade", Date: "04/03"}},
				EnableChristianHolidays: Bool(false),
				AllowHolidayBooking:     true,
			},
			wantDisabled: false,
			wantLabel:    "Aniversário da cidade",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := MonthGrid(reference, nil, tt.cfg, now)
			day := findDay(t, days, carnival)
			if !day.IsHoliday {
				t.Fatal("carnival not flagged as holiday")
			}
			if day.HolidayLabel != tt.wantLabel {
				t.Errorf("label = %q, want %q", day.HolidayLabel, tt.wantLabel)
			}
			if day.IsDisabled != tt.wantDisabled {
				t.Errorf("disabled = %v, want %v", day.IsDisabled, tt.wantDisabled)
			}
		})
	}
}

func TestMonthGridDisabledDates(t *testing.T) {
	now := date(2025, time.September, 1)
	cfg := Config{
		DisabledDates: []DisabledDate{
			{Label: "Reforma da clínica", Date: "10/09/2025"},
			{Label: "ignored", Date: "not-a-date"},
		},
		// No override flag exists for disabled dates.
		AllowHolidayBooking:          true,
		AllowChristianHolidayBooking: true,
	}

	days := MonthGrid(date(2025, time.September, 1), nil, cfg, now)

	day := findDay(t, days, date(2025, time.September, 10))
	if !day.IsDisabledDate || !day.IsDisabled {
		t.Errorf("disabled date not blocking: IsDisabledDate=%v IsDisabled=%v", day.IsDisabledDate, day.IsDisabled)
	}
	if day.DisabledDateLabel != "Reforma da clínica" {
		t.Errorf("label = %q", day.DisabledDateLabel)
	}

	// The same day next year is untouched: disabled dates are one-time.
	nextYear := MonthGrid(date(2026, time.September, 1), nil, cfg, now)
	if d := findDay(t, nextYear, date(2026, time.September, 10)); d.IsDisabledDate {
		t.Error("disabled date leaked into the following year")
	}
}

func TestMonthGridWorkingHoursGate(t *testing.T) {
	// 22:30 is outside 08:00-18:00.
	now := time.Date(2025, time.September, 9, 22, 30, 0, 0, time.UTC) // Tuesday

	tests := []struct {
		name           string
		currentDayOnly bool
		wantTodayBlock bool
	}{
		{"current day only blocks today's cell", true, true},
		{"otherwise the grid is never gated by hours", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				WorkingHours:               "08:00-18:00",
				WorkingHoursCurrentDayOnly: tt.currentDayOnly,
			}
			days := MonthGrid(date(2025, time.September, 1), nil, cfg, now)

			today := findDay(t, days, date(2025, time.September, 9))
			if today.IsDisabled != tt.wantTodayBlock {
				t.Errorf("today disabled = %v, want %v", today.IsDisabled, tt.wantTodayBlock)
			}

			tomorrow := findDay(t, days, date(2025, time.September, 10))
			if tomorrow.IsDisabled {
				t.Error("future weekday must not be grid-disabled by working hours")
			}
		})
	}
}

func TestMonthGridDeterministic(t *testing.T) {
	now := time.Date(2025, time.September, 9, 10, 15, 0, 0, time.UTC)
	appointments := []Appointment{
		{ID: "1", Title: "Consulta", Date: date(2025, time.September, 10), Time: "08:30"},
	}
	cfg := Config{
		Hours:        []string{"08:00", "08:30", "09:00"},
		MinTime:      30,
		Holidays:     []Holiday{{Label: "Feriado", Date: "12/09"}},
		WorkingHours: "08:00-18:00",
	}

	a := MonthGrid(date(2025, time.September, 1), appointments, cfg, now)
	b := MonthGrid(date(2025, time.September, 1), appointments, cfg, now)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different grids")
	}
}
