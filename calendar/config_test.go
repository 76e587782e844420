package calendar

import (
	"reflect"
	"testing"
	"time"
)

func TestConfigNormalizeDefaults(t *testing.T) {
	var cfg Config
	cfg.Normalize()

	if cfg.MaxAppointmentsPerDay != 3 {
		t.Errorf("MaxAppointmentsPerDay = %d, want 3", cfg.MaxAppointmentsPerDay)
	}
	if cfg.BlockDay == nil || !*cfg.BlockDay {
		t.Error("BlockDay default must be true")
	}
	if cfg.EnableChristianHolidays == nil || !*cfg.EnableChristianHolidays {
		t.Error("EnableChristianHolidays default must be true")
	}
	if cfg.PreviousMonths == nil || !*cfg.PreviousMonths {
		t.Error("PreviousMonths default must be true")
	}
	if cfg.EnableSaturday || cfg.EnableSunday {
		t.Error("weekends must default to disabled")
	}
	if cfg.AllowHolidayBooking || cfg.AllowChristianHolidayBooking {
		t.Error("holiday booking must default to disallowed")
	}
	if cfg.MinTime != 0 {
		t.Errorf("MinTime = %d, want 0", cfg.MinTime)
	}
	if cfg.ShowAvailableSlots == nil || !*cfg.ShowAvailableSlots {
		t.Error("ShowAvailableSlots default must be true")
	}
}

func TestConfigNormalizeIdempotent(t *testing.T) {
	cfg := Config{
		MaxAppointmentsPerDay: 5,
		Hours:                 []string{"08:00"},
		MinTime:               15,
		BlockDay:              Bool(false),
		EnableSaturday:        true,
		WorkingHours:          "08:00-18:00",
	}
	cfg.Normalize()
	snapshot := cfg
	cfg.Normalize()

	if !reflect.DeepEqual(snapshot, cfg) {
		t.Fatal("Normalize is not idempotent")
	}
	if cfg.MaxAppointmentsPerDay != 5 {
		t.Error("Normalize must not override explicit values")
	}
	if *cfg.BlockDay {
		t.Error("Normalize must keep explicit false")
	}
}

func TestDayCapacity(t *testing.T) {
	now := date(2025, time.September, 1)
	target := date(2025, time.September, 10)

	if got := DayCapacity(Config{MaxAppointmentsPerDay: 4}, target, now); got != 4 {
		t.Errorf("fixed capacity = %d, want 4", got)
	}

	cfg := Config{Hours: []string{"08:00", "09:00"}, MaxAppointmentsPerDay: 99}
	if got := DayCapacity(cfg, target, now); got != 2 {
		t.Errorf("dynamic capacity = %d, want 2", got)
	}
}
