// Package calendar implements the appointment-scheduling availability
// engine: per-day bookability classification over a 42-cell month grid,
// time-slot/tolerance computation, working-hours gating and month
// navigation. Every time-dependent function takes an explicit "now" so the
// engine stays deterministic; rendering is left entirely to the caller.
package calendar

import "time"

// Appointment is an existing booking supplied by the caller. The engine
// only reads it; matching against grid cells is by calendar day, never by
// timestamp.
type Appointment struct {
	ID    string
	Title string
	Date  time.Time
	// Time is the optional clock time in "HH:MM". Empty means day-granular.
	Time string
	// Data is an opaque caller payload carried through untouched.
	Data any
}

// Holiday is a recurring holiday keyed by "DD/MM".
type Holiday struct {
	Label string `yaml:"label"`
	Date  string `yaml:"date"` // "DD/MM"
}

// DisabledDate is a one-time, year-specific blocked date keyed by
// "DD/MM/YYYY". Disabled dates have no booking-override flag.
type DisabledDate struct {
	Label string `yaml:"label"`
	Date  string `yaml:"date"` // "DD/MM/YYYY"
}

// CalendarDay is one grid cell of the computed month view. IsDisabled is
// derived from the blocking rules; it is never set independently.
type CalendarDay struct {
	Date           time.Time
	IsCurrentMonth bool
	IsPast         bool
	IsDisabled     bool
	// IsSunday is a display marker: Sundays render distinctly whether or
	// not Sunday booking is enabled.
	IsSunday     bool
	Appointments []Appointment

	IsHoliday    bool
	HolidayLabel string

	IsDisabledDate    bool
	DisabledDateLabel string
}

// TimeSlot is one configured bookable hour for a specific day, produced
// only when explicit hours are configured.
type TimeSlot struct {
	Time        string // "HH:MM"
	Minutes     int    // minutes since midnight
	IsAvailable bool
	// ConflictsWith lists existing appointment times within tolerance.
	ConflictsWith []string
	// IsPast is set when the slot's time already elapsed today.
	IsPast bool
}
