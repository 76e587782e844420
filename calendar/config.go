package calendar

// Config is the full knob surface of the engine. The zero value is usable:
// Normalize fills every unset field with its documented default, so partial
// configs (e.g. loaded from YAML) behave predictably.
type Config struct {
	// MaxAppointmentsPerDay caps bookings per day. Ignored when Hours is
	// set, in which case capacity is computed per day from the slot table.
	MaxAppointmentsPerDay int `yaml:"max_appointments_per_day"`

	// Hours lists the explicit bookable times ("HH:MM"). When non-empty the
	// fixed cap is replaced by the dynamic count of available slots.
	Hours []string `yaml:"hours"`

	// MinTime is the tolerance in minutes between two booked times. Two
	// times conflict when they are strictly closer than MinTime.
	MinTime int `yaml:"min_time"`

	// BlockDay controls whether reaching capacity disables the day in the
	// grid (default true). When false the caller may still open the day
	// and warn inside the booking form.
	BlockDay *bool `yaml:"block_day"`

	EnableSaturday bool `yaml:"enable_saturday"`
	EnableSunday   bool `yaml:"enable_sunday"`

	Holidays            []Holiday `yaml:"holidays"`
	AllowHolidayBooking bool      `yaml:"allow_holiday_booking"`

	// EnableChristianHolidays adds the Easter-derived movable holidays for
	// the displayed year (default true). Their booking permission is
	// governed by AllowChristianHolidayBooking independently of
	// AllowHolidayBooking, even when both sources name the same date.
	EnableChristianHolidays      *bool `yaml:"enable_christian_holidays"`
	AllowChristianHolidayBooking bool  `yaml:"allow_christian_holiday_booking"`

	DisabledDates []DisabledDate `yaml:"disabled_dates"`

	// WorkingHours is an "HH:MM-HH:MM" window. Malformed strings mean "no
	// restriction" (a warning is logged, never an error).
	WorkingHours string `yaml:"working_hours"`
	// WorkingHoursCurrentDayOnly limits the grid-level working-hours block
	// to today's cell; outside-hours clicks on any date are still refused
	// at booking time by ShouldBlockBooking.
	WorkingHoursCurrentDayOnly bool `yaml:"working_hours_current_day_only"`

	// PreviousMonths allows navigating before the current real-world month
	// (default true).
	PreviousMonths *bool `yaml:"previous_months"`
	// ShowDisabledPreviousButton renders the back button disabled instead
	// of hiding it once navigation is refused.
	ShowDisabledPreviousButton bool `yaml:"show_disabled_previous_button"`

	// Presentation passthroughs surfaced to the caller.
	HighlightToday     *bool `yaml:"highlight_today"`
	HighlightEvents    *bool `yaml:"highlight_events"`
	TodayCircleStyle   bool  `yaml:"today_circle_style"`
	ShowAvailableSlots *bool `yaml:"show_available_slots"`
	ShowExistingEvents *bool `yaml:"show_existing_events"`
}

// Bool returns a pointer to v, for filling the tri-state config fields.
func Bool(v bool) *bool {
	return &v
}

// Normalize fills unset fields with the engine defaults. It is idempotent.
func (c *Config) Normalize() {
	if c.MaxAppointmentsPerDay <= 0 {
		c.MaxAppointmentsPerDay = 3
	}
	if c.MinTime < 0 {
		c.MinTime = 0
	}
	if c.BlockDay == nil {
		c.BlockDay = Bool(true)
	}
	if c.EnableChristianHolidays == nil {
		c.EnableChristianHolidays = Bool(true)
	}
	if c.PreviousMonths == nil {
		c.PreviousMonths = Bool(true)
	}
	if c.HighlightToday == nil {
		c.HighlightToday = Bool(true)
	}
	if c.HighlightEvents == nil {
		c.HighlightEvents = Bool(true)
	}
	if c.ShowAvailableSlots == nil {
		c.ShowAvailableSlots = Bool(true)
	}
	if c.ShowExistingEvents == nil {
		c.ShowExistingEvents = Bool(true)
	}
}

func (c Config) blockDay() bool {
	return c.BlockDay == nil || *c.BlockDay
}

func (c Config) christianHolidaysEnabled() bool {
	return c.EnableChristianHolidays == nil || *c.EnableChristianHolidays
}

func (c Config) previousMonths() bool {
	return c.PreviousMonths == nil || *c.PreviousMonths
}

func (c Config) showAvailableSlots() bool {
	return c.ShowAvailableSlots == nil || *c.ShowAvailableSlots
}

// hoursConfigured reports whether the dynamic-capacity model is active.
func (c Config) hoursConfigured() bool {
	return len(c.Hours) > 0
}
