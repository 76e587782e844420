// Package icsimport loads appointments from iCalendar (.ics) files on disk.
// VEVENTs are parsed with arran4/golang-ical and recurring events are
// expanded with teambition/rrule-go into concrete appointments inside a
// requested date window.
package icsimport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"

	"agendacal/calendar"
)

const defaultMaxOccurrencesPerEvent = 1000

// Options controls parsing and recurrence expansion.
type Options struct {
	// Location is the timezone appointments are normalized into.
	// Defaults to time.Local.
	Location *time.Location

	// RangeStart and RangeEnd bound recurrence expansion (inclusive).
	// Both must be set; LoadFile rejects an empty window.
	RangeStart time.Time
	RangeEnd   time.Time

	// MaxOccurrencesPerEvent caps expansion of a single recurring event.
	MaxOccurrencesPerEvent int

	// Logger receives per-event warnings. Nil disables logging.
	Logger *logrus.Entry
}

func (o *Options) normalize() error {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.RangeStart.IsZero() || o.RangeEnd.IsZero() {
		return errors.New("icsimport: expansion range is required")
	}
	if o.RangeEnd.Before(o.RangeStart) {
		return errors.New("icsimport: range end is before range start")
	}
	if o.MaxOccurrencesPerEvent <= 0 {
		o.MaxOccurrencesPerEvent = defaultMaxOccurrencesPerEvent
	}
	if o.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.Logger = logrus.NewEntry(discard)
	}
	return nil
}

// parsedEvent is a normalized VEVENT before recurrence expansion.
type parsedEvent struct {
	uid     string
	summary string
	start   time.Time
	allDay  bool
	rawRule string
	exDates []time.Time
}

// LoadFile reads one .ics file and returns the appointments it describes
// within the options' range, sorted by date then time.
func LoadFile(path string, opts Options) ([]calendar.Appointment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	appts, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return appts, nil
}

// Parse parses a raw ICS payload into appointments. Individual malformed
// VEVENTs are skipped with a warning; the rest of the file still imports.
func Parse(body []byte, opts Options) ([]calendar.Appointment, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errors.New("icsimport: empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var out []calendar.Appointment
	for _, ve := range cal.Events() {
		ev, perr := parseVEvent(ve)
		if perr != nil {
			opts.Logger.WithError(perr).Warn("skipping unparseable VEVENT")
			continue
		}
		out = append(out, expand(ev, opts)...)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time < out[j].Time
	})

	opts.Logger.WithField("count", len(out)).Debug("ics import finished")
	return out, nil
}

func parseVEvent(ve *ical.VEvent) (parsedEvent, error) {
	var ev parsedEvent

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		ev.uid = p.Value
	}
	if ev.uid == "" {
		ev.uid = uuid.NewString()
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.summary = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return ev, fmt.Errorf("event %s: missing DTSTART: %w", ev.uid, err)
	}
	ev.start = start

	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			ev.allDay = true
		}
		if !strings.Contains(p.Value, "T") {
			ev.allDay = true
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		ev.rawRule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, terr := parseICSTime(part); terr == nil {
				ev.exDates = append(ev.exDates, t)
			}
		}
	}

	return ev, nil
}

// expand turns one parsed event into zero or more appointments within the
// options' range.
func expand(ev parsedEvent, opts Options) []calendar.Appointment {
	if ev.rawRule == "" {
		start := ev.start.In(opts.Location)
		if start.Before(opts.RangeStart) || start.After(opts.RangeEnd) {
			return nil
		}
		return []calendar.Appointment{makeAppointment(ev, start, opts.Location)}
	}

	r, err := rrule.StrToRRule(ev.rawRule)
	if err != nil {
		opts.Logger.WithError(err).WithField("uid", ev.uid).Warn("skipping event with bad RRULE")
		return nil
	}
	r.DTStart(ev.start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.exDates {
		set.ExDate(ex.In(ev.start.Location()))
	}

	occs := set.Between(
		opts.RangeStart.In(ev.start.Location()),
		opts.RangeEnd.In(ev.start.Location()),
		true,
	)
	if len(occs) > opts.MaxOccurrencesPerEvent {
		opts.Logger.WithFields(logrus.Fields{
			"uid": ev.uid,
			"cap": opts.MaxOccurrencesPerEvent,
		}).Warn("recurring event truncated")
		occs = occs[:opts.MaxOccurrencesPerEvent]
	}

	out := make([]calendar.Appointment, 0, len(occs))
	for _, occ := range occs {
		out = append(out, makeAppointment(ev, occ.In(opts.Location), opts.Location))
	}
	return out
}

func makeAppointment(ev parsedEvent, start time.Time, loc *time.Location) calendar.Appointment {
	appt := calendar.Appointment{
		ID:    ev.uid + "/" + start.Format(time.RFC3339),
		Title: ev.summary,
		Date:  time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc),
	}
	if !ev.allDay {
		appt.Time = start.Format("15:04")
	}
	return appt
}

// parseICSTime handles the basic EXDATE value forms: UTC date-time,
// floating date-time, and date-only.
func parseICSTime(v string) (time.Time, error) {
	switch {
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, time.Local)
	default:
		return time.ParseInLocation("20060102", v, time.Local)
	}
}
