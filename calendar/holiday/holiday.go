// Package holiday computes Easter-relative (movable) holidays for a given
// year. All dates are Gregorian; formatted dates use "DD/MM/YYYY".
package holiday

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Holiday is a single computed holiday for a specific year.
type Holiday struct {
	Label string
	Date  string // "DD/MM/YYYY"
}

// Options controls which holiday families are computed. Currently only the
// Easter-derived Christian family is supported; the flag is a gate, not a
// selector.
type Options struct {
	IncludeChristianHolidays bool
}

// DefaultOptions returns the options used when the caller passes none.
func DefaultOptions() Options {
	return Options{IncludeChristianHolidays: true}
}

// movableOffset maps a holiday label to its signed day offset from Easter
// Sunday.
type movableOffset struct {
	label          string
	daysFromEaster int
}

// Offsets are fixed; changing them shifts every dependent holiday.
var movableOffsets = []movableOffset{
	{"Segunda-feira de Carnaval", -48},
	{"Carnaval", -47},
	{"Quarta-feira de Cinzas", -46},
	{"Domingo de Ramos", -7},
	{"Quinta-feira Santa", -3},
	{"Sexta-feira Santa (Paixão de Cristo)", -2},
	{"Páscoa", 0},
	{"Corpus Christi", 60},
}

// Easter returns Easter Sunday for the given year using the
// Meeus/Jones/Butcher epact arithmetic for the Gregorian calendar.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// MovableHolidays computes every movable holiday for the given year, sorted
// ascending by date. When opts.IncludeChristianHolidays is false the result
// is empty.
func MovableHolidays(year int, opts Options) []Holiday {
	if !opts.IncludeChristianHolidays {
		return []Holiday{}
	}

	easter := Easter(year)

	holidays := make([]Holiday, 0, len(movableOffsets))
	for _, off := range movableOffsets {
		date := easter.AddDate(0, 0, off.daysFromEaster)
		holidays = append(holidays, Holiday{
			Label: off.label,
			Date:  FormatDate(date),
		})
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		a, aok := ParseDate(holidays[i].Date)
		b, bok := ParseDate(holidays[j].Date)
		if !aok || !bok {
			return false
		}
		return a.Before(b)
	})

	return holidays
}

// IsMovableHoliday reports whether the given "DD/MM/YYYY" date is a movable
// holiday. If year is zero it is inferred from the date string. A malformed
// date never matches.
func IsMovableHoliday(date string, year int, opts Options) (Holiday, bool) {
	parsed, ok := ParseDate(date)
	if !ok {
		return Holiday{}, false
	}

	targetYear := year
	if targetYear == 0 {
		targetYear = parsed.Year()
	}

	for _, h := range MovableHolidays(targetYear, opts) {
		hd, hok := ParseDate(h.Date)
		if hok && hd.Equal(parsed) {
			return h, true
		}
	}

	return Holiday{}, false
}

// FormatDate renders a date as "DD/MM/YYYY".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// ParseDate parses a "DD/MM/YYYY" string into a midnight UTC date.
func ParseDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
