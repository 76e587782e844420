package calendar

import (
	"fmt"
	"time"
)

// Day-of-week numbering follows time.Weekday: 0 = Sunday … 6 = Saturday.

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// PastDate reports whether date is strictly before now's calendar day.
// The comparison is date-only; clock time never matters here.
func PastDate(date, now time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(n)
}

// Today reports whether date falls on now's calendar day.
func Today(date, now time.Time) bool {
	return SameDay(date, now)
}

// Saturday reports whether the date is a Saturday.
func Saturday(date time.Time) bool {
	return date.Weekday() == time.Saturday
}

// Sunday reports whether the date is a Sunday.
func Sunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// RecurringKey renders the yearly-recurring holiday key, "DD/MM".
func RecurringKey(t time.Time) string {
	return fmt.Sprintf("%02d/%02d", t.Day(), int(t.Month()))
}

// DateKey renders the one-time disabled-date key, "DD/MM/YYYY".
func DateKey(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// FirstOfMonth returns midnight on the 1st of reference's month.
func FirstOfMonth(reference time.Time) time.Time {
	return time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
}

// firstDayOfGrid returns the Sunday on or before the 1st of the month.
func firstDayOfGrid(reference time.Time) time.Time {
	first := FirstOfMonth(reference)
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// PreviousMonth returns the 1st of the month before reference.
func PreviousMonth(reference time.Time) time.Time {
	return time.Date(reference.Year(), reference.Month()-1, 1, 0, 0, 0, 0, reference.Location())
}

// NextMonth returns the 1st of the month after reference.
func NextMonth(reference time.Time) time.Time {
	return time.Date(reference.Year(), reference.Month()+1, 1, 0, 0, 0, 0, reference.Location())
}

// monthIndex flattens a date to year*12+month so months compare as ints.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

var weekdayNames = [7]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// WeekdayHeader is the Sunday-first weekday row rendered above the grid.
var WeekdayHeader = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sab"}

// MonthName returns the Portuguese month name for the date.
func MonthName(t time.Time) string {
	return monthNames[int(t.Month())-1]
}

// FormatDate renders a long Portuguese date, e.g.
// "sexta-feira, 25 de dezembro de 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdayNames[int(t.Weekday())], t.Day(), MonthName(t), t.Year())
}
