package calendar

import (
	"sort"
	"time"
)

// AvailableSlots computes the per-slot availability for one day when
// explicit hours are configured. Slots come back sorted chronologically by
// minutes since midnight, regardless of input order; malformed hour strings
// are skipped.
//
// A slot is unavailable when:
//   - it lies within minTime minutes (inclusive) of any existing
//     appointment's time — minTime=30 around "08:00" blocks 07:30 through
//     08:30, and a booked time always blocks its own slot, or
//   - refDate is now's calendar day and the slot's time already elapsed, or
//   - refDate is now's calendar day, minTime > 0, and the slot starts
//     within minTime minutes of now.
func AvailableSlots(hours []string, existing []Appointment, minTime int, refDate, now time.Time) []TimeSlot {
	if minTime < 0 {
		minTime = 0
	}

	type bookedTime struct {
		label   string
		minutes int
	}
	booked := make([]bookedTime, 0, len(existing))
	for _, appt := range existing {
		if appt.Time == "" {
			continue
		}
		m, ok := TimeToMinutes(appt.Time)
		if !ok {
			continue
		}
		booked = append(booked, bookedTime{label: appt.Time, minutes: m})
	}
	sort.Slice(booked, func(i, j int) bool { return booked[i].minutes < booked[j].minutes })

	isToday := !refDate.IsZero() && SameDay(refDate, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	slots := make([]TimeSlot, 0, len(hours))
	for _, hour := range hours {
		m, ok := TimeToMinutes(hour)
		if !ok {
			continue
		}

		slot := TimeSlot{Time: hour, Minutes: m, IsAvailable: true}

		for _, b := range booked {
			if abs(b.minutes-m) <= minTime {
				slot.IsAvailable = false
				slot.ConflictsWith = append(slot.ConflictsWith, b.label)
			}
		}

		if isToday {
			if m < nowMinutes {
				slot.IsPast = true
				slot.IsAvailable = false
			} else if minTime > 0 && m-nowMinutes <= minTime {
				slot.IsAvailable = false
			}
		}

		slots = append(slots, slot)
	}

	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Minutes < slots[j].Minutes })

	return slots
}

// MaxAppointmentsFromHours counts the available slots for the day; when
// hours are configured this count replaces MaxAppointmentsPerDay as the
// day's capacity.
func MaxAppointmentsFromHours(hours []string, existing []Appointment, minTime int, refDate, now time.Time) int {
	n := 0
	for _, slot := range AvailableSlots(hours, existing, minTime, refDate, now) {
		if slot.IsAvailable {
			n++
		}
	}
	return n
}

// SortTimes returns the "HH:MM" strings ordered chronologically. Malformed
// entries sort last, keeping their relative order.
func SortTimes(times []string) []string {
	out := make([]string, len(times))
	copy(out, times)
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := TimeToMinutes(out[i])
		b, bok := TimeToMinutes(out[j])
		if aok != bok {
			return aok
		}
		return a < b
	})
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
