package calendar

import "time"

// Navigator is the displayed-month cursor. It is the only state the engine
// holds between computations; it moves exclusively through Previous/Next.
type Navigator struct {
	reference            time.Time
	previousMonths       bool
	showDisabledPrevious bool
}

// NewNavigator creates a cursor anchored at reference's month.
func NewNavigator(reference time.Time, cfg Config) *Navigator {
	cfg.Normalize()
	return &Navigator{
		reference:            FirstOfMonth(reference),
		previousMonths:       cfg.previousMonths(),
		showDisabledPrevious: cfg.ShowDisabledPreviousButton,
	}
}

// Reference returns the 1st of the currently displayed month.
func (n *Navigator) Reference() time.Time {
	return n.reference
}

// Previous moves the cursor one month back and reports whether it moved.
// When previous-month navigation is disallowed, the move is refused once
// the displayed month has reached the current real-world month.
func (n *Navigator) Previous(now time.Time) bool {
	if !n.previousMonths && monthIndex(n.reference) <= monthIndex(now) {
		return false
	}
	n.reference = PreviousMonth(n.reference)
	return true
}

// Next moves the cursor one month forward. Forward navigation is never
// restricted.
func (n *Navigator) Next() {
	n.reference = NextMonth(n.reference)
}

// PreviousAllowed reports whether the back control should be operable.
func (n *Navigator) PreviousAllowed(now time.Time) bool {
	if n.previousMonths {
		return true
	}
	return monthIndex(n.reference) > monthIndex(now)
}

// ShowPreviousButton reports whether the back control should be rendered at
// all. When navigation backwards is disallowed and the cursor sits at (or
// before) the current month, the control is either shown disabled or hidden
// entirely, depending on ShowDisabledPreviousButton.
func (n *Navigator) ShowPreviousButton(now time.Time) bool {
	if n.previousMonths {
		return true
	}
	if n.showDisabledPrevious {
		return true
	}
	return monthIndex(n.reference) > monthIndex(now)
}
