// Package wizard implements the booking step machine: location -> dates ->
// time, strictly linear forward, freely navigable backward, with forward
// progress gated on step completeness.
package wizard

import (
	"errors"

	"github.com/lushstays/staygo/internal/calendar"
	"github.com/lushstays/staygo/internal/domain"
)

type Step int

const (
	StepLocation Step = iota + 1
	StepDates
	StepTime
)

func (s Step) String() string {
	switch s {
	case StepLocation:
		return "location"
	case StepDates:
		return "dates"
	case StepTime:
		return "time"
	default:
		return "unknown"
	}
}

var ErrInvalidTime = errors.New("time is not an offered option")

// Which names one of the two date selectors.
type Which string

const (
	CheckIn  Which = "checkin"
	CheckOut Which = "checkout"
)

// Wizard drives the three selection steps and accumulates the draft. State
// is cumulative: going back never discards already-entered data.
type Wizard struct {
	step     Step
	draft    domain.BookingDraft
	checkIn  *calendar.Selector
	checkOut *calendar.Selector
}

func New() *Wizard {
	return &Wizard{
		step: StepLocation,
		draft: domain.BookingDraft{
			CheckInTime:  domain.DefaultCheckInTime,
			CheckOutTime: domain.DefaultCheckOutTime,
		},
		checkIn:  calendar.NewSelector(nil),
		checkOut: calendar.NewSelector(nil),
	}
}

func (w *Wizard) Step() Step { return w.step }

// Draft returns a copy of the accumulated selections.
func (w *Wizard) Draft() domain.BookingDraft { return w.draft }

// Selector exposes one of the two embedded calendar selectors so callers
// can browse months or render grids. They browse independently.
func (w *Wizard) Selector(which Which) *calendar.Selector {
	if which == CheckOut {
		return w.checkOut
	}
	return w.checkIn
}

// SelectLocation records the chosen location. Selection copies the catalog
// entry; it never mutates it.
func (w *Wizard) SelectLocation(loc domain.Location) {
	l := loc
	w.draft.Location = &l
}

// SelectCheckIn binds the check-in date and narrows the check-out selector
// to days on or after it. A previously chosen check-out that the new
// check-in would invalidate is cleared.
func (w *Wizard) SelectCheckIn(d domain.Date) error {
	if err := w.checkIn.Select(d); err != nil {
		return err
	}

	day := d
	w.draft.CheckIn = &day
	w.checkOut.SetMinDate(&day)

	if w.draft.CheckOut != nil && w.draft.CheckOut.Before(day) {
		w.draft.CheckOut = nil
		w.checkOut.Clear()
	}

	return nil
}

// SelectCheckOut binds the check-out date. Days before the current check-in
// are disabled by the selector's min-date constraint.
func (w *Wizard) SelectCheckOut(d domain.Date) error {
	if err := w.checkOut.Select(d); err != nil {
		return err
	}

	day := d
	w.draft.CheckOut = &day
	return nil
}

// SetTimes replaces the check-in/check-out times. Both must come from the
// fixed option sets.
func (w *Wizard) SetTimes(checkIn, checkOut domain.TimeOfDay) error {
	if !domain.ValidCheckInTime(checkIn) || !domain.ValidCheckOutTime(checkOut) {
		return ErrInvalidTime
	}
	w.draft.CheckInTime = checkIn
	w.draft.CheckOutTime = checkOut
	return nil
}

// CanAdvance reports whether the current step's gate is satisfied.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepLocation:
		return w.draft.Location != nil
	case StepDates:
		return w.draft.CheckIn != nil && w.draft.CheckOut != nil
	case StepTime:
		// times are pre-populated with defaults
		return true
	default:
		return false
	}
}

// Advance moves forward one step when the gate allows it. On the final step
// it emits the completed draft and reports done instead of moving further.
// A gated advance is a no-op, not an error.
func (w *Wizard) Advance() (domain.BookingDraft, bool) {
	if !w.CanAdvance() {
		return domain.BookingDraft{}, false
	}

	if w.step < StepTime {
		w.step++
		return domain.BookingDraft{}, false
	}

	return w.draft, true
}

// Back returns to the previous step, keeping everything entered so far.
func (w *Wizard) Back() {
	if w.step > StepLocation {
		w.step--
	}
}
