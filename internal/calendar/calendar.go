// Package calendar implements the month-grid day picker backing the date
// steps of the booking wizard: a pure month grid generator and a Selector
// that binds a single date under a minimum-date constraint.
package calendar

import (
	"errors"
	"time"

	"github.com/lushstays/staygo/internal/domain"
)

// ErrDayDisabled is returned by Select for days below the minimum date.
var ErrDayDisabled = errors.New("day is not selectable")

// DaysOfMonth returns the month's day grid: leading nils pad the first week
// up to the weekday column of day 1 (Sunday-first), followed by one entry
// per day of the month. No trailing padding is emitted. Pure function of
// (year, month).
func DaysOfMonth(year int, month time.Month) []*domain.Date {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	days := make([]*domain.Date, 0, int(first.Weekday())+31)
	for i := 0; i < int(first.Weekday()); i++ {
		days = append(days, nil)
	}

	for t := first; t.Month() == month; t = t.AddDate(0, 0, 1) {
		d := domain.DateOf(t)
		days = append(days, &d)
	}

	return days
}

// Selector binds a single date value and owns an independent month view
// cursor. Month navigation never touches the bound value, so a check-in and
// a check-out selector can browse months independently.
type Selector struct {
	value       *domain.Date
	min         *domain.Date
	cursorYear  int
	cursorMonth time.Month

	today func() domain.Date
}

// NewSelector creates a selector with the given minimum date (nil means
// "today"), cursored at the current month.
func NewSelector(min *domain.Date) *Selector {
	s := &Selector{min: min, today: domain.Today}
	now := s.today()
	s.cursorYear, s.cursorMonth = now.Year, now.Month
	return s
}

// Value returns the bound date, or nil when nothing is selected.
func (s *Selector) Value() *domain.Date {
	if s.value == nil {
		return nil
	}
	v := *s.value
	return &v
}

// SetMinDate rebinds the minimum-date constraint. It does not retroactively
// clear an already selected value; callers decide that policy.
func (s *Selector) SetMinDate(min *domain.Date) {
	if min == nil {
		s.min = nil
		return
	}
	m := *min
	s.min = &m
}

// Selectable reports whether d can be selected: d >= minDate when one is
// bound, otherwise d >= today. Calendar-day comparison only.
func (s *Selector) Selectable(d domain.Date) bool {
	min := s.min
	if min == nil {
		t := s.today()
		min = &t
	}
	return !d.Before(*min)
}

// Select replaces the bound value. Disabled days are rejected with
// ErrDayDisabled and cause no state change.
func (s *Selector) Select(d domain.Date) error {
	if !s.Selectable(d) {
		return ErrDayDisabled
	}
	v := d
	s.value = &v
	return nil
}

// Clear drops the bound value. The view cursor is untouched.
func (s *Selector) Clear() { s.value = nil }

// Cursor returns the month currently in view.
func (s *Selector) Cursor() (int, time.Month) { return s.cursorYear, s.cursorMonth }

// Days returns the grid for the month in view.
func (s *Selector) Days() []*domain.Date {
	return DaysOfMonth(s.cursorYear, s.cursorMonth)
}

// PrevMonth moves the view cursor one month back. The bound value is
// untouched.
func (s *Selector) PrevMonth() { s.shiftCursor(-1) }

// NextMonth moves the view cursor one month forward. The bound value is
// untouched.
func (s *Selector) NextMonth() { s.shiftCursor(1) }

func (s *Selector) shiftCursor(months int) {
	t := time.Date(s.cursorYear, s.cursorMonth, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, months, 0)
	s.cursorYear, s.cursorMonth = t.Year(), t.Month()
}
