package booking

import "errors"

var (
	ErrLocationUnknown = errors.New("location not in catalog")
	ErrLocationClosed  = errors.New("location is not available")
	ErrInvalidStay     = errors.New("check-out is before check-in")
	ErrZeroNightStay   = errors.New("zero-night stays are not permitted")
	ErrBookingNotFound = errors.New("booking not found")
	ErrGuestRequired   = errors.New("guest name and email are required")
)
