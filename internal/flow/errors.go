package flow

import "errors"

var (
	ErrWrongPhase          = errors.New("operation not allowed in current phase")
	ErrSubmissionInFlight  = errors.New("a submission is already in flight")
	ErrSubmissionFailed    = errors.New("booking submission failed")
	ErrUnknownMenuItem     = errors.New("menu item not found")
	ErrGuestDetailsMissing = errors.New("guest name and email are required")
)
