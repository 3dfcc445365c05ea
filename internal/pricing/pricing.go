// Package pricing derives the booking invoice from a frozen draft and a
// frozen cart snapshot. It is pure: no I/O, deterministic given its inputs.
package pricing

import (
	"errors"

	"github.com/lushstays/staygo/internal/domain"
)

var (
	ErrIncompleteDraft = errors.New("draft is missing a location or a date")
	ErrInvalidRange    = errors.New("check-out is before check-in")
	ErrZeroNightStay   = errors.New("zero-night stays are not permitted")
)

// Config holds the pricing policy knobs.
type Config struct {
	// AllowZeroNights permits check-in == check-out (same-day turnover,
	// nights = 0).
	AllowZeroNights bool
}

type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine { return &Engine{cfg: cfg} }

// Nights returns the whole-day difference between two calendar days. Dates
// carry no time component, so time-of-day selections cannot perturb the
// count.
func Nights(checkIn, checkOut domain.Date) int {
	return checkIn.DaysUntil(checkOut)
}

// Quote computes the booking summary for a completed draft and cart
// snapshot. The booking id is assigned later by the submitter.
func (e *Engine) Quote(
	draft domain.BookingDraft,
	lines []domain.CartLine,
) (domain.BookingSummary, error) {
	if !draft.Complete() {
		return domain.BookingSummary{}, ErrIncompleteDraft
	}

	nights := Nights(*draft.CheckIn, *draft.CheckOut)
	if nights < 0 {
		return domain.BookingSummary{}, ErrInvalidRange
	}
	if nights == 0 && !e.cfg.AllowZeroNights {
		return domain.BookingSummary{}, ErrZeroNightStay
	}

	accommodation := int64(nights) * draft.Location.PricePerNight

	var restaurant int64
	addons := make([]domain.CartLine, len(lines))
	copy(addons, lines)
	for _, l := range addons {
		restaurant += l.LineTotal()
	}

	return domain.BookingSummary{
		Location:           draft.Location.Name,
		CheckIn:            *draft.CheckIn,
		CheckOut:           *draft.CheckOut,
		CheckInTime:        draft.CheckInTime,
		CheckOutTime:       draft.CheckOutTime,
		Nights:             nights,
		PricePerNight:      draft.Location.PricePerNight,
		AccommodationTotal: accommodation,
		RestaurantTotal:    restaurant,
		Total:              accommodation + restaurant,
		Addons:             addons,
	}, nil
}
