package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is a bookable stay sourced from the catalog. It is never mutated
// by the booking flow; selecting one copies it into the draft.
type Location struct {
	Name          string   `json:"name"`
	PricePerNight int64    `json:"price_per_night"`
	Available     bool     `json:"available"`
	Facilities    []string `json:"facilities"`
	Image         string   `json:"image"`
}

// TimeOfDay is a fixed check-in/check-out time option, e.g. "14:00".
type TimeOfDay string

const (
	DefaultCheckInTime  TimeOfDay = "14:00"
	DefaultCheckOutTime TimeOfDay = "11:00"
)

var (
	CheckInTimes  = []TimeOfDay{"12:00", "13:00", "14:00", "15:00", "16:00"}
	CheckOutTimes = []TimeOfDay{"09:00", "10:00", "11:00", "12:00"}
)

// ValidCheckInTime reports whether t is one of the offered check-in slots.
func ValidCheckInTime(t TimeOfDay) bool { return containsTime(CheckInTimes, t) }

// ValidCheckOutTime reports whether t is one of the offered check-out slots.
func ValidCheckOutTime(t TimeOfDay) bool { return containsTime(CheckOutTimes, t) }

func containsTime(opts []TimeOfDay, t TimeOfDay) bool {
	for _, o := range opts {
		if o == t {
			return true
		}
	}
	return false
}

// BookingDraft accumulates the wizard selections. CheckOut >= CheckIn holds
// once both dates are set; the wizard clears a check-out that a later
// check-in change would invalidate.
type BookingDraft struct {
	Location     *Location
	CheckIn      *Date
	CheckOut     *Date
	CheckInTime  TimeOfDay
	CheckOutTime TimeOfDay
}

// Complete reports whether every wizard step has been satisfied.
func (d BookingDraft) Complete() bool {
	return d.Location != nil && d.CheckIn != nil && d.CheckOut != nil
}

// CartLine is one named, priced, quantified restaurant add-on. Name is the
// cart's merge key; Quantity is always >= 1.
type CartLine struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

func (l CartLine) LineTotal() int64 { return l.Price * int64(l.Quantity) }

// MenuItem is a static restaurant catalog entry, independent of cart state.
type MenuItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
}

// BookingSummary is the derived, read-only invoice produced once at the
// dine -> confirm transition.
type BookingSummary struct {
	BookingID          string     `json:"booking_id"`
	Location           string     `json:"location"`
	CheckIn            Date       `json:"check_in_date"`
	CheckOut           Date       `json:"check_out_date"`
	CheckInTime        TimeOfDay  `json:"check_in_time"`
	CheckOutTime       TimeOfDay  `json:"check_out_time"`
	Nights             int        `json:"nights"`
	PricePerNight      int64      `json:"price_per_night"`
	AccommodationTotal int64      `json:"accommodation_total"`
	RestaurantTotal    int64      `json:"restaurant_total"`
	Total              int64      `json:"total"`
	Addons             []CartLine `json:"restaurant_addons"`
}

// BookingRequest is the payload the booking submitter persists.
type BookingRequest struct {
	GuestName    string     `json:"guest_name"`
	Email        string     `json:"email"`
	Location     string     `json:"location"`
	CheckIn      Date       `json:"check_in_date"`
	CheckOut     Date       `json:"check_out_date"`
	CheckInTime  TimeOfDay  `json:"check_in_time"`
	CheckOutTime TimeOfDay  `json:"check_out_time"`
	Addons       []CartLine `json:"restaurant_addons"`
}

// EmailRequest is the confirmation-email payload.
type EmailRequest struct {
	BookingID    string     `json:"booking_id"`
	GuestName    string     `json:"guest_name"`
	Email        string     `json:"email"`
	Location     string     `json:"location"`
	CheckIn      Date       `json:"check_in_date"`
	CheckOut     Date       `json:"check_out_date"`
	CheckInTime  TimeOfDay  `json:"check_in_time"`
	CheckOutTime TimeOfDay  `json:"check_out_time"`
	Addons       []CartLine `json:"restaurant_addons"`
	TotalAmount  int64      `json:"total_amount"`
}

// Booking is the persisted record created by the booking submitter.
type Booking struct {
	ID           uuid.UUID
	GuestName    string
	Email        string
	Location     string
	CheckIn      Date
	CheckOut     Date
	CheckInTime  TimeOfDay
	CheckOutTime TimeOfDay
	Addons       []CartLine
	Nights       int
	TotalAmount  int64
	CreatedAt    time.Time
}
