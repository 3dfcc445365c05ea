package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lushstays/staygo/internal/domain"
)

func draftFor(price int64, in, out domain.Date) domain.BookingDraft {
	return domain.BookingDraft{
		Location:     &domain.Location{Name: "Palm Cove", PricePerNight: price},
		CheckIn:      &in,
		CheckOut:     &out,
		CheckInTime:  domain.DefaultCheckInTime,
		CheckOutTime: domain.DefaultCheckOutTime,
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Date
		out  domain.Date
		want int
	}{
		{"three nights", domain.NewDate(2024, time.March, 1), domain.NewDate(2024, time.March, 4), 3},
		{"same day", domain.NewDate(2024, time.March, 1), domain.NewDate(2024, time.March, 1), 0},
		{"one night", domain.NewDate(2024, time.March, 1), domain.NewDate(2024, time.March, 2), 1},
		{"across month boundary", domain.NewDate(2024, time.February, 28), domain.NewDate(2024, time.March, 2), 3},
		{"across year boundary", domain.NewDate(2024, time.December, 30), domain.NewDate(2025, time.January, 2), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.in, tt.out))
		})
	}
}

func TestQuoteScenario(t *testing.T) {
	// 5000/night, 2024-03-01 -> 2024-03-04
	e := New(Config{AllowZeroNights: true})
	draft := draftFor(5000,
		domain.NewDate(2024, time.March, 1),
		domain.NewDate(2024, time.March, 4),
	)

	s, err := e.Quote(draft, []domain.CartLine{
		{Name: "A", Price: 100, Quantity: 2},
		{Name: "B", Price: 50, Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Nights)
	assert.Equal(t, int64(5000), s.PricePerNight)
	assert.Equal(t, int64(15000), s.AccommodationTotal)
	assert.Equal(t, int64(250), s.RestaurantTotal)
	assert.Equal(t, int64(15250), s.Total)
	assert.Equal(t, "Palm Cove", s.Location)
	assert.Empty(t, s.BookingID, "the submitter assigns the booking id")
}

func TestQuoteEmptyCart(t *testing.T) {
	e := New(Config{AllowZeroNights: true})
	draft := draftFor(2000,
		domain.NewDate(2024, time.June, 10),
		domain.NewDate(2024, time.June, 12),
	)

	s, err := e.Quote(draft, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.RestaurantTotal)
	assert.Equal(t, s.AccommodationTotal, s.Total)
}

func TestQuoteAccommodationScalesWithNights(t *testing.T) {
	e := New(Config{AllowZeroNights: true})
	in := domain.NewDate(2024, time.March, 1)

	for nights := 0; nights <= 14; nights++ {
		s, err := e.Quote(draftFor(700, in, in.AddDays(nights)), nil)
		require.NoError(t, err)
		assert.Equal(t, nights, s.Nights)
		assert.Equal(t, int64(nights)*700, s.AccommodationTotal)
	}
}

func TestQuoteZeroNightPolicy(t *testing.T) {
	in := domain.NewDate(2024, time.March, 1)
	draft := draftFor(5000, in, in)

	s, err := New(Config{AllowZeroNights: true}).Quote(draft, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Nights)
	assert.Equal(t, int64(0), s.AccommodationTotal)

	_, err = New(Config{}).Quote(draft, nil)
	assert.ErrorIs(t, err, ErrZeroNightStay)
}

func TestQuoteInvalidRange(t *testing.T) {
	e := New(Config{AllowZeroNights: true})
	draft := draftFor(5000,
		domain.NewDate(2024, time.March, 4),
		domain.NewDate(2024, time.March, 1),
	)
	_, err := e.Quote(draft, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestQuoteIncompleteDraft(t *testing.T) {
	e := New(Config{AllowZeroNights: true})
	in := domain.NewDate(2024, time.March, 1)

	_, err := e.Quote(domain.BookingDraft{CheckIn: &in, CheckOut: &in}, nil)
	assert.ErrorIs(t, err, ErrIncompleteDraft)

	_, err = e.Quote(domain.BookingDraft{
		Location: &domain.Location{Name: "X", PricePerNight: 1},
		CheckIn:  &in,
	}, nil)
	assert.ErrorIs(t, err, ErrIncompleteDraft)
}

func TestDateWireFormRoundTrip(t *testing.T) {
	// Dates cross the submitter boundary as plain YYYY-MM-DD strings.
	d := domain.NewDate(2024, time.March, 4)
	parsed, err := domain.ParseDate(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)
	assert.Equal(t, "2024-03-04", d.String())
}
