package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lushstays/staygo/internal/cart"
	"github.com/lushstays/staygo/internal/domain"
	"github.com/lushstays/staygo/internal/pricing"
	"github.com/lushstays/staygo/internal/wizard"
)

// MockSubmitter is a func-field mock of the Submitter collaborator.
type MockSubmitter struct {
	CreateBookingFunc         func(ctx context.Context, req domain.BookingRequest) (uuid.UUID, error)
	SendConfirmationEmailFunc func(ctx context.Context, req domain.EmailRequest) error

	createCalls []domain.BookingRequest
	emailCalls  []domain.EmailRequest
}

func (m *MockSubmitter) CreateBooking(ctx context.Context, req domain.BookingRequest) (uuid.UUID, error) {
	m.createCalls = append(m.createCalls, req)
	if m.CreateBookingFunc != nil {
		return m.CreateBookingFunc(ctx, req)
	}
	return uuid.New(), nil
}

func (m *MockSubmitter) SendConfirmationEmail(ctx context.Context, req domain.EmailRequest) error {
	m.emailCalls = append(m.emailCalls, req)
	if m.SendConfirmationEmailFunc != nil {
		return m.SendConfirmationEmailFunc(ctx, req)
	}
	return nil
}

func newTestSession(sub Submitter) *Session {
	return NewSession(sub, cart.DefaultMenu(), Config{
		Pricing: pricing.Config{AllowZeroNights: true},
	})
}

// runWizard walks the session to the dine phase.
func runWizard(t *testing.T, s *Session, nights int) {
	t.Helper()
	base := domain.Today().AddDays(10)

	require.NoError(t, s.SelectLocation(domain.Location{
		Name: "Palm Cove", PricePerNight: 5000, Available: true,
	}))
	require.NoError(t, s.Advance())
	require.NoError(t, s.SelectDate(wizard.CheckIn, base))
	require.NoError(t, s.SelectDate(wizard.CheckOut, base.AddDays(nights)))
	require.NoError(t, s.Advance())
	require.NoError(t, s.Advance())
}

func TestWizardCompletionEntersDine(t *testing.T) {
	s := newTestSession(&MockSubmitter{})
	assert.Equal(t, PhaseBook, s.Snapshot().Phase)

	runWizard(t, s, 3)
	assert.Equal(t, PhaseDine, s.Snapshot().Phase)
}

func TestDraftFrozenAfterDine(t *testing.T) {
	s := newTestSession(&MockSubmitter{})
	runWizard(t, s, 3)

	err := s.SelectLocation(domain.Location{Name: "Other"})
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.ErrorIs(t, s.SelectDate(wizard.CheckIn, domain.Today().AddDays(20)), ErrWrongPhase)
	assert.ErrorIs(t, s.Advance(), ErrWrongPhase)
	assert.Equal(t, "Palm Cove", s.Snapshot().Draft.Location.Name)
}

func TestCartMutableOnlyDuringDine(t *testing.T) {
	s := newTestSession(&MockSubmitter{})

	assert.ErrorIs(t, s.AddItem("Smoked Paneer Tikka"), ErrWrongPhase)

	runWizard(t, s, 2)
	require.NoError(t, s.AddItem("Smoked Paneer Tikka"))
	require.NoError(t, s.AddItem("Smoked Paneer Tikka"))
	require.NoError(t, s.RemoveItem("missing")) // no-op, no error

	snap := s.Snapshot()
	require.Len(t, snap.CartLines, 1)
	assert.Equal(t, 2, snap.CartLines[0].Quantity)
	assert.Equal(t, int64(640), snap.CartTotal)
}

func TestAddUnknownMenuItem(t *testing.T) {
	s := newTestSession(&MockSubmitter{})
	runWizard(t, s, 1)
	assert.ErrorIs(t, s.AddItem("Unicorn Steak"), ErrUnknownMenuItem)
}

func TestCheckoutSuccess(t *testing.T) {
	bookingID := uuid.New()
	sub := &MockSubmitter{
		CreateBookingFunc: func(ctx context.Context, req domain.BookingRequest) (uuid.UUID, error) {
			return bookingID, nil
		},
	}
	s := newTestSession(sub)
	runWizard(t, s, 3)
	require.NoError(t, s.AddItem("Tomato Basil Bruschetta"))

	sum, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, bookingID.String(), sum.BookingID)
	assert.Equal(t, 3, sum.Nights)
	assert.Equal(t, int64(15000), sum.AccommodationTotal)
	assert.Equal(t, int64(180), sum.RestaurantTotal)
	assert.Equal(t, int64(15180), sum.Total)
	assert.Equal(t, PhaseConfirm, s.Snapshot().Phase)

	require.Len(t, sub.createCalls, 1)
	req := sub.createCalls[0]
	assert.Equal(t, "Ada", req.GuestName)
	assert.Equal(t, "Palm Cove", req.Location)
	require.Len(t, req.Addons, 1)

	// cart is frozen in confirm
	assert.ErrorIs(t, s.AddItem("Tomato Basil Bruschetta"), ErrWrongPhase)
}

func TestCheckoutFailureStaysInDine(t *testing.T) {
	sub := &MockSubmitter{
		CreateBookingFunc: func(ctx context.Context, req domain.BookingRequest) (uuid.UUID, error) {
			return uuid.Nil, errors.New("backend down")
		},
	}
	s := newTestSession(sub)
	runWizard(t, s, 2)
	require.NoError(t, s.AddItem("Herb Grilled Chicken"))

	_, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	require.ErrorIs(t, err, ErrSubmissionFailed)

	snap := s.Snapshot()
	assert.Equal(t, PhaseDine, snap.Phase, "a failed submission must not reach confirm")
	assert.Len(t, snap.CartLines, 1, "cart unchanged")
	assert.Nil(t, snap.Summary)

	// busy state cleared: the user may retry
	sub.CreateBookingFunc = nil
	_, err = s.Checkout(context.Background(), "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, PhaseConfirm, s.Snapshot().Phase)
}

func TestCheckoutRequiresGuestDetails(t *testing.T) {
	s := newTestSession(&MockSubmitter{})
	runWizard(t, s, 1)

	_, err := s.Checkout(context.Background(), "", "ada@example.com")
	assert.ErrorIs(t, err, ErrGuestDetailsMissing)
	_, err = s.Checkout(context.Background(), "Ada", "")
	assert.ErrorIs(t, err, ErrGuestDetailsMissing)
}

func TestCheckoutWrongPhase(t *testing.T) {
	s := newTestSession(&MockSubmitter{})
	_, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestZeroNightPolicyRejectedAtCheckout(t *testing.T) {
	s := NewSession(&MockSubmitter{}, cart.DefaultMenu(), Config{
		Pricing: pricing.Config{AllowZeroNights: false},
	})
	runWizard(t, s, 0)

	_, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	assert.ErrorIs(t, err, pricing.ErrZeroNightStay)
	assert.Equal(t, PhaseDine, s.Snapshot().Phase)
}

func TestSendEmailStates(t *testing.T) {
	sendErr := errors.New("smtp unreachable")
	failing := true
	sub := &MockSubmitter{
		SendConfirmationEmailFunc: func(ctx context.Context, req domain.EmailRequest) error {
			if failing {
				return sendErr
			}
			return nil
		},
	}
	s := newTestSession(sub)
	runWizard(t, s, 2)
	_, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, SendIdle, s.SendStatus())

	// failure returns to idle and is retryable
	err = s.SendEmail(context.Background(), "Ada", "ada@example.com")
	require.ErrorIs(t, err, sendErr)
	assert.Equal(t, SendIdle, s.SendStatus())

	failing = false
	require.NoError(t, s.SendEmail(context.Background(), "", ""))
	assert.Equal(t, SendSent, s.SendStatus())

	require.Len(t, sub.emailCalls, 2)
	last := sub.emailCalls[1]
	assert.Equal(t, "ada@example.com", last.Email, "guest details default to the checkout values")
	assert.Equal(t, int64(10000), last.TotalAmount)
	assert.NotEmpty(t, last.BookingID)

	// email is not part of booking completion
	assert.Len(t, sub.createCalls, 1)
}

func TestSendEmailWrongPhase(t *testing.T) {
	s := newTestSession(&MockSubmitter{})
	assert.ErrorIs(t, s.SendEmail(context.Background(), "Ada", "a@b.c"), ErrWrongPhase)
}

func TestResetDiscardsEverything(t *testing.T) {
	sub := &MockSubmitter{}
	s := newTestSession(sub)
	runWizard(t, s, 3)
	require.NoError(t, s.AddItem("Belgian Chocolate Mousse"))
	first, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, s.Reset())

	snap := s.Snapshot()
	assert.Equal(t, PhaseBook, snap.Phase)
	assert.Equal(t, wizard.StepLocation, snap.Step)
	assert.Nil(t, snap.Draft.Location)
	assert.Empty(t, snap.CartLines)
	assert.Nil(t, snap.Summary)
	assert.Equal(t, SendIdle, snap.SendState)

	// a second full run produces a fresh, unrelated summary
	runWizard(t, s, 1)
	second, err := s.Checkout(context.Background(), "Grace", "grace@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, first.BookingID, second.BookingID)
	assert.Equal(t, 1, second.Nights)
	assert.Empty(t, second.Addons, "no cart leakage from the prior run")
}

func TestResetBlockedDuringSubmission(t *testing.T) {
	bookingID := uuid.New()
	sub := &MockSubmitter{}
	s := newTestSession(sub)

	var resetErr error
	sub.CreateBookingFunc = func(ctx context.Context, req domain.BookingRequest) (uuid.UUID, error) {
		resetErr = s.Reset()
		return bookingID, nil
	}

	runWizard(t, s, 2)
	sum, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, resetErr, ErrSubmissionInFlight)
	snap := s.Snapshot()
	assert.Equal(t, PhaseConfirm, snap.Phase, "the submission outcome wins, not the reset")
	require.NotNil(t, snap.Summary)
	assert.Equal(t, bookingID.String(), sum.BookingID)
}

func TestCartFrozenDuringSubmission(t *testing.T) {
	sub := &MockSubmitter{}
	s := newTestSession(sub)

	var addErr, removeErr error
	sub.CreateBookingFunc = func(ctx context.Context, req domain.BookingRequest) (uuid.UUID, error) {
		addErr = s.AddItem("Tomato Basil Bruschetta")
		removeErr = s.RemoveItem("Smoked Paneer Tikka")
		return uuid.New(), nil
	}

	runWizard(t, s, 2)
	require.NoError(t, s.AddItem("Smoked Paneer Tikka"))

	sum, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, addErr, ErrSubmissionInFlight)
	assert.ErrorIs(t, removeErr, ErrSubmissionInFlight)

	// the cart matches the priced and submitted snapshot line for line
	snap := s.Snapshot()
	require.Len(t, snap.CartLines, 1)
	assert.Equal(t, "Smoked Paneer Tikka", snap.CartLines[0].Name)
	require.Len(t, sum.Addons, 1)
	assert.Equal(t, snap.CartLines, sum.Addons)
}

func TestCheckoutReentryBlockedDuringSubmission(t *testing.T) {
	sub := &MockSubmitter{}
	s := newTestSession(sub)

	var reentryErr error
	sub.CreateBookingFunc = func(ctx context.Context, req domain.BookingRequest) (uuid.UUID, error) {
		_, reentryErr = s.Checkout(ctx, "Ada", "ada@example.com")
		return uuid.New(), nil
	}

	runWizard(t, s, 1)
	_, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, reentryErr, ErrSubmissionInFlight)
	assert.Len(t, sub.createCalls, 1, "the submitter fires exactly once")
}

func TestCartRehydratedWhenReenteringDine(t *testing.T) {
	s := newTestSession(&MockSubmitter{})
	runWizard(t, s, 2)
	require.NoError(t, s.AddItem("Cold Pressed Watermelon"))

	// abandon dine via reset-less re-run is impossible by design; the cart
	// survives within the same run until Reset
	snap := s.Snapshot()
	require.Len(t, snap.CartLines, 1)

	_, err := s.Checkout(context.Background(), "Ada", "ada@example.com")
	require.NoError(t, err)
	sum, ok := s.Summary()
	require.True(t, ok)
	require.Len(t, sum.Addons, 1)
	assert.Equal(t, "Cold Pressed Watermelon", sum.Addons[0].Name)
}

func TestCalendarGrid(t *testing.T) {
	s := newTestSession(&MockSubmitter{})
	year, month, grid := s.CalendarGrid(wizard.CheckIn)

	today := domain.Today()
	assert.Equal(t, today.Year, year)
	assert.Equal(t, today.Month, month)
	require.NotEmpty(t, grid)

	for _, day := range grid {
		if day.Date == nil {
			assert.False(t, day.Selectable)
			continue
		}
		assert.Equal(t, !day.Date.Before(today), day.Selectable)
	}
}
