package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lushstays/staygo/internal/domain"
	"github.com/lushstays/staygo/internal/mail"
	"github.com/lushstays/staygo/internal/pricing"
	"github.com/lushstays/staygo/internal/repository"
	postgresrepo "github.com/lushstays/staygo/internal/repository/postgres"
	redisrepo "github.com/lushstays/staygo/internal/repository/redis"
	"github.com/lushstays/staygo/internal/uow"
)

// Service is the booking submitter: it persists bookings and delivers
// confirmation emails. It implements flow.Submitter.
type Service struct {
	store  *postgresrepo.Store
	pubsub *redisrepo.BookingsPubSub
	mailer mail.Sender
	engine *pricing.Engine
	uow    *uow.UoW
}

func New(
	store *postgresrepo.Store,
	pubsub *redisrepo.BookingsPubSub,
	mailer mail.Sender,
	engine *pricing.Engine,
) *Service {
	return &Service{
		store:  store,
		pubsub: pubsub,
		mailer: mailer,
		engine: engine,
		uow:    uow.NewUoW(store),
	}
}

// CreateBooking validates the request against the catalog, prices the stay
// server-side and persists the booking with its add-on lines in one
// transaction. The booking id is generated here; a booking_created event is
// published only after the commit.
//
// Returns:
//   - uuid.UUID: the id of the created booking.
//   - error: booking.ErrLocationUnknown for a name not in the catalog.
//   - error: booking.ErrLocationClosed for a sold-out location.
//   - error: booking.ErrInvalidStay / booking.ErrZeroNightStay for a bad
//     date range.
func (s *Service) CreateBooking(ctx context.Context, req domain.BookingRequest) (uuid.UUID, error) {
	const op = "service.booking.CreateBooking"

	if req.GuestName == "" || req.Email == "" {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrGuestRequired)
	}

	loc, err := s.store.Locations().GetByName(ctx, req.Location)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrLocationUnknown)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if !loc.Available {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrLocationClosed)
	}

	checkIn, checkOut := req.CheckIn, req.CheckOut
	draft := domain.BookingDraft{
		Location:     loc,
		CheckIn:      &checkIn,
		CheckOut:     &checkOut,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
	}

	quote, err := s.engine.Quote(draft, req.Addons)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidRange):
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidStay)
		case errors.Is(err, pricing.ErrZeroNightStay):
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrZeroNightStay)
		default:
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	b := &domain.Booking{
		ID:           uuid.New(),
		GuestName:    req.GuestName,
		Email:        req.Email,
		Location:     loc.Name,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Addons:       req.Addons,
		Nights:       quote.Nights,
		TotalAmount:  quote.Total,
	}

	err = s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if err := s.store.Bookings().With(tx).Create(ctx, b); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.pubsub.PublishBookingCreated(ctx, b.ID.String(), b.Location, b.TotalAmount)
		})

		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, err)
	}

	return b.ID, nil
}

// GetBooking retrieves a stored booking with its add-on lines.
//
// Returns:
//   - *domain.Booking: the booking, or nil when not found.
//   - error: booking.ErrBookingNotFound when the id is unknown.
func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	const op = "service.booking.GetBooking"

	b, err := s.store.Bookings().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrBookingNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// SendConfirmationEmail renders and delivers the confirmation for a
// completed booking. Failure here never un-books the stay; callers retry
// the email alone.
func (s *Service) SendConfirmationEmail(ctx context.Context, req domain.EmailRequest) error {
	const op = "service.booking.SendConfirmationEmail"

	if req.GuestName == "" || req.Email == "" {
		return fmt.Errorf("%s: %w", op, ErrGuestRequired)
	}

	subject, body := mail.ConfirmationMessage(req)

	if err := s.mailer.Send(ctx, req.Email, subject, body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
