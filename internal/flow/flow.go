// Package flow implements the top-level booking phase orchestrator: a
// session-scoped state machine over book -> dine -> confirm that owns the
// wizard, the cart and the computed summary, and drives the booking
// submitter at the dine -> confirm transition.
package flow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lushstays/staygo/internal/cart"
	"github.com/lushstays/staygo/internal/domain"
	"github.com/lushstays/staygo/internal/pricing"
	"github.com/lushstays/staygo/internal/wizard"
)

// Phase is the top-level flow state.
type Phase string

const (
	PhaseBook    Phase = "book"
	PhaseDine    Phase = "dine"
	PhaseConfirm Phase = "confirm"
)

// SendState tracks the confirmation-email control as a single three-state
// value so "sending" and "sent" cannot coexist.
type SendState string

const (
	SendIdle    SendState = "idle"
	SendSending SendState = "sending"
	SendSent    SendState = "sent"
)

// Submitter persists a booking and delivers the confirmation email. The
// orchestrator treats both as external collaborators.
type Submitter interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (uuid.UUID, error)
	SendConfirmationEmail(ctx context.Context, req domain.EmailRequest) error
}

type Config struct {
	Pricing pricing.Config
}

// Session is one booking flow instance. It owns its draft, cart and summary
// exclusively; a mutex serializes user actions, and submissions hold an
// in-flight flag that rejects every other mutation until the submitter
// returns, so a re-click cannot fire twice and a mid-flight reset or cart
// edit cannot diverge from the submitted snapshot.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	phase     Phase
	wizard    *wizard.Wizard
	cart      *cart.Cart
	menu      *cart.Menu
	engine    *pricing.Engine
	submitter Submitter

	draft      *domain.BookingDraft // frozen at book -> dine
	guestName  string
	guestEmail string
	summary    *domain.BookingSummary

	submitting bool
	send       SendState

	lastActive time.Time
}

func NewSession(submitter Submitter, menu *cart.Menu, cfg Config) *Session {
	return &Session{
		id:         uuid.New(),
		phase:      PhaseBook,
		wizard:     wizard.New(),
		cart:       cart.New(),
		menu:       menu,
		engine:     pricing.New(cfg.Pricing),
		submitter:  submitter,
		send:       SendIdle,
		lastActive: time.Now(),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

// LastActive reports when the session last processed an action.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) touch() { s.lastActive = time.Now() }

// --- book phase: wizard delegation ---

// SelectLocation records the location choice. Draft mutations are only
// legal while the flow is in the book phase.
func (s *Session) SelectLocation(loc domain.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != PhaseBook {
		return ErrWrongPhase
	}
	s.wizard.SelectLocation(loc)
	return nil
}

func (s *Session) SelectDate(which wizard.Which, d domain.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != PhaseBook {
		return ErrWrongPhase
	}
	if which == wizard.CheckOut {
		return s.wizard.SelectCheckOut(d)
	}
	return s.wizard.SelectCheckIn(d)
}

func (s *Session) SetTimes(checkIn, checkOut domain.TimeOfDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != PhaseBook {
		return ErrWrongPhase
	}
	return s.wizard.SetTimes(checkIn, checkOut)
}

// Advance moves the wizard forward. When the final step completes, the
// draft freezes and the flow enters the dine phase: a cart left behind by
// an earlier pass through dine is kept (rehydrated), not discarded.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != PhaseBook {
		return ErrWrongPhase
	}

	draft, done := s.wizard.Advance()
	if done {
		frozen := draft
		s.draft = &frozen
		s.phase = PhaseDine
	}
	return nil
}

func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != PhaseBook {
		return ErrWrongPhase
	}
	s.wizard.Back()
	return nil
}

// ShiftMonth moves one calendar's view cursor without touching its value.
func (s *Session) ShiftMonth(which wizard.Which, forward bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != PhaseBook {
		return ErrWrongPhase
	}
	sel := s.wizard.Selector(which)
	if forward {
		sel.NextMonth()
	} else {
		sel.PrevMonth()
	}
	return nil
}

// CalendarDay is one grid slot: nil Date for padding, Selectable for the
// min-date rule, Selected for the bound value.
type CalendarDay struct {
	Date       *domain.Date
	Selectable bool
	Selected   bool
}

// CalendarGrid renders the month in view for one of the date selectors.
func (s *Session) CalendarGrid(which wizard.Which) (int, time.Month, []CalendarDay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.wizard.Selector(which)
	year, month := sel.Cursor()
	value := sel.Value()

	var grid []CalendarDay
	for _, d := range sel.Days() {
		if d == nil {
			grid = append(grid, CalendarDay{})
			continue
		}
		grid = append(grid, CalendarDay{
			Date:       d,
			Selectable: sel.Selectable(*d),
			Selected:   value != nil && value.Equal(*d),
		})
	}
	return year, month, grid
}

// --- dine phase: cart delegation ---

// AddItem adds one unit of a menu item to the cart.
func (s *Session) AddItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != PhaseDine {
		return ErrWrongPhase
	}
	if s.submitting {
		return ErrSubmissionInFlight
	}
	item, ok := s.menu.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMenuItem, name)
	}
	s.cart.Add(item)
	return nil
}

func (s *Session) RemoveItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != PhaseDine {
		return ErrWrongPhase
	}
	if s.submitting {
		return ErrSubmissionInFlight
	}
	s.cart.Remove(name)
	return nil
}

// --- dine -> confirm ---

// Checkout freezes the cart, prices the summary and submits the booking.
// The transition to confirm happens only after the submitter succeeds; on
// failure the phase, draft and cart are untouched and the busy state
// clears, so the user can retry. The summary is computed exactly once.
func (s *Session) Checkout(ctx context.Context, guestName, email string) (domain.BookingSummary, error) {
	const op = "flow.Checkout"

	s.mu.Lock()
	if s.phase != PhaseDine {
		s.mu.Unlock()
		return domain.BookingSummary{}, ErrWrongPhase
	}
	if s.submitting {
		s.mu.Unlock()
		return domain.BookingSummary{}, ErrSubmissionInFlight
	}
	if guestName == "" || email == "" {
		s.mu.Unlock()
		return domain.BookingSummary{}, ErrGuestDetailsMissing
	}

	draft := *s.draft
	lines := s.cart.Lines()

	quote, err := s.engine.Quote(draft, lines)
	if err != nil {
		s.mu.Unlock()
		return domain.BookingSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	s.submitting = true
	s.touch()
	s.mu.Unlock()

	bookingID, err := s.submitter.CreateBooking(ctx, domain.BookingRequest{
		GuestName:    guestName,
		Email:        email,
		Location:     draft.Location.Name,
		CheckIn:      *draft.CheckIn,
		CheckOut:     *draft.CheckOut,
		CheckInTime:  draft.CheckInTime,
		CheckOutTime: draft.CheckOutTime,
		Addons:       lines,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		return domain.BookingSummary{}, fmt.Errorf("%s: %w: %w", op, ErrSubmissionFailed, err)
	}

	// the in-flight flag blocks every other mutation, so the phase must
	// still be dine here
	if s.phase != PhaseDine {
		return domain.BookingSummary{}, ErrWrongPhase
	}

	quote.BookingID = bookingID.String()
	s.summary = &quote
	s.guestName = guestName
	s.guestEmail = email
	s.phase = PhaseConfirm
	s.send = SendIdle

	return quote, nil
}

// --- confirm phase ---

// Summary returns the frozen invoice, if the flow has reached confirm.
func (s *Session) Summary() (domain.BookingSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summary == nil {
		return domain.BookingSummary{}, false
	}
	return *s.summary, true
}

func (s *Session) SendStatus() SendState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.send
}

// SendEmail delivers the confirmation email for the completed booking. A
// failure returns the state to idle so the user can retry without
// re-submitting the booking itself.
func (s *Session) SendEmail(ctx context.Context, guestName, email string) error {
	const op = "flow.SendEmail"

	s.mu.Lock()
	if s.phase != PhaseConfirm || s.summary == nil {
		s.mu.Unlock()
		return ErrWrongPhase
	}
	if s.send == SendSending {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if guestName == "" {
		guestName = s.guestName
	}
	if email == "" {
		email = s.guestEmail
	}
	if guestName == "" || email == "" {
		s.mu.Unlock()
		return ErrGuestDetailsMissing
	}

	sum := *s.summary
	s.send = SendSending
	s.touch()
	s.mu.Unlock()

	err := s.submitter.SendConfirmationEmail(ctx, domain.EmailRequest{
		BookingID:    sum.BookingID,
		GuestName:    guestName,
		Email:        email,
		Location:     sum.Location,
		CheckIn:      sum.CheckIn,
		CheckOut:     sum.CheckOut,
		CheckInTime:  sum.CheckInTime,
		CheckOutTime: sum.CheckOutTime,
		Addons:       sum.Addons,
		TotalAmount:  sum.Total,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.send = SendIdle
		return fmt.Errorf("%s: %w", op, err)
	}
	s.send = SendSent
	return nil
}

// Reset returns the flow to a fresh book phase. Draft, cart, summary and
// send state are all discarded; nothing carries over into the next run. An
// outstanding submission must finish first.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.submitting {
		return ErrSubmissionInFlight
	}

	s.phase = PhaseBook
	s.wizard = wizard.New()
	s.cart.Clear()
	s.draft = nil
	s.summary = nil
	s.guestName = ""
	s.guestEmail = ""
	s.send = SendIdle
	return nil
}

// --- snapshot for transports ---

// Snapshot is a consistent read of the whole session for rendering.
type Snapshot struct {
	ID         uuid.UUID
	Phase      Phase
	Step       wizard.Step
	Draft      domain.BookingDraft
	CanAdvance bool
	CartLines  []domain.CartLine
	CartTotal  int64
	Summary    *domain.BookingSummary
	SendState  SendState
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:         s.id,
		Phase:      s.phase,
		Step:       s.wizard.Step(),
		Draft:      s.wizard.Draft(),
		CanAdvance: s.wizard.CanAdvance(),
		CartLines:  s.cart.Lines(),
		CartTotal:  s.cart.Total(),
		SendState:  s.send,
	}
	if s.draft != nil {
		snap.Draft = *s.draft
	}
	if s.summary != nil {
		sum := *s.summary
		snap.Summary = &sum
	}
	return snap
}
