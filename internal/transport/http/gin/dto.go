package httpgin

import (
	"github.com/lushstays/staygo/internal/domain"
	"github.com/lushstays/staygo/internal/flow"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// --- public API payloads ---

type AddonInput struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type BookRequest struct {
	GuestName    string       `json:"guest_name" binding:"required"`
	Email        string       `json:"email" binding:"required,email"`
	Location     string       `json:"location" binding:"required"`
	CheckInDate  string       `json:"check_in_date" binding:"required"`
	CheckOutDate string       `json:"check_out_date" binding:"required"`
	CheckInTime  string       `json:"check_in_time"`
	CheckOutTime string       `json:"check_out_time"`
	Addons       []AddonInput `json:"restaurant_addons" binding:"omitempty,dive"`
}

type BookResponse struct {
	BookingID string `json:"booking_id"`
}

type SendConfirmationRequest struct {
	BookingID    string       `json:"booking_id" binding:"required"`
	GuestName    string       `json:"guest_name" binding:"required"`
	Email        string       `json:"email" binding:"required,email"`
	Location     string       `json:"location" binding:"required"`
	CheckInDate  string       `json:"check_in_date" binding:"required"`
	CheckOutDate string       `json:"check_out_date" binding:"required"`
	CheckInTime  string       `json:"check_in_time"`
	CheckOutTime string       `json:"check_out_time"`
	Addons       []AddonInput `json:"restaurant_addons" binding:"omitempty,dive"`
	TotalAmount  int64        `json:"total_amount"`
}

type SendConfirmationResponse struct {
	Status string `json:"status"`
}

type MenuResponse struct {
	Categories []string          `json:"categories"`
	Items      []domain.MenuItem `json:"items"`
}

type BookingResponse struct {
	BookingID    string            `json:"booking_id"`
	GuestName    string            `json:"guest_name"`
	Email        string            `json:"email"`
	Location     string            `json:"location"`
	CheckInDate  string            `json:"check_in_date"`
	CheckOutDate string            `json:"check_out_date"`
	CheckInTime  string            `json:"check_in_time"`
	CheckOutTime string            `json:"check_out_time"`
	Addons       []domain.CartLine `json:"restaurant_addons"`
	Nights       int               `json:"nights"`
	TotalAmount  int64             `json:"total_amount"`
	CreatedAt    string            `json:"created_at"`
}

// --- session flow payloads ---

type SelectLocationRequest struct {
	Name string `json:"name" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SetTimesRequest struct {
	CheckInTime  string `json:"check_in_time" binding:"required"`
	CheckOutTime string `json:"check_out_time" binding:"required"`
}

type AddCartItemRequest struct {
	Name string `json:"name" binding:"required"`
}

type CheckoutRequest struct {
	GuestName string `json:"guest_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type SendEmailRequest struct {
	GuestName string `json:"guest_name"`
	Email     string `json:"email" binding:"omitempty,email"`
}

type DraftResponse struct {
	Location     *domain.Location `json:"location"`
	CheckInDate  *string          `json:"check_in_date"`
	CheckOutDate *string          `json:"check_out_date"`
	CheckInTime  string           `json:"check_in_time"`
	CheckOutTime string           `json:"check_out_time"`
}

type SessionResponse struct {
	SessionID  string                 `json:"session_id"`
	Phase      string                 `json:"phase"`
	Step       int                    `json:"step"`
	StepName   string                 `json:"step_name"`
	CanAdvance bool                   `json:"can_advance"`
	Draft      DraftResponse          `json:"draft"`
	CartLines  []domain.CartLine      `json:"cart_lines"`
	CartTotal  int64                  `json:"cart_total"`
	Summary    *domain.BookingSummary `json:"summary,omitempty"`
	SendState  string                 `json:"send_state"`
}

type CalendarDayResponse struct {
	Date       *string `json:"date"`
	Selectable bool    `json:"selectable"`
	Selected   bool    `json:"selected"`
}

type CalendarResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

func toSessionResponse(snap flow.Snapshot) SessionResponse {
	resp := SessionResponse{
		SessionID:  snap.ID.String(),
		Phase:      string(snap.Phase),
		Step:       int(snap.Step),
		StepName:   snap.Step.String(),
		CanAdvance: snap.CanAdvance,
		CartLines:  snap.CartLines,
		CartTotal:  snap.CartTotal,
		Summary:    snap.Summary,
		SendState:  string(snap.SendState),
	}
	if resp.CartLines == nil {
		resp.CartLines = []domain.CartLine{}
	}

	resp.Draft = DraftResponse{
		Location:     snap.Draft.Location,
		CheckInTime:  string(snap.Draft.CheckInTime),
		CheckOutTime: string(snap.Draft.CheckOutTime),
	}
	if snap.Draft.CheckIn != nil {
		s := snap.Draft.CheckIn.String()
		resp.Draft.CheckInDate = &s
	}
	if snap.Draft.CheckOut != nil {
		s := snap.Draft.CheckOut.String()
		resp.Draft.CheckOutDate = &s
	}

	return resp
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	addons := b.Addons
	if addons == nil {
		addons = []domain.CartLine{}
	}

	return BookingResponse{
		BookingID:    b.ID.String(),
		GuestName:    b.GuestName,
		Email:        b.Email,
		Location:     b.Location,
		CheckInDate:  b.CheckIn.String(),
		CheckOutDate: b.CheckOut.String(),
		CheckInTime:  string(b.CheckInTime),
		CheckOutTime: string(b.CheckOutTime),
		Addons:       addons,
		Nights:       b.Nights,
		TotalAmount:  b.TotalAmount,
		CreatedAt:    b.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toCartLines(addons []AddonInput) []domain.CartLine {
	if len(addons) == 0 {
		return nil
	}
	lines := make([]domain.CartLine, 0, len(addons))
	for _, a := range addons {
		lines = append(lines, domain.CartLine{
			Name:     a.Name,
			Price:    a.Price,
			Quantity: a.Quantity,
		})
	}
	return lines
}
