// Package mail delivers booking confirmation emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/lushstays/staygo/internal/domain"
)

// Sender delivers one email. Implementations must be safe for concurrent
// use.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Config struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
	Enabled  bool
}

// SMTPSender sends plain-text mail through a single SMTP relay. With
// Enabled false it becomes a no-op, which keeps local development working
// without a relay.
type SMTPSender struct {
	cfg Config
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	const op = "mail.SMTPSender.Send"

	if !s.cfg.Enabled {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// ConfirmationMessage renders the subject and plain-text body for a booking
// confirmation.
func ConfirmationMessage(req domain.EmailRequest) (subject, body string) {
	subject = fmt.Sprintf("Booking confirmed: %s (%s)", req.Location, req.BookingID)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", req.GuestName)
	fmt.Fprintf(&b, "Your stay at %s is confirmed.\n\n", req.Location)
	fmt.Fprintf(&b, "Booking ID: %s\n", req.BookingID)
	fmt.Fprintf(&b, "Check-in:  %s at %s\n", req.CheckIn, req.CheckInTime)
	fmt.Fprintf(&b, "Check-out: %s at %s\n", req.CheckOut, req.CheckOutTime)

	if len(req.Addons) > 0 {
		b.WriteString("\nRestaurant add-ons:\n")
		for _, a := range req.Addons {
			fmt.Fprintf(&b, "  %s x %d = %d\n", a.Name, a.Quantity, a.LineTotal())
		}
	}

	fmt.Fprintf(&b, "\nTotal amount: %d\n", req.TotalAmount)
	b.WriteString("\nWe look forward to hosting you.\n")

	return subject, b.String()
}
