package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"ticketing-service/config"
	"ticketing-service/internal/module/notification/models/request"
	"ticketing-service/internal/module/notification/repositories"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	qrcode "github.com/skip2/go-qrcode"
	"gopkg.in/gomail.v2"
)

type usecase struct {
	repo   repositories.Repositories
	log    log.Logger
	dialer *gomail.Dialer
	sender string
}

type Usecase interface {
	SendTicket(ctx context.Context, payload *request.SendTicket) error
}

func New(repo repositories.Repositories, log log.Logger, cfg *config.MailerConfig) Usecase {
	return &usecase{
		repo:   repo,
		log:    log,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		sender: cfg.Sender,
	}
}

// SendTicket renders the e-ticket email with the redemption QR
// embedded and delivers it over SMTP. Reconciliation already
// committed by the time this runs; a failure here only delays the
// email, never the ticket.
func (u *usecase) SendTicket(ctx context.Context, payload *request.SendTicket) error {
	event, err := u.repo.FindEventByID(ctx, payload.EventID)
	if err != nil {
		return err
	}

	qrPNG, err := qrcode.Encode(payload.QRToken, qrcode.Medium, 300)
	if err != nil {
		return errors.InternalServerError("error render ticket qr code")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", u.sender)
	msg.SetHeader("To", payload.EmailRecipient)
	msg.SetHeader("Subject", fmt.Sprintf("Your ticket for %s", event.Title))
	msg.SetBody("text/html", renderTicketBody(event.Title, event.Location, event.Datetime.Format("Monday, 2 January 2006"), payload))
	msg.Embed("ticket-qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(qrPNG)
		return err
	}))

	if err := u.dialer.DialAndSend(msg); err != nil {
		u.log.Error(ctx, "error send ticket email", err)
		return errors.InternalServerError("error send ticket email")
	}

	u.log.Info(ctx, "ticket email sent", payload.OrderID, payload.EmailRecipient)
	return nil
}

func renderTicketBody(title, location, schedule string, payload *request.SendTicket) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "<h1>E-Ticket &amp; Payment Receipt</h1>")
	fmt.Fprintf(&b, "<p>Thank you %s, your payment has been received.</p>", payload.ParticipantName)
	fmt.Fprintf(&b, "<h2>%s</h2><p>%s at %s</p>", title, schedule, location)
	fmt.Fprintf(&b, `<p>Scan this code at check-in:</p><img src="cid:ticket-qr.png" alt="ticket qr"/>`)
	fmt.Fprintf(&b, "<p>Token: %s</p>", payload.QRToken)
	fmt.Fprintf(&b, "<table><tr><td>Ticket</td><td>%d</td></tr><tr><td>Admin fee</td><td>%d</td></tr><tr><td>Total</td><td>%d</td></tr></table>", payload.Price, payload.AdminFee, payload.TotalAmount)
	fmt.Fprintf(&b, "<p>Paid via %s (%s) at %s</p>", payload.Channel, payload.GatewayTransactionID, payload.PaidAt)
	return b.String()
}
