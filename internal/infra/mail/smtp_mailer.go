// Package mail sends transactional email over SMTP.
package mail

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/errors"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

var bookingTmpl = template.Must(template.New("booking").Parse(`
<h2>Booking Confirmed</h2>
<p>Hi {{.CustomerName}},</p>
<p>Your parcel has been booked. Track it with the number below.</p>
<p><strong>{{.TrackingNumber}}</strong></p>
<p>Pickup: {{.PickupAddress}}<br>Delivery: {{.DeliveryAddress}}</p>
`))

var statusTmpl = template.Must(template.New("status").Parse(`
<h2>Parcel Update</h2>
<p>Hi {{.CustomerName}},</p>
<p>Your parcel <strong>{{.TrackingNumber}}</strong> is now <strong>{{.Status}}</strong>.</p>
`))

var deliveredTmpl = template.Must(template.New("delivered").Parse(`
<h2>Parcel Delivered</h2>
<p>Hi {{.CustomerName}},</p>
<p>Your parcel <strong>{{.TrackingNumber}}</strong> was delivered{{if .DeliveredAt}} at {{.DeliveredAt}}{{end}}.</p>
<p>Thank you for shipping with us.</p>
`))

// smtpMailer implements the Mailer interface over SMTP.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// MailerParams holds dependencies for the mailer, injected by Fx.
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer. When SMTP is not
// configured it returns a nil Mailer and the lifecycle services skip email.
func NewSMTPMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.SMTP
	if cfg == nil {
		params.Logger.Info("SMTP not configured, transactional email disabled")

		return nil, nil
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.From,
		logger: params.Logger,
	}, nil
}

// SendBookingConfirmation emails the customer that their booking was created.
func (m *smtpMailer) SendBookingConfirmation(ctx context.Context, mail service.BookingConfirmationMail) error {
	subject := "Booking confirmed: " + mail.TrackingNumber

	return m.send(ctx, mail.To, subject, bookingTmpl, mail)
}

// SendStatusUpdate emails the customer about a status change.
func (m *smtpMailer) SendStatusUpdate(ctx context.Context, mail service.StatusUpdateMail) error {
	subject := "Parcel " + mail.TrackingNumber + " is " + mail.Status

	return m.send(ctx, mail.To, subject, statusTmpl, mail)
}

// SendDeliveryConfirmation emails the customer that the parcel arrived.
func (m *smtpMailer) SendDeliveryConfirmation(ctx context.Context, mail service.DeliveryConfirmationMail) error {
	subject := "Delivered: " + mail.TrackingNumber

	return m.send(ctx, mail.To, subject, deliveredTmpl, mail)
}

func (m *smtpMailer) send(ctx context.Context, to, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrap(err, "failed to render email body")
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	m.logger.Debug("Email sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}
