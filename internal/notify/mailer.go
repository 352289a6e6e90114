// Package notify delivers out-of-band mail to payers. Delivery is always
// best-effort: callers log failures and never surface them as request errors.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/ndhoang/tuipay/internal/payment"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

// Mailer sends the one-time-code and receipt emails over SMTP.
type Mailer struct {
	client *mail.Client
	cfg    SMTPConfig
}

func NewMailer(cfg SMTPConfig) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}

	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return &Mailer{client: client, cfg: cfg}, nil
}

func (m *Mailer) SendChallenge(ctx context.Context, email payment.ChallengeEmail) error {
	subject := fmt.Sprintf("Payment verification code - %s", email.Code)

	data := challengeData{
		Name:             email.Name,
		Code:             email.Code,
		Semester:         email.Bill.Semester,
		AcademicYear:     email.Bill.AcademicYear,
		Amount:           email.Bill.Amount,
		ExpiresInMinutes: int(math.Round(email.ExpiresIn.Minutes())),
	}

	return m.send(ctx, email.To, subject, challengeTemplate, data)
}

func (m *Mailer) SendReceipt(ctx context.Context, email payment.ReceiptEmail) error {
	subject := fmt.Sprintf("Payment receipt %s", email.ReceiptRef)

	data := receiptData{
		Name:         email.Name,
		ReceiptRef:   email.ReceiptRef,
		Semester:     email.Bill.Semester,
		AcademicYear: email.Bill.AcademicYear,
		Amount:       email.Bill.Amount,
		NewBalance:   email.NewBalance,
		PaidAt:       email.PaidAt.Format(time.DateTime),
	}

	return m.send(ctx, email.To, subject, receiptTemplate, data)
}

func (m *Mailer) send(ctx context.Context, to, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering email body: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
