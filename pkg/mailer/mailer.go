// pkg/mailer/mailer.go
package mailer

import (
	"context"
	"errors"
	"log"

	"github.com/resend/resend-go/v2"
)

// Mailer sends transactional mail. Delivery is best effort: callers that do
// not care about the outcome should use SendBestEffort, which never returns
// an error.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, html string) error
	SendBestEffort(ctx context.Context, to []string, subject, html string)
}

type resendMailer struct {
	client *resend.Client
	from   string
}

// New creates a Mailer backed by the Resend API. An empty API key yields a
// mailer that logs and drops every message, so development environments work
// without credentials.
func New(apiKey, from string) Mailer {
	if apiKey == "" {
		return &noopMailer{from: from}
	}
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *resendMailer) Send(ctx context.Context, to []string, subject, html string) error {
	if len(to) == 0 {
		return errors.New("mailer: no recipients")
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      to,
		Subject: subject,
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}
	log.Printf("mailer: sent %q to %v (id=%s)", subject, to, sent.Id)
	return nil
}

func (m *resendMailer) SendBestEffort(ctx context.Context, to []string, subject, html string) {
	if err := m.Send(ctx, to, subject, html); err != nil {
		log.Printf("mailer: best-effort send of %q to %v failed: %v", subject, to, err)
	}
}

type noopMailer struct {
	from string
}

func (m *noopMailer) Send(ctx context.Context, to []string, subject, html string) error {
	log.Printf("mailer: no API key configured, dropping %q to %v", subject, to)
	return nil
}

func (m *noopMailer) SendBestEffort(ctx context.Context, to []string, subject, html string) {
	_ = m.Send(ctx, to, subject, html)
}
