package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SendTimeout bounds a single send attempt. Email delivery is never on a
// workflow's critical path; a timed-out send is treated as failed and logged.
const SendTimeout = 15 * time.Second

// Mailer sends a transactional HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// SMTPMailer delivers mail over SMTP. The zero Auth is fine for relays like
// Mailpit; production config supplies PLAIN credentials.
type SMTPMailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger *zap.Logger

	// sendFn is swapped out in tests.
	sendFn func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer builds a mailer for the given host/port. user may be empty
// for unauthenticated relays.
func NewSMTPMailer(host, port, from, user, password string, logger *zap.Logger) *SMTPMailer {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "UrbanHelp <no-reply@urbanhelp.local>"
	}
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	return &SMTPMailer{
		addr:   fmt.Sprintf("%s:%s", host, port),
		from:   from,
		auth:   auth,
		logger: logger,
		sendFn: smtp.SendMail,
	}
}

// Send verifies the transport is reachable, then races the delivery against
// the send timeout. The error is returned for the caller to log; callers in
// the booking workflow must never fail their operation on it.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string) error {
	if to == "" || subject == "" || html == "" {
		return fmt.Errorf("missing required email parameters")
	}

	ctx, cancel := context.WithTimeout(ctx, SendTimeout)
	defer cancel()

	// Verify connection configuration before committing to a send.
	conn, err := net.DialTimeout("tcp", m.addr, 5*time.Second)
	if err != nil {
		return fmt.Errorf("smtp transport unreachable: %w", err)
	}
	conn.Close()

	msg := buildMessage(m.from, to, subject, html)
	done := make(chan error, 1)
	go func() {
		done <- m.sendFn(m.addr, m.auth, envelopeAddress(m.from), []string{to}, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("email send failed: %w", err)
		}
		m.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email send timed out after %s", SendTimeout)
	}
}

func buildMessage(from, to, subject, html string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, html,
	)
}

// envelopeAddress strips a display name ("UrbanHelp <x@y>" -> "x@y") for the
// SMTP envelope.
func envelopeAddress(from string) string {
	if i := strings.Index(from, "<"); i >= 0 {
		if j := strings.Index(from[i:], ">"); j > 0 {
			return from[i+1 : i+j]
		}
	}
	return from
}
