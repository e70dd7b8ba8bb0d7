package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/zhahittya/encrypto-backend/internal/infrastructure/mail/port"
)

// SMTPMailer satisfies port.Mailer over a plain SMTP submission endpoint
// (STARTTLS is negotiated by net/smtp when the server advertises it).
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailerFromEnv constructs a mailer from SMTP_HOST, SMTP_PORT,
// SMTP_USER and SMTP_PASS. SMTP_USER doubles as the From address.
func NewSMTPMailerFromEnv() (*SMTPMailer, error) {
	host := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if host == "" {
		return nil, errors.New("smtp: SMTP_HOST environment variable is not set")
	}
	p := strings.TrimSpace(os.Getenv("SMTP_PORT"))
	if p == "" {
		p = "587"
	}
	user := strings.TrimSpace(os.Getenv("SMTP_USER"))
	pass := os.Getenv("SMTP_PASS")
	if user == "" || pass == "" {
		return nil, errors.New("smtp: SMTP_USER and SMTP_PASS environment variables are required")
	}

	return &SMTPMailer{
		addr: host + ":" + p,
		from: user,
		auth: smtp.PlainAuth("", user, pass, host),
	}, nil
}

var _ port.Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) Send(ctx context.Context, to string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp: send to %s: %w", to, err)
	}
	return nil
}
