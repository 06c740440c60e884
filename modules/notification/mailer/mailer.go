package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"event-portal/core/config"
	"event-portal/core/logger"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
		auth: auth,
	}
}

func (m *smtpMailer) Send(_ context.Context, to, subject, body string) error {
	msg := BuildMessage(m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		logger.Warn("Mailer:Send:Error", "error", err, "to", to)
		return fmt.Errorf("send email: %w", err)
	}
	logger.Info("Mailer:Send:Sent", "to", to, "subject", subject)
	return nil
}

// BuildMessage renders a plain text RFC 5322 message.
func BuildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

type logMailer struct{}

// NewLogMailer writes mails to the log instead of sending them.
func NewLogMailer() Mailer {
	return logMailer{}
}

func (logMailer) Send(_ context.Context, to, subject, body string) error {
	logger.Info("Mailer:Send:Logged", "to", to, "subject", subject, "body", body)
	return nil
}
