package mailer

import (
	"fmt"
	"net/smtp"
)

// Mailer sends transactional mail. Callers treat failures as best-effort
// and must not couple them to database transactions.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPConfig struct {
	Addr     string // host:port
	Host     string
	From     string
	Password string
}

type smtpMailer struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.cfg.From, to, subject, body,
	)
	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
