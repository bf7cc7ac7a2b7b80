package notify

import (
	"fmt"
	"log"
	"net/smtp"

	"sitewright/config"
)

// Notifier sends a best-effort message to the site owner. The return value
// reports whether the message went out; callers must treat false as
// informational only and never fail their own operation over it.
type Notifier interface {
	Notify(subject, body string) bool
}

// Mailer sends through an SMTP relay using the credentials from Config.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Notify(subject, body string) bool {
	if !m.cfg.MailConfigured() {
		return false
	}

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.cfg.SMTPUsername, m.cfg.NotifyEmail, subject, body))

	auth := smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, m.cfg.SMTPUsername, []string{m.cfg.NotifyEmail}, msg); err != nil {
		log.Printf("notify: send failed: %v", err)
		return false
	}
	return true
}

// Nop discards every notification. Used in tests and when mail is not
// configured at all.
type Nop struct{}

func (Nop) Notify(subject, body string) bool { return false }
