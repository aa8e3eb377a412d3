package notify

import (
	"Gin_sqlite_redis_archive_tool/config"

	gomail "gopkg.in/gomail.v2"
)

// Sender dispatches one message. The notifier and the password-reset flow
// only depend on this, so tests swap in a recorder.
type Sender interface {
	Send(to, subject, body string) error
}

// Mailer sends over SMTP with STARTTLS.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
