package notify

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the mail delivery settings for reminder emails.
type SMTPConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
	ToEmail   string `yaml:"to_email"`
	UseTLS    bool   `yaml:"use_tls"`
}

// SMTPNotifier delivers reminders as plain-text emails via gomail.
type SMTPNotifier struct {
	cfg *SMTPConfig
}

// NewSMTPNotifier creates an SMTP-backed notifier.
func NewSMTPNotifier(cfg *SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Notify(title, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", n.cfg.FromName, n.cfg.FromEmail))
	m.SetHeader("To", n.cfg.ToEmail)
	m.SetHeader("Subject", title)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)

	// UseTLS selects STARTTLS (port 587); otherwise implicit SSL (port 465).
	d.SSL = !n.cfg.UseTLS
	d.TLSConfig = &tls.Config{ServerName: n.cfg.Host}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	return nil
}
