// Package mail delivers contact-form messages through an SMTP relay.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/louisbranch/inkwell/internal/platform/config"
)

// Message is a contact-form submission.
type Message struct {
	Name  string
	Email string
	Phone string
	Body  string
}

// Sender delivers contact messages.
type Sender interface {
	SendContact(ctx context.Context, msg Message) error
}

// Config defines the SMTP relay and the destination mailbox.
type Config struct {
	Host     string `env:"INKWELL_SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"INKWELL_SMTP_PORT" envDefault:"587"`
	Username string `env:"INKWELL_SMTP_USERNAME"`
	Password string `env:"INKWELL_SMTP_PASSWORD"`
	// To is the site owner's mailbox receiving contact messages.
	To string `env:"INKWELL_CONTACT_TO"`
}

// LoadConfigFromEnv reads SMTP configuration.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Username) == "" {
		return Config{}, fmt.Errorf("INKWELL_SMTP_USERNAME is required")
	}
	if strings.TrimSpace(cfg.Password) == "" {
		return Config{}, fmt.Errorf("INKWELL_SMTP_PASSWORD is required")
	}
	if strings.TrimSpace(cfg.To) == "" {
		cfg.To = cfg.Username
	}
	return cfg, nil
}

// SMTPSender sends contact mail over an authenticated STARTTLS connection.
type SMTPSender struct {
	cfg Config
}

// NewSMTPSender validates config and constructs a sender.
func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("smtp port is required")
	}
	if strings.TrimSpace(cfg.Username) == "" {
		return nil, fmt.Errorf("smtp username is required")
	}
	if strings.TrimSpace(cfg.To) == "" {
		return nil, fmt.Errorf("contact destination is required")
	}
	return &SMTPSender{cfg: cfg}, nil
}

// SendContact delivers one contact message.
//
// The visitor's address goes into Reply-To rather than From: most relays
// refuse to send mail claiming an origin they don't own.
func (s *SMTPSender) SendContact(ctx context.Context, msg Message) error {
	if s == nil {
		return fmt.Errorf("smtp sender is nil")
	}

	m := gomail.NewMsg()
	if err := m.From(s.cfg.Username); err != nil {
		return fmt.Errorf("set mail from: %w", err)
	}
	if err := m.To(s.cfg.To); err != nil {
		return fmt.Errorf("set mail to: %w", err)
	}
	if strings.TrimSpace(msg.Email) != "" {
		if err := m.ReplyTo(msg.Email); err != nil {
			return fmt.Errorf("set mail reply-to: %w", err)
		}
	}
	m.Subject("New Message")
	m.SetBodyString(gomail.TypeTextPlain, FormatBody(msg))

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("new smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

// FormatBody renders the plain-text body of a contact message.
func FormatBody(msg Message) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage: %s\n",
		msg.Name, msg.Email, msg.Phone, msg.Body)
}
