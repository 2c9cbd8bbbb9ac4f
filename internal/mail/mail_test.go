package mail

import (
	"strings"
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("INKWELL_SMTP_HOST", "mail.example.com")
	t.Setenv("INKWELL_SMTP_PORT", "2525")
	t.Setenv("INKWELL_SMTP_USERNAME", "blog@example.com")
	t.Setenv("INKWELL_SMTP_PASSWORD", "hunter2")
	t.Setenv("INKWELL_CONTACT_TO", "owner@example.com")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}
	if cfg.Host != "mail.example.com" {
		t.Errorf("Host = %q, want mail.example.com", cfg.Host)
	}
	if cfg.Port != 2525 {
		t.Errorf("Port = %d, want 2525", cfg.Port)
	}
	if cfg.To != "owner@example.com" {
		t.Errorf("To = %q, want owner@example.com", cfg.To)
	}
}

func TestLoadConfigFromEnvDefaultsToToUsername(t *testing.T) {
	t.Setenv("INKWELL_SMTP_USERNAME", "blog@example.com")
	t.Setenv("INKWELL_SMTP_PASSWORD", "hunter2")
	t.Setenv("INKWELL_CONTACT_TO", "")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}
	if cfg.To != "blog@example.com" {
		t.Errorf("To = %q, want username fallback", cfg.To)
	}
}

func TestLoadConfigFromEnvRequiresCredentials(t *testing.T) {
	t.Setenv("INKWELL_SMTP_USERNAME", "")
	t.Setenv("INKWELL_SMTP_PASSWORD", "")

	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("LoadConfigFromEnv() error = nil, want missing credentials error")
	}
}

func TestNewSMTPSenderValidates(t *testing.T) {
	t.Parallel()

	base := Config{Host: "mail.example.com", Port: 587, Username: "blog@example.com", To: "owner@example.com"}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing host", func(c *Config) { c.Host = "" }},
		{"missing port", func(c *Config) { c.Port = 0 }},
		{"missing username", func(c *Config) { c.Username = "" }},
		{"missing destination", func(c *Config) { c.To = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := base
			tc.mutate(&cfg)
			if _, err := NewSMTPSender(cfg); err == nil {
				t.Fatal("NewSMTPSender() error = nil, want validation error")
			}
		})
	}

	if _, err := NewSMTPSender(base); err != nil {
		t.Fatalf("NewSMTPSender(valid) error = %v", err)
	}
}

func TestFormatBody(t *testing.T) {
	t.Parallel()

	got := FormatBody(Message{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0100",
		Body:  "Loved the latest post.",
	})
	for _, want := range []string{
		"Name: Ada Lovelace",
		"Email: ada@example.com",
		"Phone: 555-0100",
		"Message: Loved the latest post.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatBody() missing %q in %q", want, got)
		}
	}
}
