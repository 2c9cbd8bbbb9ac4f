// Package server wires configuration and dependencies for the blog web
// service.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/inkwell/internal/auth/session"
	"github.com/louisbranch/inkwell/internal/mail"
	"github.com/louisbranch/inkwell/internal/storage/sqlite"
	"github.com/louisbranch/inkwell/internal/web"
)

const (
	defaultHTTPAddr = ":8080"
	defaultDBPath   = "inkwell.db"
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr string
	DBPath   string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr: envOrDefault(lookup, "INKWELL_HTTP_ADDR", defaultHTTPAddr),
		DBPath:   envOrDefault(lookup, "INKWELL_DB_PATH", defaultDBPath),
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the blog web server.
func Run(ctx context.Context, cfg Config) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	sessionCfg, err := session.LoadConfigFromEnv(time.Now)
	if err != nil {
		return fmt.Errorf("load session config: %w", err)
	}
	sessions, err := session.NewManager(sessionCfg)
	if err != nil {
		return fmt.Errorf("init session manager: %w", err)
	}

	// The contact form degrades to logging submissions when no SMTP
	// account is configured.
	var mailer mail.Sender
	if mailCfg, err := mail.LoadConfigFromEnv(); err != nil {
		log.Printf("contact mail disabled: %v", err)
	} else {
		sender, err := mail.NewSMTPSender(mailCfg)
		if err != nil {
			return fmt.Errorf("init smtp sender: %w", err)
		}
		mailer = sender
	}

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    store,
		Sessions: sessions,
		Mailer:   mailer,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func envOrDefault(lookup EnvLookup, key, fallback string) string {
	if lookup == nil {
		return fallback
	}
	if value, ok := lookup(key); ok {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}
