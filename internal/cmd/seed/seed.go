// Package seed creates a first admin account and a sample post so a fresh
// database has something to show.
package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/louisbranch/inkwell/internal/auth/password"
	"github.com/louisbranch/inkwell/internal/blog"
	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
	"github.com/louisbranch/inkwell/internal/storage"
	"github.com/louisbranch/inkwell/internal/storage/sqlite"
)

const defaultDBPath = "inkwell.db"

// Config holds seed command configuration.
type Config struct {
	DBPath        string
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		DBPath:        envOrDefault(lookup, "INKWELL_DB_PATH", defaultDBPath),
		AdminEmail:    envOrDefault(lookup, "INKWELL_ADMIN_EMAIL", "admin@example.com"),
		AdminName:     envOrDefault(lookup, "INKWELL_ADMIN_NAME", "Admin"),
		AdminPassword: envOrDefault(lookup, "INKWELL_ADMIN_PASSWORD", ""),
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "admin account email")
	fs.StringVar(&cfg.AdminName, "admin-name", cfg.AdminName, "admin account name")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "admin account password")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.AdminPassword) == "" {
		return Config{}, errors.New("admin password is required (flag -admin-password or INKWELL_ADMIN_PASSWORD)")
	}
	return cfg, nil
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	return Seed(ctx, store, cfg, out)
}

// Seed inserts the admin account and sample post into an open store.
// Re-running against a seeded database is a no-op.
func Seed(ctx context.Context, store storage.Store, cfg Config, out io.Writer) error {
	reg, err := blog.NewRegistration(cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("validate admin account: %w", err)
	}
	hash, err := password.Hash(reg.Password)
	if err != nil {
		return err
	}

	admin, err := store.CreateUser(ctx, blog.User{
		Email:        reg.Email,
		Name:         reg.Name,
		PasswordHash: hash,
	})
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeEmailTaken {
			fmt.Fprintf(out, "admin %s already exists, nothing to do\n", reg.Email)
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}
	fmt.Fprintf(out, "created admin %s (id %d)\n", admin.Email, admin.ID)

	post, err := store.CreatePost(ctx, blog.Post{
		AuthorID: admin.ID,
		Title:    "Welcome to the Blog",
		Subtitle: "The first of many posts.",
		Date:     blog.FormatDate(time.Now()),
		Body: "<p>This is a sample post created by the seed tool. " +
			"Log in with the admin account to edit or delete it, " +
			"or to write something of your own.</p>",
		ImageURL: "https://images.unsplash.com/photo-1455390582262-044cdead277a",
	})
	if err != nil {
		return fmt.Errorf("create sample post: %w", err)
	}
	fmt.Fprintf(out, "created sample post %q (id %d)\n", post.Title, post.ID)
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
