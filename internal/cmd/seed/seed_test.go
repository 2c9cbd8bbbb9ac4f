package seed

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/inkwell/internal/storage/sqlite"
)

func TestParseConfigRequiresPassword(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil, nil); err == nil {
		t.Fatal("ParseConfig() error = nil, want missing password error")
	}
}

func TestParseConfigFlags(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-db-path", "/tmp/blog.db",
		"-admin-email", "owner@example.com",
		"-admin-password", "hunter2",
	}, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.DBPath != "/tmp/blog.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.AdminEmail != "owner@example.com" {
		t.Fatalf("AdminEmail = %q", cfg.AdminEmail)
	}
}

func TestSeedCreatesAdminAndSamplePost(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	cfg := Config{
		AdminEmail:    "owner@example.com",
		AdminName:     "Owner",
		AdminPassword: "hunter2",
	}
	ctx := context.Background()

	var out bytes.Buffer
	if err := Seed(ctx, store, cfg, &out); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if !strings.Contains(out.String(), "created admin owner@example.com") {
		t.Fatalf("output = %q", out.String())
	}

	adminID, err := store.AdminUserID(ctx)
	if err != nil || adminID == 0 {
		t.Fatalf("AdminUserID() = %d, %v", adminID, err)
	}
	posts, err := store.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len(posts) = %d, want 1", len(posts))
	}

	// Second run is a no-op.
	out.Reset()
	if err := Seed(ctx, store, cfg, &out); err != nil {
		t.Fatalf("Seed() rerun error = %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Fatalf("rerun output = %q", out.String())
	}
}
