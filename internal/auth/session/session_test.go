package session

import (
	"testing"
	"time"

	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
)

func testManager(t *testing.T, now func() time.Time) *Manager {
	t.Helper()
	m, err := NewManager(Config{Secret: []byte("test-secret"), TTL: time.Hour, Now: now})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	m := testManager(t, nil)
	token, err := m.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	userID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != 7 {
		t.Fatalf("Verify() = %d, want 7", userID)
	}
}

func TestIssueRejectsZeroUser(t *testing.T) {
	t.Parallel()

	m := testManager(t, nil)
	if _, err := m.Issue(0); err == nil {
		t.Fatalf("Issue(0) error = nil, want error")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	clock := issued
	m := testManager(t, func() time.Time { return clock })

	token, err := m.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	clock = issued.Add(2 * time.Hour)
	if _, err := m.Verify(token); apperrors.CodeOf(err) != apperrors.CodeUnauthenticated {
		t.Fatalf("Verify(expired) error = %v, want unauthenticated", err)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	m := testManager(t, nil)
	token, err := m.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other, err := NewManager(Config{Secret: []byte("other-secret")})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if _, err := other.Verify(token); apperrors.CodeOf(err) != apperrors.CodeUnauthenticated {
		t.Fatalf("Verify(wrong key) error = %v, want unauthenticated", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	m := testManager(t, nil)
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "whitespace", token: "   "},
		{name: "not a jwt", token: "definitely-not-a-token"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := m.Verify(tc.token); apperrors.CodeOf(err) != apperrors.CodeUnauthenticated {
				t.Fatalf("Verify(%q) error = %v, want unauthenticated", tc.token, err)
			}
		})
	}
}

func TestLoadConfigFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("INKWELL_SESSION_KEY", "")
	if _, err := LoadConfigFromEnv(nil); err == nil {
		t.Fatalf("LoadConfigFromEnv() error = nil, want error")
	}
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("INKWELL_SESSION_KEY", "test-secret")
	t.Setenv("INKWELL_SESSION_TTL", "")
	cfg, err := LoadConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}
	if cfg.TTL != defaultTTL {
		t.Fatalf("TTL = %v, want %v", cfg.TTL, defaultTTL)
	}
}
