// Package session issues and verifies the signed tokens that carry a
// logged-in user's identity between requests.
//
// Tokens are HMAC-signed JWTs holding only the user ID and an expiry, so the
// server stays stateless: a session dies when the token expires or the
// cookie is cleared.
package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/louisbranch/inkwell/internal/platform/config"
	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
)

const defaultTTL = 7 * 24 * time.Hour

// sessionEnv holds raw env values before post-parse validation.
type sessionEnv struct {
	Secret string        `env:"INKWELL_SESSION_KEY"`
	TTL    time.Duration `env:"INKWELL_SESSION_TTL"`
}

// Config defines how session tokens are signed and how long they live.
type Config struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

// LoadConfigFromEnv reads session signing configuration.
//
// The signing key is required because a guessable default would let anyone
// mint sessions for arbitrary users.
func LoadConfigFromEnv(now func() time.Time) (Config, error) {
	var raw sessionEnv
	if err := config.ParseEnv(&raw); err != nil {
		return Config{}, fmt.Errorf("parse session env: %w", err)
	}
	secret := strings.TrimSpace(raw.Secret)
	if secret == "" {
		return Config{}, fmt.Errorf("INKWELL_SESSION_KEY is required")
	}
	ttl := raw.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return Config{
		Secret: []byte(secret),
		TTL:    ttl,
		Now:    now,
	}, nil
}

// Manager mints and verifies session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager validates config and constructs a session manager.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, fmt.Errorf("session secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		secret: cfg.Secret,
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue mints a signed session token for the given user.
func (m *Manager) Issue(userID int64) (string, error) {
	if m == nil {
		return "", fmt.Errorf("session manager is nil")
	}
	if userID <= 0 {
		return "", fmt.Errorf("user id is required")
	}
	issuedAt := m.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify validates a session token and returns the user ID it carries.
func (m *Manager) Verify(token string) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("session manager is nil")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, apperrors.New(apperrors.CodeUnauthenticated, "session token is required")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return m.now().UTC() }),
	)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeUnauthenticated, "session token is invalid", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, apperrors.New(apperrors.CodeUnauthenticated, "session subject is invalid")
	}
	return userID, nil
}
