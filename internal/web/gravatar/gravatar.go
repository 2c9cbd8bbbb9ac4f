// Package gravatar builds avatar URLs for commenter identicons.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	baseURL     = "https://www.gravatar.com/avatar/"
	defaultSize = 100
)

// URL returns the Gravatar image URL for an email address.
//
// Unknown addresses fall back to generated "retro" identicons so every
// commenter gets a stable avatar.
func URL(email string) string {
	return URLWithSize(email, defaultSize)
}

// URLWithSize returns the Gravatar image URL at a specific pixel size.
func URLWithSize(email string, size int) string {
	if size <= 0 {
		size = defaultSize
	}
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("%s%s?s=%d&d=retro&r=g", baseURL, hex.EncodeToString(sum[:]), size)
}
