// Package blog defines the core entities of the blog: users, posts, and
// comments, along with the form-level validation each mutation requires.
package blog

import (
	"net/mail"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
)

// DateFormat renders publication dates the way the site displays them.
const DateFormat = "Jan 02, 2006"

// CanonicalEmail normalizes an address so the form registration stored it
// under also matches at login.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User is a registered account that can author posts and comments.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Post is a published blog entry.
type Post struct {
	ID        int64
	AuthorID  int64
	Author    *User
	Title     string
	Subtitle  string
	Date      string
	Body      string
	ImageURL  string
	CreatedAt time.Time
}

// Comment is a reader note attached to a post.
type Comment struct {
	ID        int64
	AuthorID  int64
	PostID    int64
	Author    *User
	Text      string
	CreatedAt time.Time
}

// Registration carries validated signup input.
type Registration struct {
	Email    string
	Name     string
	Password string
}

// NewRegistration validates signup form input.
//
// The email is canonicalized to lower case so uniqueness holds regardless of
// how the address was typed.
func NewRegistration(email, name, password string) (Registration, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return Registration{}, apperrors.New(apperrors.CodeFieldRequired, "email is required")
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil {
		return Registration{}, apperrors.Wrap(apperrors.CodeEmailInvalid, "email is invalid", err)
	}
	if name == "" {
		return Registration{}, apperrors.New(apperrors.CodeFieldRequired, "name is required")
	}
	if password == "" {
		return Registration{}, apperrors.New(apperrors.CodeFieldRequired, "password is required")
	}
	return Registration{
		Email:    CanonicalEmail(parsed.Address),
		Name:     name,
		Password: password,
	}, nil
}

// PostInput carries validated post form input.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImageURL string
}

// NewPostInput validates the create/edit post form.
func NewPostInput(title, subtitle, body, imageURL string) (PostInput, error) {
	title = strings.TrimSpace(title)
	subtitle = strings.TrimSpace(subtitle)
	imageURL = strings.TrimSpace(imageURL)
	if title == "" {
		return PostInput{}, apperrors.New(apperrors.CodeFieldRequired, "title is required")
	}
	if subtitle == "" {
		return PostInput{}, apperrors.New(apperrors.CodeFieldRequired, "subtitle is required")
	}
	if strings.TrimSpace(body) == "" {
		return PostInput{}, apperrors.New(apperrors.CodeFieldRequired, "body is required")
	}
	if imageURL == "" {
		return PostInput{}, apperrors.New(apperrors.CodeFieldRequired, "image url is required")
	}
	parsed, err := url.Parse(imageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return PostInput{}, apperrors.New(apperrors.CodeURLInvalid, "image url is invalid")
	}
	return PostInput{
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		ImageURL: imageURL,
	}, nil
}

// NewCommentText validates comment form input.
func NewCommentText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperrors.New(apperrors.CodeFieldRequired, "comment text is required")
	}
	return text, nil
}

// FormatDate renders a publication date for display.
func FormatDate(now time.Time) string {
	return now.Format(DateFormat)
}
