package blog

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
)

func TestCanonicalEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Reader@Example.com", want: "reader@example.com"},
		{in: "  reader@example.com  ", want: "reader@example.com"},
		{in: "reader@example.com", want: "reader@example.com"},
	}
	for _, tc := range tests {
		if got := CanonicalEmail(tc.in); got != tc.want {
			t.Fatalf("CanonicalEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewRegistration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		email     string
		userName  string
		password  string
		wantEmail string
		wantCode  apperrors.Code
	}{
		{name: "valid input", email: "Reader@Example.com", userName: "Reader", password: "hunter2", wantEmail: "reader@example.com"},
		{name: "surrounding whitespace", email: "  reader@example.com  ", userName: " Reader ", password: "hunter2", wantEmail: "reader@example.com"},
		{name: "missing email", email: "", userName: "Reader", password: "hunter2", wantCode: apperrors.CodeFieldRequired},
		{name: "malformed email", email: "not-an-address", userName: "Reader", password: "hunter2", wantCode: apperrors.CodeEmailInvalid},
		{name: "missing name", email: "reader@example.com", userName: "", password: "hunter2", wantCode: apperrors.CodeFieldRequired},
		{name: "missing password", email: "reader@example.com", userName: "Reader", password: "", wantCode: apperrors.CodeFieldRequired},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			reg, err := NewRegistration(tc.email, tc.userName, tc.password)
			if tc.wantCode != "" {
				if err == nil {
					t.Fatalf("NewRegistration() error = nil, want code %q", tc.wantCode)
				}
				if got := apperrors.CodeOf(err); got != tc.wantCode {
					t.Fatalf("NewRegistration() code = %q, want %q", got, tc.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRegistration() error = %v", err)
			}
			if reg.Email != tc.wantEmail {
				t.Fatalf("Email = %q, want %q", reg.Email, tc.wantEmail)
			}
		})
	}
}

func TestNewPostInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		subtitle string
		body     string
		imageURL string
		wantCode apperrors.Code
	}{
		{name: "valid input", title: "First Light", subtitle: "On beginnings", body: "<p>hello</p>", imageURL: "https://example.com/cover.jpg"},
		{name: "missing title", subtitle: "On beginnings", body: "x", imageURL: "https://example.com/a.jpg", wantCode: apperrors.CodeFieldRequired},
		{name: "missing subtitle", title: "First Light", body: "x", imageURL: "https://example.com/a.jpg", wantCode: apperrors.CodeFieldRequired},
		{name: "missing body", title: "First Light", subtitle: "On beginnings", body: "   ", imageURL: "https://example.com/a.jpg", wantCode: apperrors.CodeFieldRequired},
		{name: "missing image url", title: "First Light", subtitle: "On beginnings", body: "x", wantCode: apperrors.CodeFieldRequired},
		{name: "relative image url", title: "First Light", subtitle: "On beginnings", body: "x", imageURL: "/cover.jpg", wantCode: apperrors.CodeURLInvalid},
		{name: "non-http scheme", title: "First Light", subtitle: "On beginnings", body: "x", imageURL: "ftp://example.com/a.jpg", wantCode: apperrors.CodeURLInvalid},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewPostInput(tc.title, tc.subtitle, tc.body, tc.imageURL)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("NewPostInput() error = %v", err)
				}
				return
			}
			if got := apperrors.CodeOf(err); got != tc.wantCode {
				t.Fatalf("NewPostInput() code = %q, want %q", got, tc.wantCode)
			}
		})
	}
}

func TestNewCommentText(t *testing.T) {
	t.Parallel()

	if _, err := NewCommentText("  "); !errors.Is(err, apperrors.New(apperrors.CodeFieldRequired, "")) {
		t.Fatalf("NewCommentText(blank) error = %v, want field required", err)
	}
	text, err := NewCommentText("<p>nice post</p>")
	if err != nil {
		t.Fatalf("NewCommentText() error = %v", err)
	}
	if text != "<p>nice post</p>" {
		t.Fatalf("NewCommentText() = %q", text)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	got := FormatDate(time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC))
	if got != "Mar 07, 2025" {
		t.Fatalf("FormatDate() = %q, want %q", got, "Mar 07, 2025")
	}
}
