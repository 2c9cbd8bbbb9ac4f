// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/inkwell/internal/mail"
	"github.com/louisbranch/inkwell/internal/storage"
)

// Viewer contains the identity rendered into page chrome.
type Viewer struct {
	UserID  int64
	Name    string
	Email   string
	IsAdmin bool
}

// SignedIn reports whether the viewer is an authenticated user.
func (v Viewer) SignedIn() bool {
	return v.UserID != 0
}

// SessionIssuer mints a session token for a user.
type SessionIssuer interface {
	Issue(userID int64) (string, error)
}

// Dependencies carries the shared services handed to every module.
type Dependencies struct {
	Users    storage.UserStore
	Posts    storage.PostStore
	Comments storage.CommentStore
	Sessions SessionIssuer
	Mailer   mail.Sender
}

// Route binds one mux pattern to a handler.
type Route struct {
	// Pattern is a net/http ServeMux pattern, method included.
	Pattern string
	Handler http.Handler
	// RequireLogin redirects anonymous requests to the login page
	// before the handler runs.
	RequireLogin bool
}

// Mount describes a module's route table.
type Mount struct {
	Routes []Route
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
