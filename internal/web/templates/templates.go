// Package templates renders the server-side HTML pages for the blog.
package templates

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Flash is a one-time notice surfaced on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// Nav carries the signed-in state rendered into the shared header.
type Nav struct {
	SignedIn bool
	IsAdmin  bool
	Name     string
}

// Page holds the fields every template expects through the shared
// header and footer.
type Page struct {
	Title      string
	Heading    string
	Subheading string
	Nav        Nav
	Flash      *Flash
}

// PostItem is one entry on the index page.
type PostItem struct {
	URL        string
	Title      string
	Subtitle   string
	AuthorName string
	DateLabel  string
}

// IndexView renders the post listing.
type IndexView struct {
	Page
	Posts []PostItem
}

// CommentItem is one rendered comment under a post.
type CommentItem struct {
	AuthorName string
	AvatarURL  string
	Text       template.HTML
}

// PostView renders a single post with its comment thread.
type PostView struct {
	Page
	Body          template.HTML
	ImageURL      string
	AuthorName    string
	DateLabel     string
	Comments      []CommentItem
	CanEdit       bool
	EditURL       string
	DeleteURL     string
	CommentAction string
}

// PostForm carries user input for the create and edit forms.
type PostForm struct {
	Title    string
	Subtitle string
	ImageURL string
	Body     string
}

// PostFormView renders the create/edit post form.
type PostFormView struct {
	Page
	Action string
	Form   PostForm
}

// AuthView renders the register and login forms.
type AuthView struct {
	Page
}

// ContactView renders the contact form, before and after submission.
type ContactView struct {
	Page
	Sent bool
}

// ErrorView renders the shared error page.
type ErrorView struct {
	Page
	Status  int
	Message string
}

// Render executes a page template with a 200 status.
func Render(w http.ResponseWriter, name string, view any) {
	RenderStatus(w, http.StatusOK, name, view)
}

// RenderStatus executes a page template with an explicit status code.
func RenderStatus(w http.ResponseWriter, status int, name string, view any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, view); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}
