// Package posts provides the post listing, reading, commenting, and the
// admin-only authoring routes.
package posts

import (
	"net/http"

	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/routepath"
)

// Module provides the post routes.
type Module struct{}

// New returns the posts module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "posts"
}

// Mount wires the post routes. Authoring routes require a signed-in
// viewer; the admin check happens in the handlers so non-admin users
// get a 403 instead of a login redirect.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := newHandlers(deps)
	return module.Mount{Routes: []module.Route{
		{Pattern: "GET /{$}", Handler: http.HandlerFunc(h.handleIndex)},
		{Pattern: "GET " + routepath.PostPattern, Handler: http.HandlerFunc(h.handleShowPost)},
		{Pattern: "POST " + routepath.PostPattern, Handler: http.HandlerFunc(h.handleCreateComment)},
		{Pattern: "GET " + routepath.NewPost, Handler: http.HandlerFunc(h.handleNewPostForm), RequireLogin: true},
		{Pattern: "POST " + routepath.NewPost, Handler: http.HandlerFunc(h.handleCreatePost), RequireLogin: true},
		{Pattern: "GET " + routepath.EditPostPattern, Handler: http.HandlerFunc(h.handleEditPostForm), RequireLogin: true},
		{Pattern: "POST " + routepath.EditPostPattern, Handler: http.HandlerFunc(h.handleUpdatePost), RequireLogin: true},
		{Pattern: "GET " + routepath.DeletePostPattern, Handler: http.HandlerFunc(h.handleDeletePost), RequireLogin: true},
	}}, nil
}
