// Package pages provides the static about page and the contact form.
package pages

import (
	"net/http"

	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/routepath"
)

// Module provides the informational routes.
type Module struct{}

// New returns the pages module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "pages"
}

// Mount wires the informational routes.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := newHandlers(deps)
	return module.Mount{Routes: []module.Route{
		{Pattern: "GET " + routepath.About, Handler: http.HandlerFunc(h.handleAbout)},
		{Pattern: "GET " + routepath.Contact, Handler: http.HandlerFunc(h.handleContactForm)},
		{Pattern: "POST " + routepath.Contact, Handler: http.HandlerFunc(h.handleContact)},
	}}, nil
}
