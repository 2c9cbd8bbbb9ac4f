// Package auth provides the registration, login, and logout routes.
package auth

import (
	"net/http"

	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/routepath"
)

// Module provides the account routes.
type Module struct{}

// New returns the auth module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "auth"
}

// Mount wires the account routes.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := newHandlers(deps)
	return module.Mount{Routes: []module.Route{
		{Pattern: "GET " + routepath.Register, Handler: http.HandlerFunc(h.handleRegisterForm)},
		{Pattern: "POST " + routepath.Register, Handler: http.HandlerFunc(h.handleRegister)},
		{Pattern: "GET " + routepath.Login, Handler: http.HandlerFunc(h.handleLoginForm)},
		{Pattern: "POST " + routepath.Login, Handler: http.HandlerFunc(h.handleLogin)},
		{Pattern: "GET " + routepath.Logout, Handler: http.HandlerFunc(h.handleLogout)},
	}}, nil
}
