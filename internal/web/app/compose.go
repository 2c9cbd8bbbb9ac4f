// Package app composes feature modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/platform/httpx"
	"github.com/louisbranch/inkwell/internal/web/platform/webctx"
	"github.com/louisbranch/inkwell/internal/web/routepath"
)

// Compose builds a root HTTP handler from the module list.
func Compose(deps module.Dependencies, features []module.Module) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range features {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount(deps)
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		for _, route := range mount.Routes {
			pattern := strings.TrimSpace(route.Pattern)
			if pattern == "" {
				return nil, fmt.Errorf("module %q has a route with an empty pattern", feature.ID())
			}
			if route.Handler == nil {
				return nil, fmt.Errorf("module %q route %q has no handler", feature.ID(), pattern)
			}
			if previous, ok := seen[pattern]; ok {
				return nil, fmt.Errorf("module %q duplicates pattern %q owned by module %q", feature.ID(), pattern, previous)
			}
			seen[pattern] = feature.ID()

			handler := route.Handler
			if route.RequireLogin {
				handler = requireLogin(handler)
			}
			root.Handle(pattern, handler)
		}
	}

	return root, nil
}

func requireLogin(next http.Handler) http.Handler {
	if next == nil {
		return http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !webctx.ViewerFrom(r.Context()).SignedIn() {
			httpx.WriteRedirect(w, r, routepath.Login)
			return
		}
		next.ServeHTTP(w, r)
	})
}
