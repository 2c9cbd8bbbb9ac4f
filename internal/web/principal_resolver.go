package web

import (
	"net/http"

	"github.com/louisbranch/inkwell/internal/storage"
	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/platform/httpx"
	"github.com/louisbranch/inkwell/internal/web/platform/sessioncookie"
	"github.com/louisbranch/inkwell/internal/web/platform/webctx"
)

// withViewer resolves the session cookie into a viewer once per request and
// stores it in context. Invalid or stale sessions resolve anonymously.
func withViewer(users storage.UserStore, sessions SessionManager) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer, ok := resolveViewer(r, users, sessions)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(webctx.WithViewer(r.Context(), viewer)))
		})
	}
}

func resolveViewer(r *http.Request, users storage.UserStore, sessions SessionManager) (module.Viewer, bool) {
	token, ok := sessioncookie.Read(r)
	if !ok {
		return module.Viewer{}, false
	}
	userID, err := sessions.Verify(token)
	if err != nil || userID == 0 {
		return module.Viewer{}, false
	}
	user, err := users.GetUser(r.Context(), userID)
	if err != nil {
		return module.Viewer{}, false
	}
	adminID, err := users.AdminUserID(r.Context())
	if err != nil {
		return module.Viewer{}, false
	}
	return module.Viewer{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: adminID != 0 && user.ID == adminID,
	}, true
}
