package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/platform/webctx"
)

type fakeModule struct {
	id     string
	routes []module.Route
	err    error
}

func (f fakeModule) ID() string { return f.id }

func (f fakeModule) Mount(module.Dependencies) (module.Mount, error) {
	return module.Mount{Routes: f.routes}, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestComposeMountsRoutes(t *testing.T) {
	t.Parallel()

	handler, err := Compose(module.Dependencies{}, []module.Module{
		fakeModule{id: "one", routes: []module.Route{{Pattern: "GET /one", Handler: okHandler()}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/one", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestComposeRejectsDuplicatePattern(t *testing.T) {
	t.Parallel()

	_, err := Compose(module.Dependencies{}, []module.Module{
		fakeModule{id: "one", routes: []module.Route{{Pattern: "GET /dup", Handler: okHandler()}}},
		fakeModule{id: "two", routes: []module.Route{{Pattern: "GET /dup", Handler: okHandler()}}},
	})
	if err == nil {
		t.Fatal("Compose() error = nil, want duplicate pattern error")
	}
}

func TestComposeRejectsNilHandler(t *testing.T) {
	t.Parallel()

	_, err := Compose(module.Dependencies{}, []module.Module{
		fakeModule{id: "one", routes: []module.Route{{Pattern: "GET /x"}}},
	})
	if err == nil {
		t.Fatal("Compose() error = nil, want missing handler error")
	}
}

func TestComposeRequireLoginRedirectsAnonymous(t *testing.T) {
	t.Parallel()

	handler, err := Compose(module.Dependencies{}, []module.Module{
		fakeModule{id: "one", routes: []module.Route{
			{Pattern: "GET /secret", Handler: okHandler(), RequireLogin: true},
		}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/secret", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/login" {
		t.Fatalf("Location = %q, want /login", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req = req.WithContext(webctx.WithViewer(req.Context(), module.Viewer{UserID: 7}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("signed-in status = %d, want %d", rr.Code, http.StatusOK)
	}
}
