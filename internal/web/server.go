// Package web hosts the browser-facing blog service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/inkwell/internal/mail"
	"github.com/louisbranch/inkwell/internal/platform/timeouts"
	"github.com/louisbranch/inkwell/internal/storage"
	webapp "github.com/louisbranch/inkwell/internal/web/app"
	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/modules"
	"github.com/louisbranch/inkwell/internal/web/platform/httpx"
	"github.com/louisbranch/inkwell/internal/web/routepath"
	webstatic "github.com/louisbranch/inkwell/internal/web/static"
)

// SessionManager mints and verifies browser session tokens.
type SessionManager interface {
	Issue(userID int64) (string, error)
	Verify(token string) (int64, error)
}

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	Store    storage.Store
	Sessions SessionManager
	Mailer   mail.Sender
}

// Server hosts the blog HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session manager is required")
	}

	deps := module.Dependencies{
		Users:    cfg.Store,
		Posts:    cfg.Store,
		Comments: cfg.Store,
		Sessions: cfg.Sessions,
		Mailer:   cfg.Mailer,
	}
	h, err := webapp.Compose(deps, modules.Default())
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rootMux.Handle("/", h)

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		withViewer(cfg.Store, cfg.Sessions),
		httpx.RequestLogger(),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
