// Package webctx carries per-request viewer identity through context.
package webctx

import (
	"context"

	module "github.com/louisbranch/inkwell/internal/web/module"
)

type contextKey struct{}

var viewerKey contextKey

// WithViewer returns a context carrying the resolved viewer.
func WithViewer(ctx context.Context, viewer module.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, viewer)
}

// ViewerFrom returns the viewer resolved for this request, if any.
func ViewerFrom(ctx context.Context) module.Viewer {
	if ctx == nil {
		return module.Viewer{}
	}
	viewer, _ := ctx.Value(viewerKey).(module.Viewer)
	return viewer
}
