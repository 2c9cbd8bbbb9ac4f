// Package weberror renders shared error pages for web modules.
package weberror

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
	"github.com/louisbranch/inkwell/internal/web/platform/webctx"
	"github.com/louisbranch/inkwell/internal/web/templates"
)

// PublicMessage resolves a user-safe error message.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	if appErr := apperrors.AsError(err); appErr != nil && strings.TrimSpace(appErr.Message) != "" {
		return appErr.Message
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteError renders the shared error page for a failed request.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	WriteStatus(w, r, apperrors.HTTPStatus(err), PublicMessage(err))
}

// WriteStatus renders the shared error page with an explicit status.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	if w == nil {
		return
	}
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = http.StatusText(status)
	}

	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}
	viewer := webctx.ViewerFrom(ctx)
	view := templates.ErrorView{
		Page: templates.Page{
			Title:   http.StatusText(status),
			Heading: "Something went wrong",
			Nav: templates.Nav{
				SignedIn: viewer.SignedIn(),
				IsAdmin:  viewer.IsAdmin,
				Name:     viewer.Name,
			},
		},
		Status:  status,
		Message: message,
	}
	templates.RenderStatus(w, status, "error.html", view)
}
