// Package pagerender assembles the shared page chrome for handlers.
package pagerender

import (
	"net/http"

	"github.com/louisbranch/inkwell/internal/web/platform/flash"
	"github.com/louisbranch/inkwell/internal/web/platform/webctx"
	"github.com/louisbranch/inkwell/internal/web/templates"
)

// Page builds the common template fields for one request, consuming any
// pending flash notice.
func Page(w http.ResponseWriter, r *http.Request, title, heading, subheading string) templates.Page {
	page := templates.Page{
		Title:      title,
		Heading:    heading,
		Subheading: subheading,
	}
	if r != nil {
		viewer := webctx.ViewerFrom(r.Context())
		page.Nav = templates.Nav{
			SignedIn: viewer.SignedIn(),
			IsAdmin:  viewer.IsAdmin,
			Name:     viewer.Name,
		}
	}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		page.Flash = &templates.Flash{Kind: string(notice.Kind), Message: notice.Message}
	}
	return page
}
