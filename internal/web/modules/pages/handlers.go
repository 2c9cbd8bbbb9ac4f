package pages

import (
	"context"
	"log"
	"net/http"

	"github.com/louisbranch/inkwell/internal/mail"
	"github.com/louisbranch/inkwell/internal/platform/timeouts"
	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/platform/pagerender"
	"github.com/louisbranch/inkwell/internal/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "about.html", pagerender.Page(w, r, "About", "About Me", "This is what I do."))
}

func (h handlers) handleContactForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "contact.html", templates.ContactView{
		Page: pagerender.Page(w, r, "Contact", "Contact Me", "Have questions? I have answers."),
	})
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	msg := mail.Message{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Phone: r.FormValue("phone"),
		Body:  r.FormValue("message"),
	}

	// Delivery failures are logged but never surfaced to the visitor;
	// the page always confirms the submission.
	if h.deps.Mailer != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.MailSend)
		defer cancel()
		if err := h.deps.Mailer.SendContact(ctx, msg); err != nil {
			log.Printf("send contact mail: %v", err)
		}
	} else {
		log.Printf("contact mail from %s dropped: no mailer configured", msg.Email)
	}

	templates.Render(w, "contact.html", templates.ContactView{
		Page: pagerender.Page(w, r, "Contact", "Successfully sent your message", "I'll get back to you soon."),
		Sent: true,
	})
}
