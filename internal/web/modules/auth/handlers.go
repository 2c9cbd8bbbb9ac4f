package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/louisbranch/inkwell/internal/auth/password"
	"github.com/louisbranch/inkwell/internal/blog"
	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
	"github.com/louisbranch/inkwell/internal/storage"
	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/platform/flash"
	"github.com/louisbranch/inkwell/internal/web/platform/httpx"
	"github.com/louisbranch/inkwell/internal/web/platform/pagerender"
	"github.com/louisbranch/inkwell/internal/web/platform/sessioncookie"
	"github.com/louisbranch/inkwell/internal/web/platform/webctx"
	"github.com/louisbranch/inkwell/internal/web/platform/weberror"
	"github.com/louisbranch/inkwell/internal/web/routepath"
	"github.com/louisbranch/inkwell/internal/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	templates.Render(w, "register.html", templates.AuthView{
		Page: pagerender.Page(w, r, "Register", "Register", "Start contributing to the blog!"),
	})
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	reg, err := blog.NewRegistration(r.FormValue("email"), r.FormValue("name"), r.FormValue("password"))
	if err != nil {
		flash.Write(w, flash.Error(weberror.PublicMessage(err)))
		httpx.WriteRedirect(w, r, routepath.Register)
		return
	}

	hash, err := password.Hash(reg.Password)
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}

	user, err := h.deps.Users.CreateUser(r.Context(), blog.User{
		Email:        reg.Email,
		Name:         reg.Name,
		PasswordHash: hash,
	})
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeEmailTaken {
			flash.Write(w, flash.Error("You've already signed up with that email, log in instead!"))
			httpx.WriteRedirect(w, r, routepath.Login)
			return
		}
		weberror.WriteError(w, r, err)
		return
	}

	h.startSession(w, r, user.ID)
}

func (h handlers) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	templates.Render(w, "login.html", templates.AuthView{
		Page: pagerender.Page(w, r, "Log In", "Log In", "Welcome back!"),
	})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	email := blog.CanonicalEmail(r.FormValue("email"))
	user, err := h.deps.Users.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.failLogin(w, r, apperrors.New(apperrors.CodeEmailUnknown, "That email does not exist, please try again."))
			return
		}
		weberror.WriteError(w, r, err)
		return
	}

	if !password.Verify(user.PasswordHash, r.FormValue("password")) {
		h.failLogin(w, r, apperrors.New(apperrors.CodeWrongPassword, "Password incorrect, please try again."))
		return
	}

	h.startSession(w, r, user.ID)
}

func (h handlers) failLogin(w http.ResponseWriter, r *http.Request, err error) {
	flash.Write(w, flash.Error(weberror.PublicMessage(err)))
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) startSession(w http.ResponseWriter, r *http.Request, userID int64) {
	token, err := h.deps.Sessions.Issue(userID)
	if err != nil {
		log.Printf("issue session for user %d: %v", userID, err)
		weberror.WriteError(w, r, err)
		return
	}
	sessioncookie.Write(w, r, token)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) redirectSignedIn(w http.ResponseWriter, r *http.Request) bool {
	if !webctx.ViewerFrom(r.Context()).SignedIn() {
		return false
	}
	httpx.WriteRedirect(w, r, routepath.Root)
	return true
}
