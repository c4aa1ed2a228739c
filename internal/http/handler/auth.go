package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/VinBdev/Predict-Your-Sales/internal/core"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/payload"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/view"
)

func (h *TrackerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, r, "register.html", view.Data{})
		return
	}

	form, err := payload.NewRegisterForm(r)
	if err != nil {
		h.serverError(w, r, Register, err)
		return
	}
	if err := form.Validate(); err != nil {
		h.render(w, r, "register.html", view.Data{
			"form_errors": payload.ErrorList(err),
		})
		return
	}

	user, err := h.tracker.Register(r.Context(), core.RegisterMessage{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, core.ErrUsernameTaken) {
			h.sessions.Flash(w, "Username already used")
			h.redirect(w, r, "/register")
			return
		}
		h.serverError(w, r, Register, err)
		return
	}

	if err := h.sessions.Login(w, user.Username); err != nil {
		h.serverError(w, r, Register, err)
		return
	}

	h.logs.Infow("registration successful",
		"username", user.Username,
		"handler", Register,
		"request_id", requestID(r))

	h.sessions.Flash(w, "Registration Successful")
	h.redirect(w, r, "/dashboard/")
}

func (h *TrackerHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, r, "login.html", view.Data{})
		return
	}

	form, err := payload.NewLoginForm(r)
	if err != nil {
		h.serverError(w, r, Login, err)
		return
	}

	user, err := h.tracker.Authenticate(r.Context(), core.AuthMessage{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		// one generic message for both failure modes so the response
		// never reveals which credential was wrong
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			h.sessions.Flash(w, "Incorrect Username and/or Password")
			h.redirect(w, r, "/login")
			return
		}
		h.serverError(w, r, Login, err)
		return
	}

	if err := h.sessions.Login(w, user.Username); err != nil {
		h.serverError(w, r, Login, err)
		return
	}

	h.logs.Infow("login successful",
		"username", user.Username,
		"handler", Login,
		"request_id", requestID(r))

	h.sessions.Flash(w, fmt.Sprintf("Welcome, %s", form.Username))
	h.redirect(w, r, "/dashboard/")
}

// HandleDashboard checks the session before touching the store; the lookups
// below dereference the session username.
func (h *TrackerHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	dash, err := h.tracker.Dashboard(r.Context(), username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			// account vanished underneath a live session
			h.sessions.Logout(w)
			h.redirect(w, r, "/login")
			return
		}
		h.serverError(w, r, Dashboard, err)
		return
	}

	h.render(w, r, "dashboard.html", view.Data{
		"dash": dash,
	})
}

func (h *TrackerHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w)
	h.sessions.Flash(w, "You have been logged out")
	h.redirect(w, r, "/login")
}
