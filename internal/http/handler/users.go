package handler

import (
	"errors"
	"net/http"

	"github.com/VinBdev/Predict-Your-Sales/internal/core"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/payload"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/view"
)

// User management is admin-only; members get bounced to their dashboard.

func (h *TrackerHandler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r, GetUsers); !ok {
		return
	}

	users, err := h.tracker.ListUsers(r.Context())
	if err != nil {
		h.serverError(w, r, GetUsers, err)
		return
	}

	h.render(w, r, "users.html", view.Data{
		"users": users,
	})
}

func (h *TrackerHandler) HandleNewUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r, NewUser); !ok {
		return
	}

	if r.Method != http.MethodPost {
		h.render(w, r, "new_user.html", view.Data{})
		return
	}

	form, err := payload.NewRegisterForm(r)
	if err != nil {
		h.serverError(w, r, NewUser, err)
		return
	}
	if err := form.Validate(); err != nil {
		h.render(w, r, "new_user.html", view.Data{
			"form_errors": payload.ErrorList(err),
		})
		return
	}

	_, err = h.tracker.CreateUser(r.Context(), core.RegisterMessage{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, core.ErrUsernameTaken) {
			h.sessions.Flash(w, "Username already used")
			h.redirect(w, r, "/new_user")
			return
		}
		h.serverError(w, r, NewUser, err)
		return
	}

	h.sessions.Flash(w, "New User Added")
	h.redirect(w, r, "/get_users")
}

func (h *TrackerHandler) HandleEditUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r, EditUser); !ok {
		return
	}

	id := r.PathValue("id")

	if r.Method != http.MethodPost {
		user, err := h.tracker.GetUser(r.Context(), id)
		if err != nil {
			if errors.Is(err, core.ErrUserNotFound) {
				h.sessions.Flash(w, "User not found")
				h.redirect(w, r, "/get_users")
				return
			}
			h.serverError(w, r, EditUser, err)
			return
		}

		h.render(w, r, "edit_user.html", view.Data{
			"edit_user": user,
		})
		return
	}

	form, err := payload.NewUserEditForm(r)
	if err != nil {
		h.serverError(w, r, EditUser, err)
		return
	}
	if verr := form.Validate(); verr != nil {
		user, err := h.tracker.GetUser(r.Context(), id)
		if err != nil {
			h.serverError(w, r, EditUser, err)
			return
		}
		h.render(w, r, "edit_user.html", view.Data{
			"edit_user":   user,
			"form_errors": payload.ErrorList(verr),
		})
		return
	}

	err = h.tracker.ReplaceUser(r.Context(), id, core.UserUpdateMessage{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.sessions.Flash(w, "User not found")
			h.redirect(w, r, "/get_users")
			return
		}
		h.serverError(w, r, EditUser, err)
		return
	}

	h.sessions.Flash(w, "User Successfully Updated!")
	h.redirect(w, r, "/get_users")
}

func (h *TrackerHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r, DeleteUser); !ok {
		return
	}

	if err := h.tracker.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		h.serverError(w, r, DeleteUser, err)
		return
	}

	h.sessions.Flash(w, "User Successfully Deleted")
	h.redirect(w, r, "/get_users")
}
