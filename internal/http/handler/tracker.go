package handler

import (
	"net/http"

	"github.com/VinBdev/Predict-Your-Sales/internal/core"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/handler/middleware"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/view"

	"go.uber.org/zap"
)

// Route patterns for the mux. Method-less patterns serve both the GET form
// render and the POST submission; the handler branches on r.Method.
var (
	Home       = "GET /{$}"
	GetSales   = "GET /get_sales"
	Search     = "/search"
	Register   = "/register"
	Login      = "/login"
	Dashboard  = "/dashboard/"
	Logout     = "GET /logout"
	NewSale    = "/new_sales"
	EditSale   = "/edit_sale/{id}"
	DeleteSale = "GET /delete_sale/{id}"
	GetUsers   = "GET /get_users"
	NewUser    = "/new_user"
	EditUser   = "/edit_user/{id}"
	DeleteUser = "GET /delete_user/{id}"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type TrackerHandler struct {
	logs     *zap.SugaredLogger
	sessions SessionManager
	views    Renderer
	tracker  TrackerService
}

func NewTrackerHandler(logger *zap.SugaredLogger, sessions SessionManager, views Renderer, tracker TrackerService) *TrackerHandler {
	return &TrackerHandler{
		logs:     logger,
		sessions: sessions,
		views:    views,
		tracker:  tracker,
	}
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}

// render executes the named view, folding in the pending flash message and
// the session user unless the caller already provided them.
func (h *TrackerHandler) render(w http.ResponseWriter, r *http.Request, name string, data view.Data) {
	if data == nil {
		data = view.Data{}
	}
	if _, ok := data["flash"]; !ok {
		if message, ok := h.sessions.PopFlash(w, r); ok {
			data["flash"] = message
		}
	}
	if _, ok := data["user"]; !ok {
		if username, ok := h.sessions.CurrentUser(r); ok {
			data["user"] = username
		}
	}

	if err := h.views.Render(w, name, data); err != nil {
		h.logs.Errorw("failed to render view",
			"error", err,
			"view", name,
			"request_id", requestID(r))
		http.Error(w, oopsErr, http.StatusInternalServerError)
	}
}

func (h *TrackerHandler) redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *TrackerHandler) serverError(w http.ResponseWriter, r *http.Request, route string, err error) {
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestID(r))
	http.Error(w, oopsErr, http.StatusInternalServerError)
}

// requireUser redirects to the login page when no session user is present.
// The redirect carries no flash.
func (h *TrackerHandler) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := h.sessions.CurrentUser(r)
	if !ok {
		h.redirect(w, r, "/login")
		return "", false
	}
	return username, true
}

// requireAdmin additionally checks the account role behind the session.
func (h *TrackerHandler) requireAdmin(w http.ResponseWriter, r *http.Request, route string) (string, bool) {
	username, ok := h.requireUser(w, r)
	if !ok {
		return "", false
	}

	role, err := h.tracker.UserRole(r.Context(), username)
	if err != nil {
		h.serverError(w, r, route, err)
		return "", false
	}
	if role != core.RoleAdmin {
		h.sessions.Flash(w, "You are not permitted to do that")
		h.redirect(w, r, "/dashboard/")
		return "", false
	}
	return username, true
}
