package handlers

import (
	"net/http"

	"github.com/crucial707/exercise-tracker/internal/metrics"
	"github.com/crucial707/exercise-tracker/internal/service"
)

// ==========================
// UserHandler
// ==========================
type UserHandler struct {
	Users *service.UserService
}

type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// ==========================
// Create User (returns the existing user when the name is taken)
// ==========================
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	user, created, err := h.Users.CreateOrGet(r.Context(), r.PostFormValue("username"))
	if err != nil {
		writeServiceError(w, r, "create user", err)
		return
	}
	metrics.IncUsersRegistered(created)

	writeJSON(w, http.StatusOK, userResponse{Username: user.Username, ID: user.ID})
}

// ==========================
// List Users
// ==========================
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "list users", err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
