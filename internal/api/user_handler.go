package api

import (
	"net/http"

	"github.com/rfoley/taskward-api/internal/api/middleware"
	"github.com/rfoley/taskward-api/internal/api/shared"
)

// UserHandler handles requests about the authenticated user.
type UserHandler struct{}

// NewUserHandler creates a new UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me handles the GET /users/me endpoint. The authentication middleware has
// already resolved the identity; this handler only shapes the response.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}
