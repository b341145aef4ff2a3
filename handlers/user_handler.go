package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/services"
)

type UserHandler struct {
	responder
	userService services.UserService
}

func NewUserHandler(userService services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		responder:   responder{logger: logger},
		userService: userService,
	}
}

// Search godoc
// @Summary Search users
// @Tags users
// @Description Case-insensitive match on username or email, newest first, at most 20. Queries under two characters return an empty list.
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} map[string]interface{} "users"
// @Router /users/search [get]
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		// search degrades to no results instead of failing the page
		h.logger.ErrorContext(r.Context(), "user search failed", slog.Any("error", err))
		users = []models.UserSummary{}
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"users": users}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GetPublicProfile godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.PublicProfile
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{userId} [get]
func (h *UserHandler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := getIDFromURL(r, "userId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}

	profile, err := h.userService.GetPublicProfile(r.Context(), userID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, profile, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
