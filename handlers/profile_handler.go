package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dosada05/tournament-hub/middleware"
	"github.com/Dosada05/tournament-hub/services"
)

const maxAvatarUploadBytes = 5 << 20

type ProfileHandler struct {
	responder
	userService services.UserService
	authURL     string
}

// NewProfileHandler serves the signed-in user's own profile. authURL is where
// anonymous visitors of the profile page are sent to log in.
func NewProfileHandler(userService services.UserService, authURL string, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		responder:   responder{logger: logger},
		userService: userService,
		authURL:     authURL,
	}
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), currentUserID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, profile, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UploadAvatar godoc
// @Summary Replace the current user's avatar
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image, at most 5 MiB"
// @Success 200 {object} map[string]interface{} "user"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 422 {object} map[string]string "Not an image"
// @Security BearerAuth
// @Router /profile/avatar [put]
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	// room for the multipart envelope around the file
	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarUploadBytes+64<<10)
	if err := r.ParseMultipartForm(maxAvatarUploadBytes); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			h.mapServiceErrorToHTTP(w, r, services.ErrFileTooLarge)
			return
		}
		h.badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		h.badRequestResponse(w, r, fmt.Errorf("failed to get avatar file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		h.badRequestResponse(w, r, errors.New("content-type header is required for avatar"))
		return
	}

	user, err := h.userService.UpdateAvatar(r.Context(), currentUserID, services.UploadAvatarInput{
		ContentType: contentType,
		Size:        header.Size,
		File:        file,
	})
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// RedirectProfile sends a signed-in visitor to their public profile and
// everyone else to the login page, which returns them here afterwards.
func (h *ProfileHandler) RedirectProfile(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, h.authURL+"/login?callbackUrl=/profile", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/api/users/"+strconv.Itoa(currentUserID), http.StatusFound)
}
