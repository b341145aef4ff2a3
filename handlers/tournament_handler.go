package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dosada05/tournament-hub/middleware"
	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/services"
)

type TournamentHandler struct {
	responder
	tournamentService services.TournamentService
}

func NewTournamentHandler(tournamentService services.TournamentService, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{
		responder:         responder{logger: logger},
		tournamentService: tournamentService,
	}
}

// Create godoc
// @Summary Create a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param body body services.CreateTournamentInput true "Tournament data"
// @Success 201 {object} map[string]interface{} "tournament"
// @Failure 422 {object} map[string]string "Validation failed"
// @Security BearerAuth
// @Router /tournaments [post]
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, "authentication required to create tournament")
		return
	}

	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.Create(r.Context(), currentUserID, input)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GetByID godoc
// @Summary Get a tournament
// @Tags tournaments
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Success 200 {object} map[string]interface{} "tournament"
// @Failure 404 {object} map[string]string "Tournament not found"
// @Router /tournaments/{tournamentId} [get]
func (h *TournamentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}

	tournament, err := h.tournamentService.GetByID(r.Context(), id)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// List godoc
// @Summary List tournaments
// @Tags tournaments
// @Produce json
// @Param status query string false "Status filter"
// @Param organizer_id query int false "Organizer filter"
// @Param limit query int false "Page size, default 20, at most 100"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} map[string]interface{} "tournaments"
// @Router /tournaments [get]
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	var input services.ListTournamentsInput
	query := r.URL.Query()

	if organizerIDStr := query.Get("organizer_id"); organizerIDStr != "" {
		id, err := strconv.Atoi(organizerIDStr)
		if err != nil || id <= 0 {
			h.badRequestResponse(w, r, errors.New("invalid organizer_id query parameter"))
			return
		}
		input.OrganizerID = &id
	}
	if statusStr := query.Get("status"); statusStr != "" {
		status := models.TournamentStatus(statusStr)
		input.Status = &status
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			h.badRequestResponse(w, r, errors.New("invalid limit query parameter"))
			return
		}
		input.Limit = limit
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			h.badRequestResponse(w, r, errors.New("invalid offset query parameter"))
			return
		}
		input.Offset = offset
	}

	tournaments, err := h.tournamentService.List(r.Context(), input)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

type updateStatusRequest struct {
	Status models.TournamentStatus `json:"status"`
}

// UpdateStatus godoc
// @Summary Move a tournament to another status
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Param body body updateStatusRequest true "Target status"
// @Success 200 {object} map[string]interface{} "tournament"
// @Failure 403 {object} map[string]string "Not the organizer"
// @Failure 422 {object} map[string]string "Transition not allowed"
// @Security BearerAuth
// @Router /tournaments/{tournamentId}/status [patch]
func (h *TournamentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, "authentication required to update tournament")
		return
	}

	var input updateStatusRequest
	if err := readJSON(w, r, &input); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if input.Status == "" {
		h.badRequestResponse(w, r, errors.New("status is required"))
		return
	}

	tournament, err := h.tournamentService.UpdateStatus(r.Context(), id, currentUserID, input.Status)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
