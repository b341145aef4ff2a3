package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-hub/middleware"
	"github.com/Dosada05/tournament-hub/services"
)

type MatchHandler struct {
	responder
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		responder:    responder{logger: logger},
		matchService: matchService,
	}
}

// GetResult godoc
// @Summary Get a match result
// @Tags results
// @Description Returns the match with both teams and the id and organizer of its tournament.
// @Produce json
// @Param matchId path int true "Match ID"
// @Success 200 {object} map[string]interface{} "match"
// @Failure 404 {object} map[string]string "Match not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /results/{matchId} [get]
func (h *MatchHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}

	match, err := h.matchService.GetResult(r.Context(), matchID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// RecordResult godoc
// @Summary Record a match result
// @Tags results
// @Accept json
// @Produce json
// @Param matchId path int true "Match ID"
// @Param body body services.RecordResultInput true "Final score"
// @Success 200 {object} map[string]interface{} "match"
// @Failure 403 {object} map[string]string "Not the tournament organizer"
// @Failure 409 {object} map[string]string "Result already recorded"
// @Security BearerAuth
// @Router /results/{matchId} [put]
func (h *MatchHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	var input services.RecordResultInput
	if err := readJSON(w, r, &input); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.RecordResult(r.Context(), matchID, currentUserID, input)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ScheduleMatch godoc
// @Summary Schedule a single match
// @Tags results
// @Accept json
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Param body body services.ScheduleMatchInput true "Match data"
// @Success 201 {object} map[string]interface{} "match"
// @Failure 403 {object} map[string]string "Not the tournament organizer"
// @Failure 422 {object} map[string]string "Invalid teams or tournament closed"
// @Security BearerAuth
// @Router /tournaments/{tournamentId}/matches [post]
func (h *MatchHandler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	var input services.ScheduleMatchInput
	if err := readJSON(w, r, &input); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.ScheduleMatch(r.Context(), tournamentID, currentUserID, input)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GenerateSchedule godoc
// @Summary Generate a round-robin schedule
// @Tags results
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Success 201 {object} map[string]interface{} "matches"
// @Failure 403 {object} map[string]string "Not the tournament organizer"
// @Failure 409 {object} map[string]string "Schedule already exists"
// @Failure 422 {object} map[string]string "Fewer than two teams"
// @Security BearerAuth
// @Router /tournaments/{tournamentId}/schedule [post]
func (h *MatchHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	matches, err := h.matchService.GenerateSchedule(r.Context(), tournamentID, currentUserID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListMatches godoc
// @Summary List a tournament's matches
// @Tags results
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Success 200 {object} map[string]interface{} "matches"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tournaments/{tournamentId}/matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}

	matches, err := h.matchService.ListMatches(r.Context(), tournamentID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
