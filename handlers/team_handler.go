package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-hub/middleware"
	"github.com/Dosada05/tournament-hub/services"
)

type TeamHandler struct {
	responder
	teamService services.TeamService
}

func NewTeamHandler(teamService services.TeamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		responder:   responder{logger: logger},
		teamService: teamService,
	}
}

// ListByTournament godoc
// @Summary List the teams of a tournament
// @Tags teams
// @Description Teams in registration order, each with its members. Unknown tournaments yield an empty list.
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Success 200 {object} map[string]interface{} "teams"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /teams/{tournamentId} [get]
func (h *TeamHandler) ListByTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}

	teams, err := h.teamService.ListByTournament(r.Context(), tournamentID)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// RegisterTeam godoc
// @Summary Register a team for a tournament
// @Tags teams
// @Accept json
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Param body body services.RegisterTeamInput true "Team name and member ids"
// @Success 201 {object} map[string]interface{} "team"
// @Failure 409 {object} map[string]string "Name taken or tournament full"
// @Failure 422 {object} map[string]string "Validation failed"
// @Security BearerAuth
// @Router /teams/{tournamentId} [post]
func (h *TeamHandler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
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

	var input services.RegisterTeamInput
	if err := readJSON(w, r, &input); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.RegisterTeam(r.Context(), tournamentID, currentUserID, input)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"team": team}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
