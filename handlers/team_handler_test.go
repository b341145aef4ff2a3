package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/services"
)

func teamRouter(svc services.TeamService, userID int) chi.Router {
	h := NewTeamHandler(svc, discardLogger())
	r := chi.NewRouter()
	r.Get("/api/teams/{tournamentId}", h.ListByTournament)
	r.With(asUser(userID)).Post("/api/teams/{tournamentId}", h.RegisterTeam)
	return r
}

func TestTeamHandler_ListByTournament(t *testing.T) {
	svc := &stubTeamService{list: func(ctx context.Context, tournamentID int) ([]models.Team, error) {
		switch tournamentID {
		case 1:
			return []models.Team{
				{ID: 4, Name: "Alpha", TournamentID: 1, CaptainID: 2, Members: []models.TeamMember{
					{ID: 1, TeamID: 4, UserID: 2, Role: models.RoleCaptain, User: &models.UserSummary{ID: 2, Username: "cap"}},
				}},
				{ID: 5, Name: "Beta", TournamentID: 1, CaptainID: 3},
			}, nil
		case 2:
			return []models.Team{}, nil
		}
		return nil, errors.New("relation teams does not exist")
	}}
	router := teamRouter(svc, 1)

	t.Run("teams with members", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/teams/1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		teams := decodeBody(t, rec)["teams"].([]any)
		require.Len(t, teams, 2)
		first := teams[0].(map[string]any)
		assert.Equal(t, "Alpha", first["name"])
		members := first["members"].([]any)
		assert.Equal(t, "captain", members[0].(map[string]any)["role"])
	})

	t.Run("no teams", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/teams/2", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []any{}, decodeBody(t, rec)["teams"])
	})

	t.Run("any failure is a generic 500", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/teams/3", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"error": messageServerError}, decodeBody(t, rec))
	})
}

func TestTeamHandler_RegisterTeam(t *testing.T) {
	svc := &stubTeamService{register: func(ctx context.Context, tournamentID, captainID int, input services.RegisterTeamInput) (*models.Team, error) {
		if input.Name == "Taken" {
			return nil, services.ErrTeamNameConflict
		}
		if input.Name == "" {
			return nil, services.ErrTeamNameRequired
		}
		return &models.Team{ID: 10, Name: input.Name, TournamentID: tournamentID, CaptainID: captainID}, nil
	}}
	router := teamRouter(svc, 6)

	rec := do(t, router, http.MethodPost, "/api/teams/2", `{"name": "Gamma", "member_ids": [7]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	team := decodeBody(t, rec)["team"].(map[string]any)
	assert.EqualValues(t, 6, team["captain_id"])
	assert.EqualValues(t, 2, team["tournament_id"])

	rec = do(t, router, http.MethodPost, "/api/teams/2", `{"name": "Taken"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/teams/2", `{"name": ""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
