package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/services"
)

func tournamentRouter(svc services.TournamentService, userID int) chi.Router {
	h := NewTournamentHandler(svc, discardLogger())
	r := chi.NewRouter()
	r.Get("/api/tournaments", h.List)
	r.Get("/api/tournaments/{tournamentId}", h.GetByID)
	r.Group(func(r chi.Router) {
		r.Use(asUser(userID))
		r.Post("/api/tournaments", h.Create)
		r.Patch("/api/tournaments/{tournamentId}/status", h.UpdateStatus)
	})
	return r
}

func TestTournamentHandler_ListParsesFilters(t *testing.T) {
	var got services.ListTournamentsInput
	svc := &stubTournamentService{list: func(ctx context.Context, input services.ListTournamentsInput) ([]models.Tournament, error) {
		got = input
		return []models.Tournament{{ID: 1, Name: "Spring Cup", Status: models.StatusOngoing}}, nil
	}}
	router := tournamentRouter(svc, 1)

	rec := do(t, router, http.MethodGet, "/api/tournaments?status=ongoing&organizer_id=4&limit=5&offset=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.Status)
	assert.Equal(t, models.StatusOngoing, *got.Status)
	require.NotNil(t, got.OrganizerID)
	assert.Equal(t, 4, *got.OrganizerID)
	assert.Equal(t, 5, got.Limit)
	assert.Equal(t, 10, got.Offset)
	assert.Len(t, decodeBody(t, rec)["tournaments"], 1)

	for _, query := range []string{"limit=0", "limit=x", "offset=-1", "organizer_id=abc"} {
		rec := do(t, router, http.MethodGet, "/api/tournaments?"+query, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestTournamentHandler_CreateAndGet(t *testing.T) {
	svc := &stubTournamentService{
		create: func(ctx context.Context, organizerID int, input services.CreateTournamentInput) (*models.Tournament, error) {
			if input.Name == "" {
				return nil, services.ErrTournamentNameRequired
			}
			return &models.Tournament{ID: 9, Name: input.Name, OrganizerID: organizerID, MaxTeams: input.MaxTeams,
				StartDate: input.StartDate, EndDate: input.EndDate, Status: models.StatusRegistration}, nil
		},
		getByID: func(ctx context.Context, id int) (*models.Tournament, error) {
			if id == 9 {
				return &models.Tournament{ID: 9, Name: "Spring Cup"}, nil
			}
			return nil, services.ErrTournamentNotFound
		},
	}
	router := tournamentRouter(svc, 3)

	rec := do(t, router, http.MethodPost, "/api/tournaments",
		`{"name": "Spring Cup", "max_teams": 8, "start_date": "2026-07-01T12:00:00Z", "end_date": "2026-07-08T12:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	tournament := decodeBody(t, rec)["tournament"].(map[string]any)
	assert.EqualValues(t, 3, tournament["organizer_id"])
	assert.Equal(t, "registration", tournament["status"])

	rec = do(t, router, http.MethodPost, "/api/tournaments", `{"name": ""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/tournaments/9", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, http.MethodGet, "/api/tournaments/10", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTournamentHandler_UpdateStatus(t *testing.T) {
	svc := &stubTournamentService{updateStatus: func(ctx context.Context, id, organizerID int, status models.TournamentStatus) (*models.Tournament, error) {
		if organizerID != 3 {
			return nil, services.ErrForbiddenOperation
		}
		if status == models.StatusUpcoming {
			return nil, services.ErrTournamentInvalidStatusTransition
		}
		return &models.Tournament{ID: id, OrganizerID: organizerID, Status: status}, nil
	}}

	rec := do(t, tournamentRouter(svc, 3), http.MethodPatch, "/api/tournaments/9/status", `{"status": "ongoing"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ongoing", decodeBody(t, rec)["tournament"].(map[string]any)["status"])

	rec = do(t, tournamentRouter(svc, 3), http.MethodPatch, "/api/tournaments/9/status", `{"status": "upcoming"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, tournamentRouter(svc, 4), http.MethodPatch, "/api/tournaments/9/status", `{"status": "ongoing"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, tournamentRouter(svc, 3), http.MethodPatch, "/api/tournaments/9/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
