package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-hub/middleware"
	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stub services embed their interface so unexercised methods panic.

type stubMatchService struct {
	services.MatchService
	getResult    func(ctx context.Context, matchID int) (*models.Match, error)
	recordResult func(ctx context.Context, matchID, organizerID int, input services.RecordResultInput) (*models.Match, error)
	listMatches  func(ctx context.Context, tournamentID int) ([]models.Match, error)
	generate     func(ctx context.Context, tournamentID, organizerID int) ([]models.Match, error)
}

func (s *stubMatchService) GetResult(ctx context.Context, matchID int) (*models.Match, error) {
	return s.getResult(ctx, matchID)
}

func (s *stubMatchService) RecordResult(ctx context.Context, matchID, organizerID int, input services.RecordResultInput) (*models.Match, error) {
	return s.recordResult(ctx, matchID, organizerID, input)
}

func (s *stubMatchService) ListMatches(ctx context.Context, tournamentID int) ([]models.Match, error) {
	return s.listMatches(ctx, tournamentID)
}

func (s *stubMatchService) GenerateSchedule(ctx context.Context, tournamentID, organizerID int) ([]models.Match, error) {
	return s.generate(ctx, tournamentID, organizerID)
}

type stubTeamService struct {
	services.TeamService
	list     func(ctx context.Context, tournamentID int) ([]models.Team, error)
	register func(ctx context.Context, tournamentID, captainID int, input services.RegisterTeamInput) (*models.Team, error)
}

func (s *stubTeamService) ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error) {
	return s.list(ctx, tournamentID)
}

func (s *stubTeamService) RegisterTeam(ctx context.Context, tournamentID, captainID int, input services.RegisterTeamInput) (*models.Team, error) {
	return s.register(ctx, tournamentID, captainID, input)
}

type stubUserService struct {
	services.UserService
	search        func(ctx context.Context, query string) ([]models.UserSummary, error)
	publicProfile func(ctx context.Context, userID int) (*models.PublicProfile, error)
	profile       func(ctx context.Context, userID int) (*models.Profile, error)
	updateAvatar  func(ctx context.Context, userID int, input services.UploadAvatarInput) (*models.User, error)
}

func (s *stubUserService) Search(ctx context.Context, query string) ([]models.UserSummary, error) {
	return s.search(ctx, query)
}

func (s *stubUserService) GetPublicProfile(ctx context.Context, userID int) (*models.PublicProfile, error) {
	return s.publicProfile(ctx, userID)
}

func (s *stubUserService) GetProfile(ctx context.Context, userID int) (*models.Profile, error) {
	return s.profile(ctx, userID)
}

func (s *stubUserService) UpdateAvatar(ctx context.Context, userID int, input services.UploadAvatarInput) (*models.User, error) {
	return s.updateAvatar(ctx, userID, input)
}

type stubAuthService struct {
	services.AuthService
	register func(ctx context.Context, input services.RegisterInput) (*models.User, error)
	login    func(ctx context.Context, input services.LoginInput) (*models.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input services.RegisterInput) (*models.User, error) {
	return s.register(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, input services.LoginInput) (*models.User, error) {
	return s.login(ctx, input)
}

type stubTournamentService struct {
	services.TournamentService
	create       func(ctx context.Context, organizerID int, input services.CreateTournamentInput) (*models.Tournament, error)
	getByID      func(ctx context.Context, id int) (*models.Tournament, error)
	list         func(ctx context.Context, input services.ListTournamentsInput) ([]models.Tournament, error)
	updateStatus func(ctx context.Context, id, organizerID int, status models.TournamentStatus) (*models.Tournament, error)
}

func (s *stubTournamentService) Create(ctx context.Context, organizerID int, input services.CreateTournamentInput) (*models.Tournament, error) {
	return s.create(ctx, organizerID, input)
}

func (s *stubTournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	return s.getByID(ctx, id)
}

func (s *stubTournamentService) List(ctx context.Context, input services.ListTournamentsInput) ([]models.Tournament, error) {
	return s.list(ctx, input)
}

func (s *stubTournamentService) UpdateStatus(ctx context.Context, id, organizerID int, status models.TournamentStatus) (*models.Tournament, error) {
	return s.updateStatus(ctx, id, organizerID, status)
}

// asUser marks every request as coming from userID.
func asUser(userID int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.ContextWithUserID(r.Context(), userID)))
		})
	}
}

func do(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func intPtr(v int) *int { return &v }

var errDatabaseDown = errors.New("database is down")

var testStart = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
