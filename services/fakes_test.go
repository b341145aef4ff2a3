package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-hub/brackets"
	"github.com/Dosada05/tournament-hub/db/dbtest"
	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/repositories"
	"github.com/Dosada05/tournament-hub/storage"
)

var errDatabaseDown = errors.New("database is down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo embeds the interface so unexercised methods panic.
type fakeUserRepo struct {
	repositories.UserRepository

	mu          sync.Mutex
	users       map[int]*models.User
	searchCalls int
	searchQuery string
	searchLimit int
	searchErr   error
	getErr      error
}

func (f *fakeUserRepo) Search(ctx context.Context, query string, limit int) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	f.searchQuery = query
	f.searchLimit = limit
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	out := make([]models.User, 0)
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) UpdateImageKey(ctx context.Context, id int, imageKey *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.ImageKey = imageKey
	return nil
}

type fakeTeamRepo struct {
	repositories.TeamRepository

	teams   []models.Team
	count   int
	listErr error
}

func (f *fakeTeamRepo) ListByUser(ctx context.Context, userID int) ([]models.Team, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.teams, nil
}

func (f *fakeTeamRepo) CountByUser(ctx context.Context, userID int) (int, error) {
	return f.count, f.listErr
}

func (f *fakeTeamRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.teams, nil
}

type fakeTournamentRepo struct {
	repositories.TournamentRepository

	tournaments map[int]*models.Tournament
	listFilter  repositories.ListTournamentsFilter
	staleIDs    map[int]bool
}

func (f *fakeTournamentRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Tournament, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTournamentRepo) List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	f.listFilter = filter
	out := make([]models.Tournament, 0)
	for _, t := range f.tournaments {
		if filter.OrganizerID == nil || t.OrganizerID == *filter.OrganizerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTournamentRepo) UpdateStatus(ctx context.Context, id int, from, to models.TournamentStatus) error {
	t, ok := f.tournaments[id]
	if !ok || t.Status != from || f.staleIDs[id] {
		return repositories.ErrTournamentStatusStale
	}
	t.Status = to
	return nil
}

type fakeUploader struct {
	uploaded     map[string][]byte
	contentTypes map[string]string
	deleted      []string
}

var _ storage.FileUploader = (*fakeUploader)(nil)

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploaded: make(map[string][]byte), contentTypes: make(map[string]string)}
}

func (f *fakeUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	f.uploaded[key] = buf.Bytes()
	f.contentTypes[key] = contentType
	return &storage.UploadResult{Key: key, Location: f.GetPublicURL(key)}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}

type recordingHub struct {
	mu       sync.Mutex
	rooms    []string
	messages []brackets.WebSocketMessage
}

func (h *recordingHub) BroadcastToRoom(roomID string, message any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rooms = append(h.rooms, roomID)
	if msg, ok := message.(brackets.WebSocketMessage); ok {
		h.messages = append(h.messages, msg)
	}
}

// fixture is a migrated SQLite database with real repositories.
type fixture struct {
	db          *sql.DB
	users       repositories.UserRepository
	teams       repositories.TeamRepository
	tournaments repositories.TournamentRepository
	matches     repositories.MatchRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conn := dbtest.New(t)
	return &fixture{
		db:          conn,
		users:       repositories.NewPostgresUserRepository(conn),
		teams:       repositories.NewPostgresTeamRepository(conn),
		tournaments: repositories.NewPostgresTournamentRepository(conn),
		matches:     repositories.NewPostgresMatchRepository(conn),
	}
}

func (f *fixture) user(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) tournament(t *testing.T, organizerID, maxTeams int) *models.Tournament {
	t.Helper()
	start := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	tr := &models.Tournament{
		Name:        "Summer Open",
		OrganizerID: organizerID,
		Status:      models.StatusRegistration,
		MaxTeams:    maxTeams,
		StartDate:   start,
		EndDate:     start.Add(7 * 24 * time.Hour),
	}
	require.NoError(t, f.tournaments.Create(context.Background(), tr))
	return tr
}
