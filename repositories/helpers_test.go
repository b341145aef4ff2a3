package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-hub/db/dbtest"
	"github.com/Dosada05/tournament-hub/models"
)

func newTestDB(t *testing.T) *sql.DB {
	return dbtest.New(t)
}

func seedUser(t *testing.T, conn *sql.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, NewPostgresUserRepository(conn).Create(context.Background(), user))
	return user
}

func seedTournament(t *testing.T, conn *sql.DB, organizerID int) *models.Tournament {
	t.Helper()
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	tournament := &models.Tournament{
		Name:        "Spring Cup",
		OrganizerID: organizerID,
		Status:      models.StatusRegistration,
		MaxTeams:    8,
		StartDate:   start,
		EndDate:     start.Add(72 * time.Hour),
	}
	require.NoError(t, NewPostgresTournamentRepository(conn).Create(context.Background(), tournament))
	return tournament
}

func seedTeam(t *testing.T, conn *sql.DB, tournamentID, captainID int, name string) *models.Team {
	t.Helper()
	repo := NewPostgresTeamRepository(conn)
	team := &models.Team{Name: name, TournamentID: tournamentID, CaptainID: captainID}
	require.NoError(t, repo.Create(context.Background(), nil, team))
	require.NoError(t, repo.AddMember(context.Background(), nil, &models.TeamMember{
		TeamID: team.ID, UserID: captainID, Role: models.RoleCaptain,
	}))
	return team
}

func setCreatedAt(t *testing.T, conn *sql.DB, table string, id int, at time.Time) {
	t.Helper()
	_, err := conn.Exec(`UPDATE `+table+` SET created_at = $1 WHERE id = $2`, at.UTC(), id)
	require.NoError(t, err)
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	require.Equal(t, `%ab\%c\_d%`, containsPattern("Ab%c_D"))
	require.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}

func TestScanTime_AcceptsTextAndTypedValues(t *testing.T) {
	var got time.Time

	require.NoError(t, scanTime(&got).Scan("2026-03-04 05:06:07"))
	require.True(t, got.Equal(time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)))

	require.NoError(t, scanTime(&got).Scan([]byte("2026-03-04T05:06:07Z")))
	require.True(t, got.Equal(time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)))

	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, scanTime(&got).Scan(want))
	require.True(t, got.Equal(want))

	require.Error(t, scanTime(&got).Scan("yesterday"))
}
