package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-hub/models"
)

var (
	ErrMatchNotFound       = errors.New("match not found")
	ErrMatchTeamsInvalid   = errors.New("match references a missing team or tournament")
	ErrMatchAlreadyDecided = errors.New("match is not in scheduled state")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetWithTeams(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error)
	UpdateResult(ctx context.Context, id int, team1Score, team2Score int, winnerID *int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `m.id, m.tournament_id, m.team1_id, m.team2_id, m.round, m.scheduled_at,
	m.status, m.team1_score, m.team2_score, m.winner_id, m.created_at`

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	if exec == nil {
		exec = r.db
	}
	if match.Status == "" {
		match.Status = models.MatchStatusScheduled
	}

	query := `
		INSERT INTO matches (tournament_id, team1_id, team2_id, round, scheduled_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := exec.QueryRowContext(ctx, query,
		match.TournamentID,
		match.Team1ID,
		match.Team2ID,
		match.Round,
		match.ScheduledAt.UTC(),
		match.Status,
	).Scan(&match.ID, scanTime(&match.CreatedAt))

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrMatchTeamsInvalid
		}
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

// GetWithTeams loads a match together with both team records and the
// id/organizer of its tournament.
func (r *postgresMatchRepository) GetWithTeams(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT ` + matchColumns + `,
			t1.id, t1.name, t1.tournament_id, t1.captain_id, t1.created_at,
			t2.id, t2.name, t2.tournament_id, t2.captain_id, t2.created_at,
			tr.id, tr.organizer_id
		FROM matches m
		JOIN teams t1 ON t1.id = m.team1_id
		JOIN teams t2 ON t2.id = m.team2_id
		JOIN tournaments tr ON tr.id = m.tournament_id
		WHERE m.id = $1`

	var (
		match      models.Match
		team1      models.Team
		team2      models.Team
		tournament models.TournamentRef
	)

	row := r.db.QueryRowContext(ctx, query, id)
	err := scanMatchRow(row, &match,
		&team1.ID, &team1.Name, &team1.TournamentID, &team1.CaptainID, &team1.CreatedAt,
		&team2.ID, &team2.Name, &team2.TournamentID, &team2.CaptainID, &team2.CreatedAt,
		&tournament.ID, &tournament.OrganizerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	match.Team1 = &team1
	match.Team2 = &team2
	match.Tournament = &tournament
	return &match, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches m
		WHERE m.tournament_id = $1
		ORDER BY m.round ASC, m.scheduled_at ASC, m.id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		if err := scanMatchRow(rows, &match); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// UpdateResult stores the final score of a scheduled match and marks it completed.
func (r *postgresMatchRepository) UpdateResult(ctx context.Context, id int, team1Score, team2Score int, winnerID *int) error {
	query := `
		UPDATE matches
		SET team1_score = $1, team2_score = $2, winner_id = $3, status = $4
		WHERE id = $5 AND status = $6`

	result, err := r.db.ExecContext(ctx, query,
		team1Score, team2Score, winnerID, models.MatchStatusCompleted,
		id, models.MatchStatusScheduled,
	)
	if err != nil {
		return fmt.Errorf("failed to update match result: %w", err)
	}
	return checkRowsAffected(result, ErrMatchAlreadyDecided)
}

func scanMatchRow(row interface{ Scan(dest ...any) error }, match *models.Match, extra ...any) error {
	var team1Score, team2Score, winnerID sql.NullInt64
	dest := []any{
		&match.ID,
		&match.TournamentID,
		&match.Team1ID,
		&match.Team2ID,
		&match.Round,
		&match.ScheduledAt,
		&match.Status,
		&team1Score,
		&team2Score,
		&winnerID,
		&match.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	match.Team1Score = nullableInt(team1Score)
	match.Team2Score = nullableInt(team2Score)
	match.WinnerID = nullableInt(winnerID)
	return nil
}
