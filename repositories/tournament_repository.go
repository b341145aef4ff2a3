package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-hub/models"
)

var (
	ErrTournamentNotFound       = errors.New("tournament not found")
	ErrTournamentInvalidOrg     = errors.New("invalid organizer reference")
	ErrTournamentStatusStale    = errors.New("tournament status changed concurrently")
	ErrScheduleAlreadyGenerated = errors.New("tournament schedule already generated")
)

type ListTournamentsFilter struct {
	OrganizerID *int
	Status      *models.TournamentStatus
	Limit       int
	Offset      int
}

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	UpdateStatus(ctx context.Context, id int, from, to models.TournamentStatus) error
	MarkScheduleGenerated(ctx context.Context, exec SQLExecutor, id int, at time.Time) error
	ListDueForStatusSync(ctx context.Context, now time.Time) ([]models.Tournament, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `id, name, description, game, organizer_id, status, max_teams, start_date, end_date, created_at`

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (name, description, game, organizer_id, status, max_teams, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		t.Name, t.Description, t.Game, t.OrganizerID, t.Status, t.MaxTeams,
		t.StartDate.UTC(), t.EndDate.UTC(),
	).Scan(&t.ID, scanTime(&t.CreatedAt))

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrTournamentInvalidOrg
		}
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	return nil
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`

	t := &models.Tournament{}
	if err := scanTournamentRow(r.getExecutor(exec).QueryRowContext(ctx, query, id), t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE 1=1`

	args := []any{}
	argID := 1

	if filter.OrganizerID != nil {
		query += fmt.Sprintf(" AND organizer_id = $%d", argID)
		args = append(args, *filter.OrganizerID)
		argID++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argID)
		args = append(args, *filter.Status)
		argID++
	}

	query += " ORDER BY start_date DESC, id DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	return r.queryTournaments(ctx, query, args...)
}

// UpdateStatus moves a tournament from one status to another. The from status
// guards against racing writers: if it no longer matches, nothing changes.
func (r *postgresTournamentRepository) UpdateStatus(ctx context.Context, id int, from, to models.TournamentStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tournaments SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from,
	)
	if err != nil {
		return fmt.Errorf("failed to update tournament status: %w", err)
	}
	return checkRowsAffected(result, ErrTournamentStatusStale)
}

// MarkScheduleGenerated sets schedule_generated_at once. A second call for the
// same tournament gets ErrScheduleAlreadyGenerated, so callers that run it in
// their insert transaction cannot both commit a schedule.
func (r *postgresTournamentRepository) MarkScheduleGenerated(ctx context.Context, exec SQLExecutor, id int, at time.Time) error {
	result, err := r.getExecutor(exec).ExecContext(ctx,
		`UPDATE tournaments SET schedule_generated_at = $1 WHERE id = $2 AND schedule_generated_at IS NULL`,
		at.UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark schedule generated: %w", err)
	}
	return checkRowsAffected(result, ErrScheduleAlreadyGenerated)
}

// ListDueForStatusSync returns tournaments whose dates say they should have moved on:
// registration past its start date, or ongoing past its end date.
func (r *postgresTournamentRepository) ListDueForStatusSync(ctx context.Context, now time.Time) ([]models.Tournament, error) {
	query := `
		SELECT ` + tournamentColumns + `
		FROM tournaments
		WHERE (status = $1 AND start_date <= $2)
		   OR (status = $3 AND end_date <= $2)
		ORDER BY id ASC`

	return r.queryTournaments(ctx, query,
		models.StatusRegistration, now.UTC(), models.StatusOngoing,
	)
}

func (r *postgresTournamentRepository) queryTournaments(ctx context.Context, query string, args ...any) ([]models.Tournament, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := scanTournamentRow(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", err)
		}
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func scanTournamentRow(row interface{ Scan(dest ...any) error }, t *models.Tournament) error {
	var description, game sql.NullString
	err := row.Scan(
		&t.ID, &t.Name, &description, &game, &t.OrganizerID, &t.Status,
		&t.MaxTeams, &t.StartDate, &t.EndDate, &t.CreatedAt,
	)
	if err != nil {
		return err
	}
	t.Description = nullableString(description)
	t.Game = nullableString(game)
	return nil
}
