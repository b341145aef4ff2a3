package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-hub/models"
)

var (
	ErrTeamNotFound         = errors.New("team not found")
	ErrTeamNameConflict     = errors.New("team name conflict for this tournament")
	ErrTeamMemberConflict   = errors.New("user is already a member of this team")
	ErrTeamReferenceInvalid = errors.New("team references a missing user or tournament")
)

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.Team) error
	AddMember(ctx context.Context, exec SQLExecutor, member *models.TeamMember) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	CountByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error)
	ListByUser(ctx context.Context, userID int) ([]models.Team, error)
	CountByUser(ctx context.Context, userID int) (int, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTeamRepository) Create(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	query := `
		INSERT INTO teams (name, tournament_id, captain_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		team.Name,
		team.TournamentID,
		team.CaptainID,
	).Scan(&team.ID, scanTime(&team.CreatedAt))

	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return ErrTeamNameConflict
		}
		if isForeignKeyViolation(err) {
			return ErrTeamReferenceInvalid
		}
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *postgresTeamRepository) AddMember(ctx context.Context, exec SQLExecutor, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (team_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		member.TeamID,
		member.UserID,
		member.Role,
	).Scan(&member.ID, scanTime(&member.JoinedAt))

	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return ErrTeamMemberConflict
		}
		if isForeignKeyViolation(err) {
			return ErrTeamReferenceInvalid
		}
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT id, name, tournament_id, captain_id, created_at FROM teams WHERE id = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.TournamentID, &team.CaptainID, &team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *postgresTeamRepository) CountByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error) {
	var count int
	err := r.getExecutor(exec).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM teams WHERE tournament_id = $1`, tournamentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}

// ListByTournament returns the tournament's teams in creation order, each with its
// members (in join order) and the members' public user projection.
func (r *postgresTeamRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error) {
	query := `
		SELECT
			t.id, t.name, t.tournament_id, t.captain_id, t.created_at,
			m.id, m.user_id, m.role, m.joined_at,
			u.username, u.name, u.image_key
		FROM teams t
		LEFT JOIN team_members m ON m.team_id = t.id
		LEFT JOIN users u ON u.id = m.user_id
		WHERE t.tournament_id = $1
		ORDER BY t.created_at ASC, t.id ASC, m.joined_at ASC, m.id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var (
			team     models.Team
			memberID sql.NullInt64
			userID   sql.NullInt64
			role     sql.NullString
			joinedAt sql.NullTime
			username sql.NullString
			name     sql.NullString
			imageKey sql.NullString
		)
		if err := rows.Scan(
			&team.ID, &team.Name, &team.TournamentID, &team.CaptainID, &team.CreatedAt,
			&memberID, &userID, &role, &joinedAt,
			&username, &name, &imageKey,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}

		if n := len(teams); n == 0 || teams[n-1].ID != team.ID {
			team.Members = make([]models.TeamMember, 0)
			teams = append(teams, team)
		}
		if !memberID.Valid {
			continue
		}

		current := &teams[len(teams)-1]
		current.Members = append(current.Members, models.TeamMember{
			ID:       int(memberID.Int64),
			TeamID:   current.ID,
			UserID:   int(userID.Int64),
			Role:     models.TeamMemberRole(role.String),
			JoinedAt: joinedAt.Time,
			User: &models.UserSummary{
				ID:       int(userID.Int64),
				Username: username.String,
				Name:     nullableString(name),
				ImageKey: nullableString(imageKey),
			},
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) ListByUser(ctx context.Context, userID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.name, t.tournament_id, t.captain_id, t.created_at
		FROM teams t
		JOIN team_members m ON m.team_id = t.id
		WHERE m.user_id = $1
		ORDER BY t.created_at DESC, t.id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.TournamentID, &team.CaptainID, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) CountByUser(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM team_members WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count user teams: %w", err)
	}
	return count, nil
}
