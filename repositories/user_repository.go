package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-hub/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserEmailConflict    = errors.New("user email conflict")
	ErrUserUsernameConflict = errors.New("user username conflict")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Search(ctx context.Context, query string, limit int) ([]models.User, error)
	UpdateImageKey(ctx context.Context, id int, imageKey *string) error
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

const userColumns = `id, username, email, name, password_hash, image_key, created_at`

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Username,
		user.Email,
		user.Name,
		user.PasswordHash,
	).Scan(&user.ID, scanTime(&user.CreatedAt))

	if err != nil {
		if target, ok := uniqueViolation(err); ok {
			switch {
			case strings.Contains(target, "email"):
				return ErrUserEmailConflict
			case strings.Contains(target, "username"):
				return ErrUserUsernameConflict
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanUser(ctx, query, email)
}

// Search matches query as a case-insensitive substring of username or email, newest first.
func (r *postgresUserRepository) Search(ctx context.Context, query string, limit int) ([]models.User, error) {
	stmt := `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(username) LIKE $1 ESCAPE '\' OR LOWER(email) LIKE $1 ESCAPE '\'
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, stmt, containsPattern(query), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := scanUserRow(rows, &user); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *postgresUserRepository) UpdateImageKey(ctx context.Context, id int, imageKey *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET image_key = $1 WHERE id = $2`, imageKey, id)
	if err != nil {
		return fmt.Errorf("failed to update user image: %w", err)
	}
	return checkRowsAffected(result, ErrUserNotFound)
}

func (r *postgresUserRepository) scanUser(ctx context.Context, query string, args ...any) (*models.User, error) {
	user := &models.User{}
	if err := scanUserRow(r.db.QueryRowContext(ctx, query, args...), user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUserRow(row interface{ Scan(dest ...any) error }, user *models.User) error {
	var name, imageKey sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&name,
		&user.PasswordHash,
		&imageKey,
		&user.CreatedAt,
	)
	if err != nil {
		return err
	}
	user.Name = nullableString(name)
	user.ImageKey = nullableString(imageKey)
	return nil
}
