package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
)

const userColumns = `id, email, username, password_hash, first_name, last_name,
	is_active, last_login_at, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmailOrUsername returns any user holding the email or the username.
func (r *UserReadRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 OR username = $2
		LIMIT 1
	`
	return r.get(ctx, query, email, username)
}

// GetActiveByEmail returns the active user with the given email.
func (r *UserReadRepository) GetActiveByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND is_active = TRUE
	`
	return r.get(ctx, query, email)
}

// GetByID returns the user with the given id regardless of its active flag.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) get(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	var found any
	if err == nil {
		found = user.UserID
	}
	logQuery(query, args, found, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and fills its timestamps.
// A clash on email or username yields models.ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, email, username, password_hash, first_name, last_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
		RETURNING is_active, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		user.UserID, user.Email, user.Username, user.PasswordHash, user.FirstName, user.LastName)
	err := row.Scan(&user.IsActive, &user.CreatedAt, &user.UpdatedAt)

	// The hash is deliberately left out of the log line.
	logQuery(query, []any{user.UserID, user.Email, user.Username, user.FirstName, user.LastName}, user.CreatedAt, err)

	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return err
	}
	return nil
}

// UpdateLastLogin stamps the user's last successful login.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	const query = `
		UPDATE users
		SET last_login_at = $2, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, userID, at)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID, at}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
