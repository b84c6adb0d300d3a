package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calebmorton/hireboard/internal/database"
	"github.com/calebmorton/hireboard/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{pool: db.Pool}
}

// rowScanner interface for scanning user rows (supports both single row and multiple rows)
type rowScanner interface {
	Scan(dest ...interface{}) error
}

const userColumns = `id, email, password_hash, name, role, profile_completed, failed_attempts, locked_until, last_login_at, created_at, updated_at`

// scanUserRow handles nullable fields and populates a User model from a database row
func scanUserRow(scanner rowScanner) (*models.User, error) {
	var user models.User
	var lockedUntil, lastLoginAt *time.Time

	err := scanner.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.Role, &user.ProfileCompleted, &user.FailedAttempts,
		&lockedUntil, &lastLoginAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	user.LockedUntil = lockedUntil
	user.LastLoginAt = lastLoginAt

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE id = $1
	`

	user, err := scanUserRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE email = $1
	`

	user, err := scanUserRow(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = uuid.New().String()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if user.Role == "" {
		user.Role = models.RoleCandidate
	}

	query := `
		INSERT INTO users (id, email, password_hash, name, role, profile_completed, failed_attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns + `
	`

	createdUser, err := scanUserRow(r.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name,
		user.Role, user.ProfileCompleted, user.FailedAttempts,
		user.CreatedAt, user.UpdatedAt,
	))

	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, err
	}

	return createdUser, nil
}

// Update applies a partial update to the account's mutable fields. Nil
// pointers leave the current value untouched.
func (r *UserRepository) Update(ctx context.Context, id string, name *string, profileCompleted *bool) (*models.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($1, name),
		    profile_completed = COALESCE($2, profile_completed),
		    updated_at = $3
		WHERE id = $4
		RETURNING ` + userColumns + `
	`

	updatedUser, err := scanUserRow(r.pool.QueryRow(ctx, query, name, profileCompleted, time.Now(), id))
	if err != nil {
		return nil, err
	}

	return updatedUser, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error {
	query := `
		UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// RecordFailedAttempt increments the failed-login counter and, when the
// counter reaches maxAttempts, sets the lock expiry in the same statement.
// Concurrent failures each land their own increment; exactly one of them
// crosses the threshold and sets the lock.
func (r *UserRepository) RecordFailedAttempt(ctx context.Context, id string, maxAttempts int, lockDuration time.Duration) (*models.User, error) {
	query := `
		UPDATE users
		SET failed_attempts = failed_attempts + 1,
		    locked_until = CASE
		        WHEN failed_attempts + 1 >= $2 THEN now() + $3
		        ELSE locked_until
		    END,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	user, err := scanUserRow(r.pool.QueryRow(ctx, query, id, maxAttempts, lockDuration))
	if err != nil {
		return nil, fmt.Errorf("failed to record failed attempt: %w", err)
	}

	return user, nil
}

// RecordSuccessfulLogin resets the failed-login counter, clears any lock and
// stamps the login time.
func (r *UserRepository) RecordSuccessfulLogin(ctx context.Context, id string) (*models.User, error) {
	query := `
		UPDATE users
		SET failed_attempts = 0,
		    locked_until = NULL,
		    last_login_at = now(),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	user, err := scanUserRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to record successful login: %w", err)
	}

	return user, nil
}
