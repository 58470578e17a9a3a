// go-repositories/user_repository.go
package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
)

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateIfVersion(ctx context.Context, user *models.User, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.User) error) error
}

type userRepo struct {
	*BaseVersionedRepo[*models.User]
	db DB
}

// NewUserRepository creates a new instance of the user repository.
func NewUserRepository(db DB) UserRepository {
	r := &userRepo{db: db}
	selectStmt := baseSelectUser() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, r.scanUser)
	return r
}

// Create stores the user; the caller hashes the password beforehand.
// Emails are stored lower-cased so lookups are case-insensitive.
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (
            id, name, email, password_hash, type,
            created_at, updated_at, row_version
        ) VALUES ($1, $2, $3, $4, $5, NOW(), NOW(), 1)
    `, user.ID, user.Name, normalizeEmail(user.Email), user.PasswordHash, user.Type)
	return err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE email=$1", normalizeEmail(email))
	return r.scanUser(row)
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *userRepo) UpdateIfVersion(ctx context.Context, user *models.User, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE users SET
            name=$1, password_hash=$2, type=$3,
            updated_at=NOW(), row_version=row_version+1
        WHERE id=$4 AND row_version=$5`
	return r.db.Exec(ctx, sql, user.Name, user.PasswordHash, user.Type, user.ID, expected)
}

func (r *userRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.User) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func baseSelectUser() string {
	return `
        SELECT id, name, email, password_hash, type,
               row_version, created_at, updated_at
        FROM users`
}

func (r *userRepo) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Type,
		&u.RowVersion, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
