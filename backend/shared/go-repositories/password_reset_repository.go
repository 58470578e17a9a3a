package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// PasswordResetRepository stores hashed one-time reset tokens.
type PasswordResetRepository interface {
	Create(ctx context.Context, token *models.PasswordResetToken) error

	// GetByHash returns the token for userID with the given hash, or nil.
	GetByHash(ctx context.Context, userID uuid.UUID, tokenHash string) (*models.PasswordResetToken, error)

	// MarkUsed stamps used_at; a token already used is reported as utils.ErrNoRowsUpdated.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// RemoveAllForUser deletes every outstanding token of a user.
	RemoveAllForUser(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes tokens that expired or were used before cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type passwordResetRepo struct {
	db DB
}

func NewPasswordResetRepository(db DB) PasswordResetRepository {
	return &passwordResetRepo{db}
}

func (r *passwordResetRepo) Create(ctx context.Context, t *models.PasswordResetToken) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at, created_at)
        VALUES ($1, $2, $3, $4, NOW())
    `, t.ID, t.UserID, t.TokenHash, t.ExpiresAt)
	return err
}

func (r *passwordResetRepo) GetByHash(ctx context.Context, userID uuid.UUID, tokenHash string) (*models.PasswordResetToken, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, user_id, token_hash, expires_at, used_at, created_at
        FROM password_reset_tokens
        WHERE user_id=$1 AND token_hash=$2
    `, userID, tokenHash)

	var t models.PasswordResetToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *passwordResetRepo) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE password_reset_tokens SET used_at=$2
        WHERE id=$1 AND used_at IS NULL
    `, id, usedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *passwordResetRepo) RemoveAllForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM password_reset_tokens WHERE user_id=$1`, userID)
	return err
}

func (r *passwordResetRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        DELETE FROM password_reset_tokens
        WHERE expires_at < $1 OR (used_at IS NOT NULL AND used_at < $1)
    `, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
