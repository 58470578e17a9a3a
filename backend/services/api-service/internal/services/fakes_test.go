package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	cp.Email = strings.ToLower(cp.Email)
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateIfVersion(_ context.Context, u *models.User, expected int64) (pgconn.CommandTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.users[u.ID]
	if !ok || cur.RowVersion != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cp := *u
	cp.RowVersion = expected + 1
	r.users[u.ID] = &cp
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (r *fakeUserRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.User) error) error {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return utils.ErrUserNotFound
	}
	if err := mutate(u); err != nil {
		return err
	}
	_, err = r.UpdateIfVersion(ctx, u, u.RowVersion)
	return err
}

type fakeResetRepo struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]*models.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: map[uuid.UUID]*models.PasswordResetToken{}}
}

func (r *fakeResetRepo) Create(_ context.Context, t *models.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.tokens[t.ID] = &cp
	return nil
}

func (r *fakeResetRepo) GetByHash(_ context.Context, userID uuid.UUID, hash string) (*models.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.UserID == userID && t.TokenHash == hash {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeResetRepo) MarkUsed(_ context.Context, id uuid.UUID, usedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[id]
	if !ok || t.UsedAt != nil {
		return utils.ErrNoRowsUpdated
	}
	t.UsedAt = &usedAt
	return nil
}

func (r *fakeResetRepo) RemoveAllForUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, id)
		}
	}
	return nil
}

func (r *fakeResetRepo) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, t := range r.tokens {
		if t.UsedAt != nil || !cutoff.Before(t.ExpiresAt) {
			delete(r.tokens, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeResetRepo) all() []*models.PasswordResetToken {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.PasswordResetToken, 0, len(r.tokens))
	for _, t := range r.tokens {
		out = append(out, t)
	}
	return out
}

type sentEmail struct {
	name, email, token string
}

type fakeEmailService struct {
	enabled bool
	err     error
	sent    []sentEmail
}

func (f *fakeEmailService) Enabled() bool { return f.enabled }

func (f *fakeEmailService) SendPasswordReset(toName, toEmail, token string, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{toName, toEmail, token})
	return nil
}

func newTestUser(t *testing.T, email, password, kind string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{
		ID:           uuid.New(),
		Name:         "Test " + kind,
		Email:        email,
		PasswordHash: hash,
		Type:         kind,
	}
	u.RowVersion = 1
	return u
}
