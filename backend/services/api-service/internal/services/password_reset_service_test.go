package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

func newResetFixture(t *testing.T, email *fakeEmailService, expose bool) (*passwordResetService, *fakeUserRepo, *fakeResetRepo) {
	t.Helper()
	users := newFakeUserRepo(newTestUser(t, "owner@example.com", "oldpass", utils.UserAccountType))
	resets := newFakeResetRepo()
	svc := NewPasswordResetService(users, resets, email, PasswordResetOptions{
		TokenExpiry:      time.Hour,
		ExposeResetToken: expose,
	}).(*passwordResetService)
	return svc, users, resets
}

func requireAppError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, status, appErr.StatusCode)
	require.Equal(t, code, appErr.Code)
}

func TestRequestReset_UnknownEmail(t *testing.T) {
	svc, _, _ := newResetFixture(t, &fakeEmailService{}, true)

	_, err := svc.RequestReset(context.Background(), "nobody@example.com")
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)
	require.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestRequestReset_ExposesTokenOnlyWhenFlagged(t *testing.T) {
	ctx := context.Background()

	t.Run("flag on", func(t *testing.T) {
		svc, _, resets := newResetFixture(t, &fakeEmailService{}, true)
		resp, err := svc.RequestReset(ctx, "owner@example.com")
		require.NoError(t, err)
		require.True(t, resp.Success)
		require.Len(t, resp.ResetToken, utils.ResetTokenLength)

		stored := resets.all()
		require.Len(t, stored, 1)
		require.Equal(t, utils.HashToken(resp.ResetToken), stored[0].TokenHash)
		require.NotEqual(t, resp.ResetToken, stored[0].TokenHash)
	})

	t.Run("flag off", func(t *testing.T) {
		mailer := &fakeEmailService{enabled: true}
		svc, _, _ := newResetFixture(t, mailer, false)
		resp, err := svc.RequestReset(ctx, "owner@example.com")
		require.NoError(t, err)
		require.True(t, resp.Success)
		require.Empty(t, resp.ResetToken)
		require.Len(t, mailer.sent, 1)
		require.Equal(t, "owner@example.com", mailer.sent[0].email)
	})
}

func TestRequestReset_ReplacesOutstandingTokens(t *testing.T) {
	ctx := context.Background()
	svc, _, resets := newResetFixture(t, &fakeEmailService{}, true)

	first, err := svc.RequestReset(ctx, "owner@example.com")
	require.NoError(t, err)
	second, err := svc.RequestReset(ctx, "owner@example.com")
	require.NoError(t, err)

	require.NotEqual(t, first.ResetToken, second.ResetToken)
	stored := resets.all()
	require.Len(t, stored, 1)
	require.Equal(t, utils.HashToken(second.ResetToken), stored[0].TokenHash)
}

func TestRequestReset_EmailFailure(t *testing.T) {
	mailer := &fakeEmailService{enabled: true, err: utils.ErrExternalServiceFailure}
	svc, _, _ := newResetFixture(t, mailer, false)

	_, err := svc.RequestReset(context.Background(), "owner@example.com")
	requireAppError(t, err, http.StatusBadGateway, utils.ErrCodeExternalServiceFailure)
}

func TestResetPassword_HappyPathThenReplay(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newResetFixture(t, &fakeEmailService{}, true)

	resp, err := svc.RequestReset(ctx, "owner@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, "owner@example.com", resp.ResetToken, "newpass1"))

	u, err := users.GetByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	require.True(t, utils.CheckPasswordHash("newpass1", u.PasswordHash))
	require.False(t, utils.CheckPasswordHash("oldpass", u.PasswordHash))

	err = svc.ResetPassword(ctx, "owner@example.com", resp.ResetToken, "another1")
	requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeInvalidResetToken)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newResetFixture(t, &fakeEmailService{}, true)

	resp, err := svc.RequestReset(ctx, "owner@example.com")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	err = svc.ResetPassword(ctx, "owner@example.com", resp.ResetToken, "newpass1")
	requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeInvalidResetToken)
}

func TestResetPassword_WrongTokenOrEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newResetFixture(t, &fakeEmailService{}, true)

	_, err := svc.RequestReset(ctx, "owner@example.com")
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, "owner@example.com", "not-the-token", "newpass1")
	requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeInvalidResetToken)

	err = svc.ResetPassword(ctx, "stranger@example.com", "not-the-token", "newpass1")
	requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeInvalidResetToken)
}

func TestTokenCleanup_RemovesExpiredAndUsed(t *testing.T) {
	ctx := context.Background()
	svc, _, resets := newResetFixture(t, &fakeEmailService{}, true)

	resp, err := svc.RequestReset(ctx, "owner@example.com")
	require.NoError(t, err)

	cleanup := NewTokenCleanupService(resets)
	require.NoError(t, cleanup.CleanupDaily(ctx))
	require.Len(t, resets.all(), 1, "live token must survive")

	require.NoError(t, svc.ResetPassword(ctx, "owner@example.com", resp.ResetToken, "newpass1"))
	require.NoError(t, cleanup.CleanupDaily(ctx))
	require.Empty(t, resets.all())
}
