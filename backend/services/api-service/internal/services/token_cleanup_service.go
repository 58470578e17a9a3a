package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgconn"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// One retry on transient network errors (EOF, closed connection).
const cleanupRetryDelay = 3 * time.Second

// TokenCleanupService removes expired and used reset tokens each night.
type TokenCleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type tokenCleanupService struct {
	resetRepo  repositories.PasswordResetRepository
	retryDelay time.Duration
	now        func() time.Time
}

func NewTokenCleanupService(resetRepo repositories.PasswordResetRepository) TokenCleanupService {
	return &tokenCleanupService{
		resetRepo:  resetRepo,
		retryDelay: cleanupRetryDelay,
		now:        time.Now,
	}
}

func isTransient(err error) bool {
	return errors.Is(err, io.EOF) || pgconn.SafeToRetry(err) ||
		strings.Contains(err.Error(), "connection was closed")
}

func (s *tokenCleanupService) CleanupDaily(ctx context.Context) error {
	deleted, err := s.resetRepo.DeleteExpired(ctx, s.now())
	if err != nil && isTransient(err) {
		utils.Logger.WithError(err).Warn("token cleanup hit transient DB error; retrying once")
		time.Sleep(s.retryDelay)
		deleted, err = s.resetRepo.DeleteExpired(ctx, s.now())
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup password_reset_tokens")
		return err
	}

	utils.Logger.WithField("deleted", deleted).Info("Daily reset-token cleanup completed successfully.")
	return nil
}
