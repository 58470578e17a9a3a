package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

const (
	resetTokenIssuedMessage = "Reset token generated. Check your email for the token."
	resetTokenDevMessage    = "Reset token generated."

	// PasswordResetMessage is returned once a reset succeeds.
	PasswordResetMessage = "Password has been reset successfully."
)

// PasswordResetOptions carries the config knobs the reset flow depends on.
type PasswordResetOptions struct {
	TokenExpiry      time.Duration
	ExposeResetToken bool
}

// PasswordResetService issues and redeems single-use reset tokens.
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) (*dtos.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, email, token, newPassword string) error
}

type passwordResetService struct {
	userRepo  repositories.UserRepository
	resetRepo repositories.PasswordResetRepository
	email     EmailService
	opts      PasswordResetOptions
	now       func() time.Time
}

func NewPasswordResetService(
	userRepo repositories.UserRepository,
	resetRepo repositories.PasswordResetRepository,
	email EmailService,
	opts PasswordResetOptions,
) PasswordResetService {
	return &passwordResetService{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		email:     email,
		opts:      opts,
		now:       time.Now,
	}
}

func (s *passwordResetService) RequestReset(ctx context.Context, email string) (*dtos.ForgotPasswordResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "No account found with that email",
			Err:        utils.ErrUserNotFound,
		}
	}

	if err := s.resetRepo.RemoveAllForUser(ctx, user.ID); err != nil {
		return nil, err
	}

	rawToken := utils.RandomString(utils.ResetTokenLength)
	now := s.now()
	record := &models.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: utils.HashToken(rawToken),
		ExpiresAt: now.Add(s.opts.TokenExpiry),
		CreatedAt: now,
	}
	if err := s.resetRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	resp := &dtos.ForgotPasswordResponse{Success: true, Message: resetTokenIssuedMessage}

	switch {
	case s.email.Enabled():
		if err := s.email.SendPasswordReset(user.Name, user.Email, rawToken, s.opts.TokenExpiry); err != nil {
			if !s.opts.ExposeResetToken {
				return nil, &utils.AppError{
					StatusCode: http.StatusBadGateway,
					Code:       utils.ErrCodeExternalServiceFailure,
					Message:    "Could not send the reset email, please try again later",
					Err:        err,
				}
			}
			utils.Logger.WithError(err).Warn("Reset email failed; token is exposed in the response instead")
		}
	case !s.opts.ExposeResetToken:
		utils.Logger.WithField("user_id", user.ID).Warn("Email delivery disabled; reset token was issued but not delivered")
	}

	if s.opts.ExposeResetToken {
		resp.ResetToken = rawToken
		resp.Message = resetTokenDevMessage
	}
	utils.Logger.WithField("user_id", user.ID).Info("Password reset token issued")
	return resp, nil
}

func (s *passwordResetService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	invalid := &utils.AppError{
		StatusCode: http.StatusBadRequest,
		Code:       utils.ErrCodeInvalidResetToken,
		Message:    "Invalid or expired reset token",
		Err:        utils.ErrInvalidResetToken,
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return invalid
	}

	record, err := s.resetRepo.GetByHash(ctx, user.ID, utils.HashToken(token))
	if err != nil {
		return err
	}
	if record == nil || !record.Usable(s.now()) {
		return invalid
	}

	// Claim the token before touching the password so a replay loses.
	if err := s.resetRepo.MarkUsed(ctx, record.ID, s.now()); err != nil {
		if errors.Is(err, utils.ErrNoRowsUpdated) {
			return invalid
		}
		return err
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateWithRetry(ctx, user.ID, func(u *models.User) error {
		u.PasswordHash = newHash
		return nil
	}); err != nil {
		return err
	}

	utils.Logger.WithField("user_id", user.ID).Info("Password reset completed")
	return nil
}
