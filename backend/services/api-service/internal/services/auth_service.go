package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// AuthService handles credential checks and token issuance.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	jwtService  JWTService
	tokenExpiry time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService JWTService,
	tokenExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		tokenExpiry: tokenExpiry,
	}
}

// Login verifies the password and returns the account with a signed access
// token. Unknown email and wrong password fail identically.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeInvalidCredentials,
			Message:    "Invalid email or password",
			Err:        utils.ErrInvalidCredentials,
		}
	}

	token, _, err := s.jwtService.GenerateAccessToken(user, s.tokenExpiry)
	if err != nil {
		return nil, "", err
	}
	utils.Logger.WithField("user_id", user.ID).Info("User logged in")
	return user, token, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}
