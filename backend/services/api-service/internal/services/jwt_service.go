package services

import (
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-middleware"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
)

// JWTService issues RS256 access tokens that go-middleware validates.
type JWTService interface {
	GenerateAccessToken(user *models.User, expiry time.Duration) (string, time.Time, error)
}

type jwtService struct {
	privateKey *rsa.PrivateKey
	now        func() time.Time
}

func NewJWTService(privateKey *rsa.PrivateKey) JWTService {
	return &jwtService{privateKey: privateKey, now: time.Now}
}

func (j *jwtService) GenerateAccessToken(user *models.User, expiry time.Duration) (string, time.Time, error) {
	issuedAt := j.now()
	expiresAt := issuedAt.Add(expiry)

	claims := middleware.Claims{
		Role: user.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    middleware.TokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(j.privateKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
