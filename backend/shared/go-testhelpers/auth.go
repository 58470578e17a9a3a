package testhelpers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-middleware"
)

const testTokenTTL = 15 * time.Minute

// CreateJWT signs an access token the FakeAPI (and go-middleware) accept.
func (h *TestHelper) CreateJWT(userID uuid.UUID, role string) string {
	signed, err := signJWT(h.PrivateKey, userID.String(), role)
	require.NoError(h.T, err, "Failed to sign test JWT")
	return signed
}

func signJWT(key any, subject, role string) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    middleware.TokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(testTokenTTL)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}
