package middleware

import (
	"crypto/rsa"
	"net/http"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// AdminAuthMiddleware validates a JWT and ensures it carries the "admin" role.
func AdminAuthMiddleware(pub *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := authenticate(w, r, pub)
			if !ok {
				return
			}
			if claims.Role != utils.AdminAccountType {
				utils.RespondErrorWithCode(
					w, http.StatusForbidden, utils.ErrCodeForbidden, "Insufficient permissions",
				)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}
