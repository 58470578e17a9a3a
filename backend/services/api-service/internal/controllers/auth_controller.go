package controllers

import (
	"net/http"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/services"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-middleware"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

type AuthController struct {
	authService  services.AuthService
	resetService services.PasswordResetService
}

func NewAuthController(authService services.AuthService, resetService services.PasswordResetService) *AuthController {
	return &AuthController{authService: authService, resetService: resetService}
}

// LoginHandler serves POST /auth/login.
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	u := dtos.NewUserFromModel(*user)
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Success: true,
		User:    &u,
		Token:   token,
	})
}

// ForgotPasswordHandler serves POST /auth/forgot-password.
func (c *AuthController) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ForgotPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.resetService.RequestReset(r.Context(), req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ResetPasswordHandler serves POST /auth/reset-password.
func (c *AuthController) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.resetService.ResetPassword(r.Context(), req.Email, req.Token, req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ResetPasswordResponse{
		Success: true,
		Message: services.PasswordResetMessage,
	})
}

// MeHandler serves GET /auth/me behind AuthMiddleware.
func (c *AuthController) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing user in context")
		return
	}

	user, err := c.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MeResponse{Success: true, User: dtos.NewUserFromModel(*user)})
}
