package dtos

import "github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"

// User is the public view of an account, without the password hash.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

func NewUserFromModel(u models.User) User {
	return User{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Type:  u.Type,
	}
}

// ----------------------
// Login
// ----------------------

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ----------------------
// Password reset
// ----------------------

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordResponse carries ResetToken only in development setups where
// email delivery is bypassed.
type ForgotPasswordResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	ResetToken string `json:"resetToken,omitempty"`
	Error      string `json:"error,omitempty"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type ResetPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ----------------------
// Current user
// ----------------------

type MeResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}
