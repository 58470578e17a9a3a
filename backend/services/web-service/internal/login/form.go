// Package login signs visitors in against the API.
package login

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/apiclient"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/session"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

const (
	MsgAccessDenied  = "Access denied. Admin privileges required."
	MsgLoginFailed   = "Login failed. Please try again."
	MsgMissingFields = "Email and password are required."
	MsgInvalidEmail  = "Please enter a valid email address."
)

// Error is a failed submission; Message is shown to the visitor.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

var validate = validator.New()

// Form posts credentials to /auth/login. An AdminOnly form also rejects
// accounts whose type is not admin.
type Form struct {
	AdminOnly bool

	api        *apiclient.Client
	sessionTTL time.Duration
	now        func() time.Time
}

func NewForm(api *apiclient.Client, adminOnly bool, sessionTTL time.Duration) *Form {
	return &Form{AdminOnly: adminOnly, api: api, sessionTTL: sessionTTL, now: time.Now}
}

// Submit returns the new session, or an *Error describing why not.
func (f *Form) Submit(ctx context.Context, email, password string) (*session.Session, error) {
	creds := credentials{Email: strings.TrimSpace(email), Password: password}
	if err := validate.Struct(creds); err != nil {
		msg := MsgMissingFields
		for _, d := range dtos.NewValidationErrorDetails(err) {
			if d.Code == "email" {
				msg = MsgInvalidEmail
			}
		}
		return nil, &Error{Message: msg, Err: err}
	}

	var resp dtos.LoginResponse
	err := f.api.Post(ctx, "/auth/login", dtos.LoginRequest{Email: creds.Email, Password: creds.Password}, &resp)
	if err != nil {
		utils.Logger.WithError(err).Warn("Login request failed")
		return nil, &Error{Message: apiclient.ServerMessage(err, MsgLoginFailed), Err: err}
	}
	if !resp.Success || resp.User == nil || resp.Token == "" {
		msg := resp.Error
		if msg == "" {
			msg = MsgLoginFailed
		}
		return nil, &Error{Message: msg}
	}

	if f.AdminOnly && resp.User.Type != utils.AdminAccountType {
		utils.Logger.WithField("user_id", resp.User.ID).Warn("Non-admin attempted admin login")
		return nil, &Error{Message: MsgAccessDenied}
	}

	return &session.Session{
		UserID:    resp.User.ID,
		Name:      resp.User.Name,
		Email:     resp.User.Email,
		Type:      resp.User.Type,
		APIToken:  resp.Token,
		ExpiresAt: f.now().Add(f.sessionTTL),
	}, nil
}
