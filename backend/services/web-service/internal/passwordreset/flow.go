// Package passwordreset drives the two-step forgot-password wizard.
package passwordreset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/apiclient"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// Step is where the visitor is in the wizard.
type Step int

const (
	StepRequestToken Step = iota
	StepResetPassword
	StepDone
)

const (
	DefaultRedirectDelay = 2 * time.Second
	LoginPath            = "/login"

	MsgTokenIssued    = "Reset token generated. Check your email for the token."
	MsgTokenIssuedDev = "Reset token generated: %s"
	MsgResetDone      = "Password reset successful! Redirecting to login..."
	MsgRequestFailed  = "Failed to generate reset token. Please try again."
	MsgResetFailed    = "Failed to reset password. Please try again."
	MsgEmailRequired  = "Email is required."
	MsgFieldsRequired = "Token and new password are required."
	MsgWrongStep      = "Request a reset token first."
)

// State is what survives between requests.
type State struct {
	Step  Step   `json:"step"`
	Email string `json:"email"`
}

// Navigator moves the visitor to another page.
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Flow is one visitor's wizard. Failures keep the current step and set
// ErrorMessage; successes advance and set Message.
type Flow struct {
	api           *apiclient.Client
	nav           Navigator
	afterFunc     func(time.Duration, func())
	redirectDelay time.Duration

	mu      sync.Mutex
	step    Step
	email   string
	message string
	errMsg  string
}

type Option func(*Flow)

// WithNavigator is called with LoginPath RedirectDelay after a successful reset.
func WithNavigator(n Navigator) Option {
	return func(f *Flow) { f.nav = n }
}

// WithAfterFunc replaces the timer used to schedule the redirect.
func WithAfterFunc(fn func(time.Duration, func())) Option {
	return func(f *Flow) { f.afterFunc = fn }
}

func WithRedirectDelay(d time.Duration) Option {
	return func(f *Flow) { f.redirectDelay = d }
}

func NewFlow(api *apiclient.Client, opts ...Option) *Flow {
	f := &Flow{
		api:           api,
		redirectDelay: DefaultRedirectDelay,
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SubmitEmail asks the API for a reset token.
func (f *Flow) SubmitEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	f.mu.Lock()
	step := f.step
	f.mu.Unlock()
	if step != StepRequestToken {
		return f.fail(MsgWrongStep, nil)
	}
	if email == "" {
		return f.fail(MsgEmailRequired, nil)
	}

	var resp dtos.ForgotPasswordResponse
	if err := f.api.Post(ctx, "/auth/forgot-password", dtos.ForgotPasswordRequest{Email: email}, &resp); err != nil {
		utils.Logger.WithError(err).Warn("Forgot-password request failed")
		return f.fail(apiclient.ServerMessage(err, MsgRequestFailed), err)
	}
	if !resp.Success {
		return f.fail(orFallback(resp.Error, MsgRequestFailed), nil)
	}

	msg := MsgTokenIssued
	if resp.ResetToken != "" {
		msg = fmt.Sprintf(MsgTokenIssuedDev, resp.ResetToken)
	}

	f.mu.Lock()
	f.step = StepResetPassword
	f.email = email
	f.message = msg
	f.errMsg = ""
	f.mu.Unlock()
	return nil
}

// SubmitReset redeems token for the email given in step one.
func (f *Flow) SubmitReset(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)

	f.mu.Lock()
	step, email := f.step, f.email
	f.mu.Unlock()
	if step != StepResetPassword {
		return f.fail(MsgWrongStep, nil)
	}
	if token == "" || newPassword == "" {
		return f.fail(MsgFieldsRequired, nil)
	}

	req := dtos.ResetPasswordRequest{Email: email, Token: token, NewPassword: newPassword}
	var resp dtos.ResetPasswordResponse
	if err := f.api.Post(ctx, "/auth/reset-password", req, &resp); err != nil {
		utils.Logger.WithError(err).Warn("Reset-password request failed")
		return f.fail(apiclient.ServerMessage(err, MsgResetFailed), err)
	}
	if !resp.Success {
		return f.fail(orFallback(resp.Error, MsgResetFailed), nil)
	}

	f.mu.Lock()
	f.step = StepDone
	f.message = MsgResetDone
	f.errMsg = ""
	nav := f.nav
	f.mu.Unlock()

	if nav != nil {
		f.afterFunc(f.redirectDelay, func() { nav.Navigate(LoginPath) })
	}
	return nil
}

func (f *Flow) fail(msg string, cause error) error {
	f.mu.Lock()
	f.errMsg = msg
	f.mu.Unlock()
	if cause != nil {
		return fmt.Errorf("%s: %w", msg, cause)
	}
	return errors.New(msg)
}

func orFallback(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Flow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

func (f *Flow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

func (f *Flow) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Redirect reports where and after how long the page should send the
// visitor once the flow is done.
func (f *Flow) Redirect() (path string, delay time.Duration, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepDone {
		return "", 0, false
	}
	return LoginPath, f.redirectDelay, true
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{Step: f.step, Email: f.email}
}

// Resume restores a saved State. Messages are not carried over.
func (f *Flow) Resume(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.Step < StepRequestToken || s.Step > StepDone {
		s = State{}
	}
	f.step = s.Step
	f.email = s.Email
	f.message = ""
	f.errMsg = ""
}
