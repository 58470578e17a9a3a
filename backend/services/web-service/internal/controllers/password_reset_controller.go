package controllers

import (
	"net/http"
	"time"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/apiclient"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/passwordreset"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/session"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/views"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// ResetStore keeps the wizard's step and email between requests.
type ResetStore = session.Store[passwordreset.State]

type PasswordResetController struct {
	pages
	api           *apiclient.Client
	states        ResetStore
	redirectDelay time.Duration
}

func NewPasswordResetController(
	renderer *views.Renderer,
	sessions SessionStore,
	api *apiclient.Client,
	states ResetStore,
	redirectDelay time.Duration,
) *PasswordResetController {
	return &PasswordResetController{
		pages:         pages{renderer: renderer, sessions: sessions},
		api:           api,
		states:        states,
		redirectDelay: redirectDelay,
	}
}

func (c *PasswordResetController) newFlow(r *http.Request) *passwordreset.Flow {
	flow := passwordreset.NewFlow(c.api, passwordreset.WithRedirectDelay(c.redirectDelay))
	if s, err := c.states.Get(r); err == nil {
		flow.Resume(s)
	}
	return flow
}

// PageHandler shows the current step. A finished wizard starts over.
func (c *PasswordResetController) PageHandler(w http.ResponseWriter, r *http.Request) {
	flow := c.newFlow(r)
	if flow.Step() == passwordreset.StepDone {
		c.states.Clear(w)
		flow.Resume(passwordreset.State{})
	}
	c.render(w, r, http.StatusOK, flow)
}

// SubmitHandler handles both steps; the hidden "step" field says which.
func (c *PasswordResetController) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.renderError(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}
	flow := c.newFlow(r)
	ctx := r.Context()

	var err error
	switch r.PostFormValue("step") {
	case "restart":
		c.states.Clear(w)
		flow.Resume(passwordreset.State{})
	case "reset":
		err = flow.SubmitReset(ctx, r.PostFormValue("token"), r.PostFormValue("password"))
	default:
		err = flow.SubmitEmail(ctx, r.PostFormValue("email"))
	}

	status := http.StatusOK
	if err != nil {
		utils.Logger.WithError(err).Debug("Password reset step failed")
		status = http.StatusBadRequest
	} else if flow.Step() != passwordreset.StepRequestToken {
		if serr := c.states.Set(w, flow.State()); serr != nil {
			utils.Logger.WithError(serr).Error("Failed to store password reset state")
		}
	}
	c.render(w, r, status, flow)
}

func (c *PasswordResetController) render(w http.ResponseWriter, r *http.Request, status int, flow *passwordreset.Flow) {
	step := flow.Step()
	page := views.ResetPage{
		Base:        c.base(r, "Reset password"),
		RequestStep: step == passwordreset.StepRequestToken,
		ResetStep:   step == passwordreset.StepResetPassword,
		Done:        step == passwordreset.StepDone,
		Email:       flow.Email(),
		Message:     flow.Message(),
		Error:       flow.ErrorMessage(),
	}
	if path, delay, ok := flow.Redirect(); ok {
		page.RedirectTo = path
		page.RedirectAfter = delay
	}
	c.renderer.Render(w, status, views.PageReset, page)
}
