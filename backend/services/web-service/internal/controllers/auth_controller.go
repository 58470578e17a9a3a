package controllers

import (
	"errors"
	"net/http"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/login"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/routes"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/views"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

type AuthController struct {
	pages
	userForm  *login.Form
	adminForm *login.Form
}

func NewAuthController(renderer *views.Renderer, sessions SessionStore, userForm, adminForm *login.Form) *AuthController {
	return &AuthController{
		pages:     pages{renderer: renderer, sessions: sessions},
		userForm:  userForm,
		adminForm: adminForm,
	}
}

func (c *AuthController) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	c.renderLogin(w, r, http.StatusOK, false, "", "")
}

func (c *AuthController) AdminLoginPageHandler(w http.ResponseWriter, r *http.Request) {
	if s := c.currentSession(r); s != nil && s.IsAdmin() {
		redirect(w, r, routes.Admin)
		return
	}
	c.renderLogin(w, r, http.StatusOK, true, "", "")
}

func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	c.submit(w, r, c.userForm, routes.Home)
}

func (c *AuthController) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	c.submit(w, r, c.adminForm, routes.Admin)
}

func (c *AuthController) submit(w http.ResponseWriter, r *http.Request, form *login.Form, next string) {
	if err := r.ParseForm(); err != nil {
		c.renderLogin(w, r, http.StatusBadRequest, form.AdminOnly, "", login.MsgMissingFields)
		return
	}
	email := r.PostFormValue("email")

	sess, err := form.Submit(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		var loginErr *login.Error
		msg := login.MsgLoginFailed
		if errors.As(err, &loginErr) {
			msg = loginErr.Message
		}
		c.renderLogin(w, r, loginFailureStatus(msg), form.AdminOnly, email, msg)
		return
	}

	if err := c.sessions.Set(w, *sess); err != nil {
		utils.Logger.WithError(err).Error("Failed to store session")
		c.renderLogin(w, r, http.StatusInternalServerError, form.AdminOnly, email, login.MsgLoginFailed)
		return
	}
	utils.Logger.WithField("user_id", sess.UserID).Info("User signed in")
	redirect(w, r, next)
}

func loginFailureStatus(msg string) int {
	switch msg {
	case login.MsgMissingFields, login.MsgInvalidEmail:
		return http.StatusBadRequest
	case login.MsgAccessDenied:
		return http.StatusForbidden
	default:
		return http.StatusUnauthorized
	}
}

func (c *AuthController) renderLogin(w http.ResponseWriter, r *http.Request, status int, adminOnly bool, email, errMsg string) {
	page := views.LoginPage{
		Base:    c.base(r, "Log in"),
		Heading: "Log in",
		Action:  routes.Login,
		Email:   email,
		Error:   errMsg,
	}
	if adminOnly {
		page.Title = "Admin login"
		page.Heading = "Admin login"
		page.Action = routes.AdminLogin
		page.AdminOnly = true
	}
	c.renderer.Render(w, status, views.PageLogin, page)
}

// LogoutHandler drops the session and returns to the home page.
func (c *AuthController) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	c.sessions.Clear(w)
	redirect(w, r, routes.Home)
}
