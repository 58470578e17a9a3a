package controllers

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/routes"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-middleware"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// ---------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------

type fakeAgentService struct {
	agents    []dtos.Agent
	err       error
	lastArea  string
	lastQuery string
}

func (f *fakeAgentService) ListAll(context.Context) ([]dtos.Agent, error) { return f.agents, f.err }

func (f *fakeAgentService) SearchByArea(_ context.Context, area string) ([]dtos.Agent, error) {
	f.lastArea = area
	return f.agents, f.err
}

func (f *fakeAgentService) SearchByProperty(_ context.Context, q string) ([]dtos.Agent, error) {
	f.lastQuery = q
	return f.agents, f.err
}

func (f *fakeAgentService) GetByID(_ context.Context, id string) (*dtos.Agent, error) {
	for i := range f.agents {
		if f.agents[i].ID == id {
			return &f.agents[i], nil
		}
	}
	return nil, utils.ErrAgentNotFound
}

func (f *fakeAgentService) Count(context.Context) (int, error) { return len(f.agents), f.err }

type fakeAuthService struct {
	user *models.User
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (*models.User, string, error) {
	if f.user == nil || email != f.user.Email || password != "secret123" {
		return nil, "", &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeInvalidCredentials,
			Message:    "Invalid email or password",
			Err:        utils.ErrInvalidCredentials,
		}
	}
	return f.user, "signed-token", nil
}

func (f *fakeAuthService) CurrentUser(_ context.Context, id string) (*models.User, error) {
	if f.user == nil || f.user.ID.String() != id {
		return nil, utils.ErrUserNotFound
	}
	return f.user, nil
}

type fakeResetService struct {
	resp     *dtos.ForgotPasswordResponse
	err      error
	resetErr error
}

func (f *fakeResetService) RequestReset(context.Context, string) (*dtos.ForgotPasswordResponse, error) {
	return f.resp, f.err
}

func (f *fakeResetService) ResetPassword(context.Context, string, string, string) error {
	return f.resetErr
}

// ---------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------

func sampleAgents() []dtos.Agent {
	return []dtos.Agent{
		{ID: uuid.NewString(), Name: "Ayesha Khan", AgencyName: "Prime Estates", Address: "DHA Phase 5, Lahore", Experience: 8},
		{ID: uuid.NewString(), Name: "Bilal Ahmed", AgencyName: "Capital Homes", Address: "F-7, Islamabad", Experience: 3},
	}
}

func newTestRouter(agentSvc *fakeAgentService, authSvc *fakeAuthService, resetSvc *fakeResetService, pub *rsa.PublicKey) *mux.Router {
	agentCtrl := NewAgentController(agentSvc)
	authCtrl := NewAuthController(authSvc, resetSvc)
	adminCtrl := NewAdminController(agentSvc)

	r := mux.NewRouter().UseEncodedPath()
	r.HandleFunc(routes.Agents, agentCtrl.ListAgentsHandler).Methods("GET")
	r.HandleFunc(routes.AgentsByArea, agentCtrl.SearchByAreaHandler).Methods("GET")
	r.HandleFunc(routes.AgentsByProperty, agentCtrl.SearchByPropertyHandler).Methods("GET")
	r.HandleFunc(routes.AgentByID, agentCtrl.GetAgentHandler).Methods("GET")
	r.HandleFunc(routes.AuthLogin, authCtrl.LoginHandler).Methods("POST")
	r.HandleFunc(routes.AuthForgotPassword, authCtrl.ForgotPasswordHandler).Methods("POST")
	r.HandleFunc(routes.AuthResetPassword, authCtrl.ResetPasswordHandler).Methods("POST")
	r.Handle(routes.AuthMe, middleware.AuthMiddleware(pub)(http.HandlerFunc(authCtrl.MeHandler))).Methods("GET")
	r.Handle(routes.AdminSummary, middleware.AdminAuthMiddleware(pub)(http.HandlerFunc(adminCtrl.SummaryHandler))).Methods("GET")
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func signToken(t *testing.T, key *rsa.PrivateKey, sub, role string) string {
	t.Helper()
	claims := middleware.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    middleware.TokenIssuer,
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

// ---------------------------------------------------------------------
// Agents
// ---------------------------------------------------------------------

func TestAgentEndpoints(t *testing.T) {
	svc := &fakeAgentService{agents: sampleAgents()}
	router := newTestRouter(svc, &fakeAuthService{}, &fakeResetService{}, nil)

	rr := do(t, router, "GET", "/agents", "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[dtos.AgentsResponse](t, rr)
	require.True(t, list.Success)
	require.Len(t, list.Data, 2)

	rr = do(t, router, "GET", "/agents/search/DHA%20Phase%205", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "DHA Phase 5", svc.lastArea)

	rr = do(t, router, "GET", "/agents/by-property/10%20marla%20house", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "10 marla house", svc.lastQuery)

	rr = do(t, router, "GET", "/agents/"+svc.agents[1].ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	one := decode[dtos.AgentResponse](t, rr)
	require.True(t, one.Success)
	require.Equal(t, "Bilal Ahmed", one.Data.Name)
}

func TestAgentEndpoints_EscapedSlash(t *testing.T) {
	svc := &fakeAgentService{agents: sampleAgents()}
	router := newTestRouter(svc, &fakeAuthService{}, &fakeResetService{}, nil)

	rr := do(t, router, "GET", "/agents/by-property/House%2FFlat", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "House/Flat", svc.lastQuery)

	rr = do(t, router, "GET", "/agents/search/DHA%20Phase%205%2F6", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "DHA Phase 5/6", svc.lastArea)
}

func TestAgentEndpoints_Failures(t *testing.T) {
	svc := &fakeAgentService{}
	router := newTestRouter(svc, &fakeAuthService{}, &fakeResetService{}, nil)

	rr := do(t, router, "GET", "/agents", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true,"data":[]}`, rr.Body.String())

	rr = do(t, router, "GET", "/agents/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	e := decode[utils.ErrorResponse](t, rr)
	require.False(t, e.Success)
	require.Equal(t, "Agent not found", e.Error)

	svc.err = errors.New("db down")
	rr = do(t, router, "GET", "/agents", "")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	e = decode[utils.ErrorResponse](t, rr)
	require.NotEmpty(t, e.Error)
}

// ---------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------

func TestLoginHandler(t *testing.T) {
	user := &models.User{ID: uuid.New(), Name: "Site Admin", Email: "admin@example.com", Type: utils.AdminAccountType}
	router := newTestRouter(&fakeAgentService{}, &fakeAuthService{user: user}, &fakeResetService{}, nil)

	rr := do(t, router, "POST", "/auth/login", `{"email":"admin@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[dtos.LoginResponse](t, rr)
	require.True(t, resp.Success)
	require.Equal(t, "signed-token", resp.Token)
	require.Equal(t, utils.AdminAccountType, resp.User.Type)

	rr = do(t, router, "POST", "/auth/login", `{"email":"admin@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	e := decode[utils.ErrorResponse](t, rr)
	require.Equal(t, utils.ErrCodeInvalidCredentials, e.Code)
	require.Equal(t, "Invalid email or password", e.Error)

	rr = do(t, router, "POST", "/auth/login", `{"email":"not-an-email","password":"x"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	e = decode[utils.ErrorResponse](t, rr)
	require.Equal(t, utils.ErrCodeValidation, e.Code)

	rr = do(t, router, "POST", "/auth/login", `{not json`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, utils.ErrCodeInvalidPayload, decode[utils.ErrorResponse](t, rr).Code)
}

func TestForgotAndResetHandlers(t *testing.T) {
	reset := &fakeResetService{resp: &dtos.ForgotPasswordResponse{Success: true, Message: "Reset token generated.", ResetToken: "abc123"}}
	router := newTestRouter(&fakeAgentService{}, &fakeAuthService{}, reset, nil)

	rr := do(t, router, "POST", "/auth/forgot-password", `{"email":"owner@example.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "abc123", decode[dtos.ForgotPasswordResponse](t, rr).ResetToken)

	reset.err = &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "No account found with that email", Err: utils.ErrUserNotFound}
	rr = do(t, router, "POST", "/auth/forgot-password", `{"email":"ghost@example.com"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "No account found with that email", decode[utils.ErrorResponse](t, rr).Error)

	rr = do(t, router, "POST", "/auth/reset-password", `{"email":"owner@example.com","token":"abc123","newPassword":"12345"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	e := decode[utils.ErrorResponse](t, rr)
	require.Equal(t, utils.ErrCodeValidation, e.Code)
	require.Contains(t, e.Error, "at least 6")

	rr = do(t, router, "POST", "/auth/reset-password", `{"email":"owner@example.com","token":"abc123","newPassword":"123456"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	ok := decode[dtos.ResetPasswordResponse](t, rr)
	require.True(t, ok.Success)
}

func TestProtectedEndpoints(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	buyer := &models.User{ID: uuid.New(), Name: "Demo Buyer", Email: "buyer@example.com", Type: utils.UserAccountType}
	svc := &fakeAgentService{agents: sampleAgents()}
	router := newTestRouter(svc, &fakeAuthService{user: buyer}, &fakeResetService{}, &key.PublicKey)

	rr := do(t, router, "GET", "/auth/me", "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(t, router, "GET", "/auth/me", "", "Authorization", "Bearer garbage")
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	userToken := signToken(t, key, buyer.ID.String(), utils.UserAccountType)
	rr = do(t, router, "GET", "/auth/me", "", "Authorization", "Bearer "+userToken)
	require.Equal(t, http.StatusOK, rr.Code)
	me := decode[dtos.MeResponse](t, rr)
	require.Equal(t, "buyer@example.com", me.User.Email)

	rr = do(t, router, "GET", "/admin/summary", "", "Authorization", "Bearer "+userToken)
	require.Equal(t, http.StatusForbidden, rr.Code)

	adminToken := signToken(t, key, uuid.NewString(), utils.AdminAccountType)
	rr = do(t, router, "GET", "/admin/summary", "", "Authorization", "Bearer "+adminToken)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true,"agent_count":2}`, rr.Body.String())
}
