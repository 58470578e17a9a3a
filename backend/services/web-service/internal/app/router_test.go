package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/config"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/login"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/passwordreset"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/placeholder"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-seeding"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-testhelpers"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

type site struct {
	*testhelpers.TestHelper
	URL    string
	client *http.Client
}

func newSite(t *testing.T) *site {
	h := testhelpers.NewTestHelper(t)
	cfg := &config.Config{
		AppName:       "web-service",
		Env:           "test",
		APIBaseURL:    h.API.URL(),
		APITimeout:    5 * time.Second,
		SessionKey:    []byte("0123456789abcdef0123456789abcdef"),
		SessionTTL:    time.Hour,
		FeaturedLimit: config.DefaultFeaturedLimit,
		RedirectDelay: 2 * time.Second,
	}
	a, err := NewApp(cfg, placeholder.Fixed{Rating: 4.8, Reviews: 120, Properties: 12})
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(a, nil))
	t.Cleanup(srv.Close)
	return &site{TestHelper: h, URL: srv.URL, client: h.NewHTTPClient()}
}

func (s *site) get(path string) (*http.Response, string) {
	resp := s.Get(s.client, s.URL+path)
	return resp, readBody(s.T, resp)
}

func (s *site) post(path string, form url.Values) (*http.Response, string) {
	resp := s.PostForm(s.client, s.URL+path, form)
	return resp, readBody(s.T, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHome_FeaturesFirstFourAgents(t *testing.T) {
	s := newSite(t)
	s.API.SeedDefaultAgents()

	resp, body := s.get("/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 4, strings.Count(body, `class="agent-card"`))
	require.Contains(t, body, "Ayesha Khan")
	require.Contains(t, body, "Usman Tariq")
	require.NotContains(t, body, "Hina Raza")
	require.Contains(t, body, `href="/agents/`+seeding.DefaultAgentAyeshaID+`"`)
	require.Contains(t, body, "mailto:ayesha.khan@example.com")
	require.Contains(t, body, "4.8")
	require.NotContains(t, body, "Loading agents")
}

func TestHome_FiltersByArea(t *testing.T) {
	s := newSite(t)
	s.API.SeedDefaultAgents()

	resp, body := s.get("/?area=Lahore")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Top agents in Lahore")
	require.Contains(t, body, "Ayesha Khan")
	require.Contains(t, body, "Usman Tariq")
	require.NotContains(t, body, "Bilal Ahmed")
	require.Contains(t, s.API.Requests(), "GET /agents/search/Lahore")
}

func TestHome_EmptyAndFailureShowEmptyState(t *testing.T) {
	s := newSite(t)

	_, body := s.get("/?area=Quetta")
	require.Contains(t, body, "No agents found in Quetta.")
	require.NotContains(t, body, `class="agent-card"`)

	s.API.SeedDefaultAgents()
	s.API.Fail("/agents", http.StatusInternalServerError, "boom")
	resp, body := s.get("/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "No agents found.")
}

func TestDirectory_ListsEveryAgent(t *testing.T) {
	s := newSite(t)
	s.API.SeedDefaultAgents()

	resp, body := s.get("/agents")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 5, strings.Count(body, `class="agent-card"`))
	require.Contains(t, body, "Hina Raza")
}

func TestDirectory_PropertyQueryUsesPropertySearch(t *testing.T) {
	s := newSite(t)
	s.API.SeedDefaultAgents()
	s.API.SetListings(seeding.DefaultAgentAyeshaID, "5 marla house in DHA Phase 5")

	_, body := s.get("/agents?q=" + url.QueryEscape("5 marla"))
	require.Contains(t, body, "Ayesha Khan")
	require.NotContains(t, body, "Bilal Ahmed")
	require.Contains(t, s.API.Requests(), "GET /agents/by-property/5%20marla")
}

func TestDirectory_ExplicitIntentWins(t *testing.T) {
	s := newSite(t)
	s.API.SeedDefaultAgents()

	_, body := s.get("/agents?q=Karachi&intent=area")
	require.Contains(t, body, "Sana Malik")
	require.Contains(t, body, `<option value="area" selected>`)
	require.Contains(t, s.API.Requests(), "GET /agents/search/Karachi")

	_, body = s.get("/agents?q=Karachi&intent=property")
	require.Contains(t, body, "No agents found")
	require.Contains(t, s.API.Requests(), "GET /agents/by-property/Karachi")
}

func TestProfile(t *testing.T) {
	s := newSite(t)
	s.API.SetAgents(
		dtos.Agent{ID: "a1", Name: "Ayesha Khan", Email: "ayesha@example.com", Address: "Gulberg, Lahore"},
		dtos.Agent{ID: "a2", Name: "Usman Tariq", Address: "gulberg, lahore"},
		dtos.Agent{ID: "a3", Name: "Bilal Ahmed", Address: "F-7, Islamabad"},
	)

	resp, body := s.get("/agents/a1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "<h1>Ayesha Khan")
	require.Contains(t, body, "mailto:ayesha@example.com")
	require.Contains(t, body, "Other agents in Gulberg, Lahore")
	require.Contains(t, body, "Usman Tariq")
	require.NotContains(t, body, "Bilal Ahmed")

	resp, body = s.get("/agents/missing")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, body, "Agent not found")
}

func TestLogin(t *testing.T) {
	s := newSite(t)
	s.API.AddUser("Demo Buyer", "buyer@example.com", "secret1", utils.UserAccountType)

	resp, body := s.post("/login", url.Values{"email": {"buyer@example.com"}, "password": {"wrong"}})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, body, "Invalid email or password")

	resp, body = s.post("/login", url.Values{"email": {""}, "password": {""}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, login.MsgMissingFields)

	resp, _ = s.post("/login", url.Values{"email": {"buyer@example.com"}, "password": {"secret1"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	_, body = s.get("/")
	require.Contains(t, body, "Demo Buyer")
	require.Contains(t, body, "Log out")
	require.NotContains(t, body, `href="/admin"`)

	resp, _ = s.post("/logout", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body = s.get("/")
	require.NotContains(t, body, "Demo Buyer")
}

func TestAdminLogin_RejectsNonAdmins(t *testing.T) {
	s := newSite(t)
	s.API.AddUser("Demo Buyer", "buyer@example.com", "secret1", utils.UserAccountType)

	resp, body := s.post("/admin/login", url.Values{"email": {"buyer@example.com"}, "password": {"secret1"}})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Contains(t, body, login.MsgAccessDenied)

	resp, _ = s.get("/admin")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestAdminDashboard(t *testing.T) {
	s := newSite(t)
	s.API.SeedDefaultAgents()
	s.API.AddUser("Site Admin", "admin@example.com", "secret1", utils.AdminAccountType)

	resp, _ := s.get("/admin")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp, _ = s.post("/admin/login", url.Values{"email": {"admin@example.com"}, "password": {"secret1"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))

	resp, body := s.get("/admin")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Agents on file: <strong>5</strong>")
	require.Contains(t, s.API.Requests(), "GET /admin/summary")

	resp, _ = s.get("/admin/login")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestForgotPassword_FullFlow(t *testing.T) {
	s := newSite(t)
	s.API.AddUser("Demo Buyer", "buyer@example.com", "secret1", utils.UserAccountType)

	resp, body := s.get("/forgot-password")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Send reset token")

	resp, body = s.post("/forgot-password", url.Values{"step": {"request"}, "email": {"buyer@example.com"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := s.API.ResetToken("buyer@example.com")
	require.NotEmpty(t, token)
	require.Contains(t, body, "Reset token generated: "+token)
	require.Contains(t, body, `name="token"`)

	resp, body = s.post("/forgot-password", url.Values{"step": {"reset"}, "token": {"nope"}, "password": {"newpass1"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, "Invalid or expired reset token")
	require.Contains(t, body, `name="token"`)

	resp, body = s.post("/forgot-password", url.Values{"step": {"reset"}, "token": {token}, "password": {"newpass1"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, passwordreset.MsgResetDone)
	require.Contains(t, body, `http-equiv="refresh"`)
	require.Contains(t, body, "url=/login")
	require.Equal(t, "newpass1", s.API.Password("buyer@example.com"))

	_, body = s.get("/forgot-password")
	require.Contains(t, body, "Send reset token")
	require.NotContains(t, body, `http-equiv="refresh"`)
}

func TestForgotPassword_Failures(t *testing.T) {
	s := newSite(t)

	resp, body := s.post("/forgot-password", url.Values{"step": {"request"}, "email": {"ghost@example.com"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, "No account found with that email")
	require.Contains(t, body, "Send reset token")

	resp, body = s.post("/forgot-password", url.Values{"step": {"reset"}, "token": {"x"}, "password": {"newpass1"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, passwordreset.MsgWrongStep)
}

func TestForgotPassword_HiddenToken(t *testing.T) {
	s := newSite(t)
	s.API.ExposeResetToken(false)
	s.API.AddUser("Demo Buyer", "buyer@example.com", "secret1", utils.UserAccountType)

	_, body := s.post("/forgot-password", url.Values{"step": {"request"}, "email": {"buyer@example.com"}})
	require.Contains(t, body, passwordreset.MsgTokenIssued)
	require.NotContains(t, body, s.API.ResetToken("buyer@example.com"))
}

func TestHealthAndNotFound(t *testing.T) {
	s := newSite(t)

	resp, body := s.get("/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"OK"}`, body)

	resp, body = s.get("/no-such-page")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, body, "Page not found")
}
