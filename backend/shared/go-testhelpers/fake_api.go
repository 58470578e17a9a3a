package testhelpers

import (
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-middleware"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-seeding"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

type fakeUser struct {
	user     dtos.User
	password string
}

type override struct {
	status int
	body   string
}

// FakeAPI is an in-process stand-in for api-service speaking the same JSON
// contract. Failures, raw bodies and held requests can be injected per path
// prefix.
type FakeAPI struct {
	Server *httptest.Server

	privateKey *rsa.PrivateKey

	mu          sync.Mutex
	exposeToken bool
	agents      []dtos.Agent
	listings    map[string][]string
	users       map[string]*fakeUser
	resetTokens map[string]string
	overrides   map[string]override
	gates       map[string]chan struct{}
	requests    []string
}

func newFakeAPI(t *testing.T, key *rsa.PrivateKey) *FakeAPI {
	f := &FakeAPI{
		privateKey:  key,
		exposeToken: true,
		listings:    map[string][]string{},
		users:       map[string]*fakeUser{},
		resetTokens: map[string]string{},
		overrides:   map[string]override{},
		gates:       map[string]chan struct{}{},
	}

	r := mux.NewRouter().UseEncodedPath()
	r.Use(f.intercept)
	r.HandleFunc("/agents", f.listAgents).Methods("GET")
	r.HandleFunc("/agents/search/{area}", f.searchByArea).Methods("GET")
	r.HandleFunc("/agents/by-property/{query}", f.searchByProperty).Methods("GET")
	r.HandleFunc("/agents/{id}", f.getAgent).Methods("GET")
	r.HandleFunc("/auth/login", f.login).Methods("POST")
	r.HandleFunc("/auth/forgot-password", f.forgotPassword).Methods("POST")
	r.HandleFunc("/auth/reset-password", f.resetPassword).Methods("POST")
	r.Handle("/admin/summary", middleware.AdminAuthMiddleware(&key.PublicKey)(http.HandlerFunc(f.adminSummary))).Methods("GET")

	f.Server = httptest.NewServer(r)
	t.Cleanup(func() {
		f.ReleaseAll()
		f.Server.Close()
	})
	return f
}

func (f *FakeAPI) URL() string {
	return f.Server.URL
}

// ExposeResetToken mirrors the api-service flag of the same name. On by
// default.
func (f *FakeAPI) ExposeResetToken(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exposeToken = on
}

// SetAgents replaces the agent directory.
func (f *FakeAPI) SetAgents(agents ...dtos.Agent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.agents = append([]dtos.Agent(nil), agents...)
}

// SeedDefaultAgents loads the same demo agents api-service seeds.
func (f *FakeAPI) SeedDefaultAgents() []dtos.Agent {
	defaults := seeding.DefaultAgents()
	out := make([]dtos.Agent, 0, len(defaults))
	for _, a := range defaults {
		out = append(out, dtos.NewAgentFromModel(a))
	}
	f.SetAgents(out...)
	return out
}

// SetListings attaches listing descriptions used by the by-property search.
func (f *FakeAPI) SetListings(agentID string, descriptions ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listings[agentID] = descriptions
}

// AddUser registers an account and returns its id.
func (f *FakeAPI) AddUser(name, email, password, kind string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.users[strings.ToLower(email)] = &fakeUser{
		user:     dtos.User{ID: id.String(), Name: name, Email: strings.ToLower(email), Type: kind},
		password: password,
	}
	return id
}

// Password returns the account's current password.
func (f *FakeAPI) Password(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[strings.ToLower(email)]; ok {
		return u.password
	}
	return ""
}

// ResetToken returns the outstanding reset token for email.
func (f *FakeAPI) ResetToken(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resetTokens[strings.ToLower(email)]
}

// Respond makes every request under prefix answer status with body.
func (f *FakeAPI) Respond(prefix string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides[prefix] = override{status: status, body: body}
}

// Fail makes every request under prefix answer status with an error envelope.
func (f *FakeAPI) Fail(prefix string, status int, message string) {
	b, _ := json.Marshal(utils.ErrorResponse{Success: false, Code: "test_failure", Error: message})
	f.Respond(prefix, status, string(b))
}

// ClearOverrides removes all Respond/Fail injections.
func (f *FakeAPI) ClearOverrides() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides = map[string]override{}
}

// Hold blocks requests whose escaped request URI equals uri until the
// returned release func is called.
func (f *FakeAPI) Hold(uri string) (release func()) {
	ch := make(chan struct{})
	f.mu.Lock()
	f.gates[uri] = ch
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			if f.gates[uri] == ch {
				delete(f.gates, uri)
			}
			f.mu.Unlock()
			close(ch)
		})
	}
}

// ReleaseAll frees every held request.
func (f *FakeAPI) ReleaseAll() {
	f.mu.Lock()
	gates := f.gates
	f.gates = map[string]chan struct{}{}
	f.mu.Unlock()
	for _, ch := range gates {
		close(ch)
	}
}

// Requests lists "METHOD escaped-uri" for every request served, in order.
func (f *FakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *FakeAPI) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uri := r.URL.RequestURI()

		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+uri)
		gate := f.gates[uri]
		var ov *override
		for prefix, o := range f.overrides {
			if strings.HasPrefix(uri, prefix) {
				o := o
				ov = &o
				break
			}
		}
		f.mu.Unlock()

		if gate != nil {
			<-gate
		}
		if ov != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(ov.status)
			_, _ = w.Write([]byte(ov.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) snapshotAgents() []dtos.Agent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dtos.Agent{}, f.agents...)
}

func (f *FakeAPI) listAgents(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.AgentsResponse{Success: true, Data: f.snapshotAgents()})
}

func (f *FakeAPI) searchByArea(w http.ResponseWriter, r *http.Request) {
	area := strings.ToLower(routeVar(r, "area"))
	out := []dtos.Agent{}
	for _, a := range f.snapshotAgents() {
		if strings.Contains(strings.ToLower(a.Address), area) {
			out = append(out, a)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AgentsResponse{Success: true, Data: out})
}

func (f *FakeAPI) searchByProperty(w http.ResponseWriter, r *http.Request) {
	terms := strings.Fields(strings.ToLower(routeVar(r, "query")))

	f.mu.Lock()
	listings := make(map[string][]string, len(f.listings))
	for k, v := range f.listings {
		listings[k] = v
	}
	f.mu.Unlock()

	out := []dtos.Agent{}
	for _, a := range f.snapshotAgents() {
		for _, desc := range listings[a.ID] {
			if containsAll(strings.ToLower(desc), terms) {
				out = append(out, a)
				break
			}
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AgentsResponse{Success: true, Data: out})
}

func routeVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func containsAll(s string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}

func (f *FakeAPI) getAgent(w http.ResponseWriter, r *http.Request) {
	id := routeVar(r, "id")
	for _, a := range f.snapshotAgents() {
		if a.ID == id {
			a := a
			utils.RespondWithJSON(w, http.StatusOK, dtos.AgentResponse{Success: true, Data: &a})
			return
		}
	}
	utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Agent not found")
}

func (f *FakeAPI) login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", err)
		return
	}

	f.mu.Lock()
	u, ok := f.users[strings.ToLower(req.Email)]
	f.mu.Unlock()
	if !ok || u.password != req.Password {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password")
		return
	}

	token, err := signJWT(f.privateKey, u.user.ID, u.user.Type)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to sign token", err)
		return
	}
	user := u.user
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{Success: true, User: &user, Token: token})
}

func (f *FakeAPI) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", err)
		return
	}
	email := strings.ToLower(req.Email)

	f.mu.Lock()
	_, ok := f.users[email]
	token := utils.RandomString(utils.ResetTokenLength)
	if ok {
		f.resetTokens[email] = token
	}
	expose := f.exposeToken
	f.mu.Unlock()

	if !ok {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No account found with that email")
		return
	}
	resp := dtos.ForgotPasswordResponse{Success: true, Message: "Reset token generated. Check your email for the token."}
	if expose {
		resp.ResetToken = token
		resp.Message = "Reset token generated."
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (f *FakeAPI) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", err)
		return
	}
	if len(req.NewPassword) < 6 {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "NewPassword must be at least 6 characters")
		return
	}
	email := strings.ToLower(req.Email)

	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok || req.Token == "" || f.resetTokens[email] != req.Token {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidResetToken, "Invalid or expired reset token")
		return
	}
	u.password = req.NewPassword
	delete(f.resetTokens, email)
	utils.RespondWithJSON(w, http.StatusOK, dtos.ResetPasswordResponse{Success: true, Message: "Password has been reset successfully."})
}

func (f *FakeAPI) adminSummary(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.AdminSummaryResponse{Success: true, AgentCount: len(f.snapshotAgents())})
}
