package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, store *CookieStore[Session], value Session) *http.Request {
	t.Helper()
	rr := httptest.NewRecorder()
	require.NoError(t, store.Set(rr, value))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCookieStore_RoundTrip(t *testing.T) {
	store := NewCookieStore[Session]("sid", []byte("0123456789abcdef0123456789abcdef"), time.Hour, false)
	want := Session{UserID: "u1", Name: "Site Admin", Email: "admin@example.com", Type: "admin", APIToken: "tok"}

	got, err := store.Get(roundTrip(t, store, want))
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.True(t, got.IsAdmin())
}

func TestCookieStore_CookieAttributes(t *testing.T) {
	store := NewCookieStore[Session]("sid", []byte("k"), 30*time.Minute, true)
	rr := httptest.NewRecorder()
	require.NoError(t, store.Set(rr, Session{UserID: "u1"}))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "sid", cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.True(t, cookies[0].Secure)
	require.Equal(t, 1800, cookies[0].MaxAge)
}

func TestCookieStore_Missing(t *testing.T) {
	store := NewCookieStore[Session]("sid", []byte("k"), time.Hour, false)
	_, err := store.Get(httptest.NewRequest(http.MethodGet, "/", nil))
	require.ErrorIs(t, err, ErrNoSession)
}

func TestCookieStore_Tampered(t *testing.T) {
	store := NewCookieStore[Session]("sid", []byte("right-key"), time.Hour, false)
	other := NewCookieStore[Session]("sid", []byte("wrong-key"), time.Hour, false)

	_, err := store.Get(roundTrip(t, other, Session{UserID: "u1", Type: "admin"}))
	require.ErrorIs(t, err, ErrNoSession)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "not.a.jwt"})
	_, err = store.Get(req)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestCookieStore_Expired(t *testing.T) {
	store := NewCookieStore[Session]("sid", []byte("k"), time.Minute, false)
	req := roundTrip(t, store, Session{UserID: "u1"})

	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err := store.Get(req)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestCookieStore_Clear(t *testing.T) {
	store := NewCookieStore[Session]("sid", []byte("k"), time.Hour, false)
	rr := httptest.NewRecorder()
	store.Clear(rr)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "sid", cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Less(t, cookies[0].MaxAge, 0)
}

func TestCookieStore_GenericValue(t *testing.T) {
	type flowState struct {
		Step  int    `json:"step"`
		Email string `json:"email"`
	}
	store := NewCookieStore[flowState]("flow", []byte("k"), time.Hour, false)
	rr := httptest.NewRecorder()
	require.NoError(t, store.Set(rr, flowState{Step: 1, Email: "a@example.com"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rr.Result().Cookies()[0])
	got, err := store.Get(req)
	require.NoError(t, err)
	require.Equal(t, flowState{Step: 1, Email: "a@example.com"}, got)
}
