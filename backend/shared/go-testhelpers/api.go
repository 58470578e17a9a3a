package testhelpers

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/stretchr/testify/require"
)

// NewHTTPClient creates an HTTP client with a cookie jar for session
// management. Redirects are not followed so tests can assert on them.
func (h *TestHelper) NewHTTPClient() *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(h.T, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// PostForm submits an urlencoded form with client.
func (h *TestHelper) PostForm(client *http.Client, reqURL string, form url.Values) *http.Response {
	req, err := http.NewRequestWithContext(h.Ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	require.NoError(h.T, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := client.Do(req)
	require.NoError(h.T, err)
	return resp
}

// Get issues a GET with client.
func (h *TestHelper) Get(client *http.Client, reqURL string) *http.Response {
	req, err := http.NewRequestWithContext(h.Ctx, http.MethodGet, reqURL, nil)
	require.NoError(h.T, err)
	resp, err := client.Do(req)
	require.NoError(h.T, err)
	return resp
}
