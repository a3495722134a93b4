package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeGetter is a minimal paramstore.Getter stub for use within this package.
type fakeGetter struct {
	val    string
	err    error
	names  []string
	onCall func()
}

func (f *fakeGetter) GetParameter(_ context.Context, name string) (string, error) {
	f.names = append(f.names, name)
	if f.onCall != nil {
		f.onCall()
	}
	return f.val, f.err
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{
		WithBaseURL(srv.URL),
		WithHTTPClient(&http.Client{Timeout: 2 * time.Second}),
	}, opts...)
	c, err := NewClient(&fakeGetter{val: `{"token":"sk-test"}`}, "/landing-site", opts...)
	require.NoError(t, err)
	return c
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(nil, "/landing-site")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nil")

	_, err = NewClient(&fakeGetter{}, " / ")
	require.Error(t, err)

	c, err := NewClient(&fakeGetter{}, "/landing-site/")
	require.NoError(t, err)
	require.Equal(t, defaultBaseURL, c.baseURL)
	require.Equal(t, DefaultModerationModel, c.model)
	require.Equal(t, "/landing-site/open-ai-token", c.tokenParameterName())
}

func TestWithModel_IgnoresBlank(t *testing.T) {
	c, err := NewClient(&fakeGetter{}, "/landing-site", WithModel("  "))
	require.NoError(t, err)
	require.Equal(t, DefaultModerationModel, c.model)

	c, err = NewClient(&fakeGetter{}, "/landing-site", WithModel("text-moderation-stable"))
	require.NoError(t, err)
	require.Equal(t, "text-moderation-stable", c.model)
}

func TestModerationURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://api.openai.com/v1", "https://api.openai.com/v1/moderations"},
		{"https://api.openai.com/v1/", "https://api.openai.com/v1/moderations"},
		{"http://localhost:8080", "http://localhost:8080/v1/moderations"},
		{"", "https://api.openai.com/v1/moderations"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, moderationURL(tc.base), "base=%q", tc.base)
	}
}

func TestResolveAPIKey_FetchedOnce(t *testing.T) {
	calls := 0
	g := &fakeGetter{val: `{"token":"sk-from-ssm"}`}
	g.onCall = func() { calls++ }
	c, err := NewClient(g, "/landing-site")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		key, err := c.resolveAPIKey(context.Background())
		require.NoError(t, err)
		require.Equal(t, "sk-from-ssm", key)
	}
	require.Equal(t, 1, calls)
	require.Equal(t, []string{"/landing-site/open-ai-token"}, g.names)
}

func TestFetchAPIKey(t *testing.T) {
	cases := []struct {
		name    string
		getter  Getter
		param   string
		want    string
		errPart string
	}{
		{name: "json token", getter: &fakeGetter{val: `{"token":"sk-json"}`}, param: "/p", want: "sk-json"},
		{name: "missing token", getter: &fakeGetter{val: `{"other":"v"}`}, param: "/p", errPart: "API token is empty"},
		{name: "malformed", getter: &fakeGetter{val: `{"broken`}, param: "/p", errPart: "unmarshal"},
		{name: "getter error", getter: &fakeGetter{err: errors.New("ssm unavailable")}, param: "/p", errPart: "ssm unavailable"},
		{name: "nil getter", getter: nil, param: "/p", errPart: "nil"},
		{name: "empty name", getter: &fakeGetter{val: `{"token":"x"}`}, param: " ", errPart: "empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := fetchAPIKeyFromParamStore(context.Background(), tc.getter, tc.param)
			if tc.errPart != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errPart)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, key)
		})
	}
}

func TestClient_Moderate_SendsModelAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/moderations", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req moderationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "text-moderation-stable", req.Model)
		require.Equal(t, "hello there", req.Input)
		respond(200, `{"results":[{"flagged":false}]}`)(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, WithModel("text-moderation-stable"))
	flagged, err := c.Moderate(context.Background(), "hello there")
	require.NoError(t, err)
	require.False(t, flagged)
}

func TestClient_Moderate_Flagged(t *testing.T) {
	srv := httptest.NewServer(respond(200, `{"results":[{"flagged":true}]}`))
	defer srv.Close()

	c := newTestClient(t, srv)
	flagged, err := c.Moderate(context.Background(), "cheap pills")
	require.NoError(t, err)
	require.True(t, flagged)
}

func TestClient_Moderate_Failures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		errPart string
	}{
		{name: "rate limited", status: 429, body: `{"error":"rate limited"}`, errPart: "429"},
		{name: "server error", status: 500, body: `{"error":"internal"}`, errPart: "500"},
		{name: "malformed", status: 200, body: `not-json`, errPart: "decode moderation response"},
		{name: "no results", status: 200, body: `{"results":[]}`, errPart: "no results"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(respond(tc.status, tc.body))
			defer srv.Close()

			c := newTestClient(t, srv)
			_, err := c.Moderate(context.Background(), "hello")
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestClient_Moderate_StatusErrorIsTyped(t *testing.T) {
	srv := httptest.NewServer(respond(503, `unavailable`))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.Moderate(context.Background(), "hello")
	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 503, statusErr.HTTPStatusCode())
	require.Equal(t, "unavailable", statusErr.Body)
}

func TestClient_Moderate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		respond(200, `{"results":[{"flagged":false}]}`)(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	c.httpClient = &http.Client{Timeout: 50 * time.Millisecond}
	_, err := c.Moderate(context.Background(), "hello")
	require.Error(t, err)
}

func TestClient_Moderate_TokenError(t *testing.T) {
	c, err := NewClient(&fakeGetter{err: errors.New("denied")}, "/landing-site")
	require.NoError(t, err)
	_, err = c.Moderate(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "denied")
}
