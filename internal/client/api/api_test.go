package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitpatil05/finlens/internal/logging"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *staticTokens) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := &staticTokens{}
	c := New(srv.URL, 2*time.Second, &logging.NopLogger{})
	c.SetTokenSource(tokens)
	return c, tokens
}

func TestDo_AttachesTokenAtSendTime(t *testing.T) {
	var got []string
	c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})

	ctx := context.Background()
	require.NoError(t, c.getJSON(ctx, "/x", nil))

	tokens.token = "tok-1"
	require.NoError(t, c.getJSON(ctx, "/x", nil))

	tokens.token = "tok-2"
	require.NoError(t, c.getJSON(ctx, "/x", nil))

	require.Equal(t, []string{"", "Bearer tok-1", "Bearer tok-2"}, got)
}

func TestDo_SetsRequestID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Write([]byte(`{}`))
	})
	require.NoError(t, c.getJSON(context.Background(), "/x", nil))
}

func TestDo_Unauthorized_WithTokenFiresHookOnce(t *testing.T) {
	c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid or expired token"}`))
	})
	tokens.token = "stale"

	fired := 0
	c.SetUnauthorizedHook(func() { fired++ })

	err := c.getJSON(context.Background(), "/clients", nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid or expired token")
	assert.Equal(t, 1, fired)
}

func TestDo_Unauthorized_AnonymousDoesNotFireHook(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	})

	fired := 0
	c.SetUnauthorizedHook(func() { fired++ })

	_, err := c.Login(context.Background(), "user", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 0, fired)
}

func TestDo_Forbidden(t *testing.T) {
	c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"Admins only"}`))
	})
	tokens.token = "tok"

	fired := 0
	c.SetUnauthorizedHook(func() { fired++ })

	err := c.getJSON(context.Background(), "/admin", nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 0, fired, "403 must not tear the session down")
}

func TestDo_ServerErrorBecomesAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Name is required"}`))
	})

	err := c.postJSON(context.Background(), "/clients", map[string]string{}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Name is required", apiErr.Detail)
}

func TestDo_ConnectionFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening any more

	c := New(srv.URL, time.Second, &logging.NopLogger{})
	err := c.getJSON(context.Background(), "/x", nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDo_TimeoutIsUnavailable(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	c.httpc.Timeout = 20 * time.Millisecond

	err := c.getJSON(context.Background(), "/x", nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLogin_SendsFormEncodedCredentials(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "testuser", r.PostFormValue("username"))
		assert.Equal(t, "password123", r.PostFormValue("password"))
		w.Write([]byte(`{"access_token":"abc","token_type":"bearer"}`))
	})

	tok, err := c.Login(context.Background(), "testuser", "password123")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok.AccessToken)
}

func TestDecodeErrorDetail_AcceptsAlternateKeys(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"detail":"a"}`, "a"},
		{`{"message":"b"}`, "b"},
		{`{"error":"c"}`, "c"},
		{`{"detail":"a","message":"b"}`, "a"},
		{`not json`, ""},
	}
	for _, tt := range tests {
		got := decodeErrorDetail(strings.NewReader(tt.body))
		assert.Equal(t, tt.want, got, tt.body)
	}
}

func TestDownloadReport_FilenameFromDisposition(t *testing.T) {
	c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pdf", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="analysis-7.pdf"`)
		w.Write([]byte("report body"))
	})
	tokens.token = "tok"

	rep, err := c.DownloadReport(context.Background(), 7, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "analysis-7.pdf", rep.Filename)
	assert.Equal(t, []byte("report body"), rep.Data)
}
