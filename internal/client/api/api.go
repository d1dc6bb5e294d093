// Package api is the single point through which every backend call
// passes. It attaches the bearer token of the current session, maps
// transport failures to sentinel errors, and reports authentication
// failures back to the session owner through a hook.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rohitpatil05/finlens/internal/logging"
)

// TokenSource yields the bearer token for outbound requests. The store
// implements it. The client reads it at send time, never at construction
// time, so every call sees the session that is current when the request
// goes out.
type TokenSource interface {
	Token() string
}

// Client is the typed HTTP client for the backend REST API.
//
// The token source and the unauthorized hook are injected after
// construction: the store needs the client's consumers and the client
// needs the store, and deferred wiring breaks that cycle.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger

	mu             sync.RWMutex
	tokens         TokenSource
	onUnauthorized func()
}

// New creates a Client for the given base URL. baseURL should include
// the API prefix, e.g. "http://localhost:8000/api".
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetTokenSource wires the source of the current session token.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

// SetUnauthorizedHook wires the callback invoked when an authenticated
// call comes back 401. The hook fires once per failing call, before the
// error is returned; it must not block.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *Client) unauthorizedHook() func() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onUnauthorized
}

// do performs a single backend call. A bearer token is attached iff the
// token source has one at send time. On a 401 to a call that carried a
// token, the unauthorized hook runs before the error is returned; a 401
// to an anonymous call (login with bad credentials) does not fire it.
// The response body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	token := c.currentToken()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp, token != "")
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse maps a non-2xx response to an error. The forced
// logout on 401 only applies when the failing call was authenticated;
// a rejected login must not tear anything down.
func (c *Client) errorFromResponse(resp *http.Response, tokenAttached bool) error {
	detail := decodeErrorDetail(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if tokenAttached {
			if hook := c.unauthorizedHook(); hook != nil {
				hook()
			}
		}
		return authError(detail)
	case http.StatusForbidden:
		return authError(detail)
	default:
		return &APIError{Status: resp.StatusCode, Detail: detail}
	}
}

func authError(detail string) error {
	if detail == "" {
		return ErrUnauthorized
	}
	return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
}

// decodeErrorDetail pulls a human-readable message out of an error
// payload. The backend uses "detail"; "message" and "error" are accepted
// for tolerance.
func decodeErrorDetail(r io.Reader) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	switch {
	case payload.Detail != "":
		return payload.Detail
	case payload.Message != "":
		return payload.Message
	default:
		return payload.Err
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, "application/json", out)
}

func (c *Client) putJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, "application/json", out)
}

func (c *Client) deleteReq(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

func encodeJSON(in any) (io.Reader, error) {
	if in == nil {
		return nil, nil
	}
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return buf, nil
}
