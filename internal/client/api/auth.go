package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

// TokenResponse is the payload of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the payload of a successful registration. Either
// field may be absent depending on backend version.
type RegisterResponse struct {
	User        *models.User `json:"user,omitempty"`
	AccessToken string       `json:"access_token,omitempty"`
}

// Login authenticates with form-encoded credentials and returns the
// bearer token. The call is anonymous: no Authorization header is sent
// even when a stale session token is still around.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.postJSON(ctx, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword requests a password reset for the given email.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	return c.postJSON(ctx, "/auth/reset-password", in, nil)
}
