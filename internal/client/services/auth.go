// Package services contains the application operations the console calls:
// each one drives the HTTP client and dispatches the outcome into the
// store. Operations never panic across this boundary; failures are
// captured into the owning slice's error field and also returned.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rohitpatil05/finlens/internal/client/api"
	"github.com/rohitpatil05/finlens/internal/client/models"
	"github.com/rohitpatil05/finlens/internal/client/store"
	"github.com/rohitpatil05/finlens/internal/logging"
)

// Auth owns login, registration, password reset and session teardown.
type Auth struct {
	api   *api.Client
	store *store.Store
	log   logging.Logger
}

func NewAuth(apiClient *api.Client, st *store.Store, log logging.Logger) *Auth {
	return &Auth{api: apiClient, store: st, log: log}
}

// Login authenticates and installs the session. The user identity is
// built from the returned access token's claims; when the token carries
// no claims the username is all we have, and the role falls back to the
// historical username heuristic.
func (a *Auth) Login(ctx context.Context, username, password string) (*models.User, error) {
	a.store.BeginLoading()
	defer a.store.EndLoading()

	tok, err := a.api.Login(ctx, username, password)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.store.SetAuthError(errMessage(err, "login failed"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	u := userFromToken(username, tok.AccessToken)
	a.store.SetSession(u)
	a.log.Info(ctx, "logged in", "username", u.Username, "role", u.Role)
	return u, nil
}

// Register creates an account. When the backend returns a token the new
// session is installed immediately, same as login.
func (a *Auth) Register(ctx context.Context, in api.RegisterInput) (*models.User, error) {
	a.store.BeginLoading()
	defer a.store.EndLoading()

	resp, err := a.api.Register(ctx, in)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.store.SetAuthError(errMessage(err, "registration failed"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var u *models.User
	switch {
	case resp.AccessToken != "":
		u = userFromToken(in.Username, resp.AccessToken)
		if u.Email == "" || u.Email == u.Username+"@example.com" {
			u.Email = in.Email
		}
		a.store.SetSession(u)
	case resp.User != nil:
		u = resp.User
		a.store.SetSession(u)
	}
	return u, nil
}

// ResetPassword requests a reset mail for the given address.
func (a *Auth) ResetPassword(ctx context.Context, email string) error {
	a.store.BeginLoading()
	defer a.store.EndLoading()

	if err := a.api.ResetPassword(ctx, email); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.store.SetAuthError(errMessage(err, "password reset failed"))
		return err
	}
	return nil
}

// Logout tears the session down locally. There is no server call: the
// backend's tokens are stateless.
func (a *Auth) Logout(ctx context.Context) {
	a.store.ClearSession()
	a.log.Info(ctx, "logged out")
}

// ForceLogout is the 401 path: session cleared and the user told why via
// the global notification channel. Wired into the HTTP client's
// unauthorized hook at startup.
func (a *Auth) ForceLogout(reason string) {
	a.store.ClearSession()
	a.store.Notify(reason, models.SeverityError, 6*time.Second)
	a.log.Warn(context.Background(), "session terminated", "reason", reason)
}

// ClearError clears the auth slice's error.
func (a *Auth) ClearError() {
	a.store.ClearAuthError()
}

// userFromToken builds the session identity. The token's role claim is
// authoritative; the username-substring rule only applies to tokens that
// carry no role (older backends, test stubs).
func userFromToken(username, token string) *models.User {
	u := &models.User{
		ID:       1,
		Username: username,
		Email:    username + "@example.com",
		Token:    token,
	}
	if strings.Contains(username, "@") {
		u.Email = username
	}

	if claims := parseClaims(token); claims != nil {
		if v, ok := claims["user_id"].(float64); ok {
			u.ID = int64(v)
		} else if v, ok := claims["sub"].(string); ok && v != "" {
			u.Username = v
		}
		if v, ok := claims["username"].(string); ok && v != "" {
			u.Username = v
		}
		if v, ok := claims["email"].(string); ok && v != "" {
			u.Email = v
		}
		if v, ok := claims["role"].(string); ok && models.Role(v).Valid() {
			u.Role = models.Role(v)
		}
	}

	if !u.Role.Valid() {
		if strings.Contains(username, "admin") {
			u.Role = models.RoleAdmin
		} else {
			u.Role = models.RoleCA
		}
	}
	return u
}

// parseClaims decodes the token's claims without verifying the
// signature. Verification is the backend's job; the client only reads
// identity hints out of its own token.
func parseClaims(token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// errMessage prefers the backend's detail over a generic fallback.
func errMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, api.ErrUnavailable) {
		return err.Error()
	}
	if err != nil && err.Error() != "" {
		return fallback + ": " + err.Error()
	}
	return fallback
}
