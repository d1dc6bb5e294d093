package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

func mustFind(t *testing.T, path string) Route {
	t.Helper()
	r, ok := Find(path)
	require.True(t, ok, "route %s must exist", path)
	return r
}

func TestEvaluate_PublicRoutesAlwaysAllowed(t *testing.T) {
	login := mustFind(t, "/login")
	assert.Equal(t, Allow, Evaluate(false, "", login))
	assert.Equal(t, Allow, Evaluate(true, models.RoleCA, login))
	assert.Equal(t, Allow, Evaluate(true, models.RoleAdmin, login))
}

func TestEvaluate_UnauthenticatedAlwaysRedirectsToLogin(t *testing.T) {
	for _, r := range Table {
		if r.Public {
			continue
		}
		assert.Equal(t, RedirectLogin, Evaluate(false, "", r), "route %s", r.Path)
		// a leftover role without a session must make no difference
		assert.Equal(t, RedirectLogin, Evaluate(false, models.RoleAdmin, r), "route %s", r.Path)
	}
}

func TestEvaluate_RoleMatrix(t *testing.T) {
	tests := []struct {
		path  string
		admin Decision
		ca    Decision
	}{
		{"/admin/dashboard", Allow, RedirectHome},
		{"/admin/users", Allow, RedirectHome},
		{"/admin/stats", Allow, RedirectHome},
		{"/ca/dashboard", RedirectHome, Allow},
		{"/ca/clients", RedirectHome, Allow},
		{"/ca/documents", RedirectHome, Allow},
		{"/workspace/quick-analysis", Allow, Allow},
		{"/workspace/client-analysis", Allow, Allow},
		{"/profile", Allow, Allow},
		{"/settings", Allow, Allow},
	}
	for _, tt := range tests {
		r := mustFind(t, tt.path)
		assert.Equal(t, tt.admin, Evaluate(true, models.RoleAdmin, r), "%s as admin", tt.path)
		assert.Equal(t, tt.ca, Evaluate(true, models.RoleCA, r), "%s as ca", tt.path)
	}
}

func TestEvaluate_UnknownRoleOnRestrictedRoute(t *testing.T) {
	r := mustFind(t, "/ca/clients")
	assert.Equal(t, RedirectHome, Evaluate(true, "auditor", r))

	// an empty allow list admits any authenticated session
	profile := mustFind(t, "/profile")
	assert.Equal(t, Allow, Evaluate(true, "auditor", profile))
}

func TestHome(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", Home(models.RoleAdmin))
	assert.Equal(t, "/ca/dashboard", Home(models.RoleCA))
	assert.Equal(t, "/ca/dashboard", Home(""))
}

func TestFind_UnknownPath(t *testing.T) {
	_, ok := Find("/nope")
	assert.False(t, ok)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect-login", RedirectLogin.String())
	assert.Equal(t, "redirect-home", RedirectHome.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
