// Package guard implements access control for protected views. The
// decision is a pure function of the current session and the requested
// route; it is evaluated fresh on every navigation and never cached.
package guard

import "github.com/rohitpatil05/finlens/internal/client/models"

// Decision is the outcome of evaluating a navigation request.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated user to the login view.
	RedirectLogin
	// RedirectHome sends an authenticated user without the required role
	// to their role's home view.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Evaluate decides whether the session may enter the route.
//
// Public routes are always allowed. Otherwise: not authenticated means
// login; a non-empty allowed-role set that does not contain the
// session's role means the role home; everything else is allowed.
func Evaluate(authenticated bool, role models.Role, r Route) Decision {
	if r.Public {
		return Allow
	}
	if !authenticated {
		return RedirectLogin
	}
	if len(r.Allowed) == 0 {
		return Allow
	}
	for _, allowed := range r.Allowed {
		if role == allowed {
			return Allow
		}
	}
	return RedirectHome
}

// Home is the role-appropriate landing route.
func Home(role models.Role) string {
	if role == models.RoleAdmin {
		return "/admin/dashboard"
	}
	return "/ca/dashboard"
}
