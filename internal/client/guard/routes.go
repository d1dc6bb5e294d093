package guard

import "github.com/rohitpatil05/finlens/internal/client/models"

// Route describes one navigable view. An empty Allowed set means any
// authenticated role may enter.
type Route struct {
	Name    string
	Path    string
	Allowed []models.Role
	Public  bool
}

var adminOnly = []models.Role{models.RoleAdmin}
var caOnly = []models.Role{models.RoleCA}
var anyRole = []models.Role{models.RoleAdmin, models.RoleCA}

// Table is the full route map of the console.
var Table = []Route{
	{Name: "login", Path: "/login", Public: true},
	{Name: "register", Path: "/register", Public: true},
	{Name: "forgot-password", Path: "/forgot-password", Public: true},

	{Name: "admin-dashboard", Path: "/admin/dashboard", Allowed: adminOnly},
	{Name: "admin-users", Path: "/admin/users", Allowed: adminOnly},
	{Name: "admin-stats", Path: "/admin/stats", Allowed: adminOnly},

	{Name: "ca-dashboard", Path: "/ca/dashboard", Allowed: caOnly},
	{Name: "ca-clients", Path: "/ca/clients", Allowed: caOnly},
	{Name: "ca-documents", Path: "/ca/documents", Allowed: caOnly},

	{Name: "quick-analysis", Path: "/workspace/quick-analysis", Allowed: anyRole},
	{Name: "client-analysis", Path: "/workspace/client-analysis", Allowed: anyRole},

	{Name: "profile", Path: "/profile"},
	{Name: "settings", Path: "/settings"},
}

// Find looks a route up by path.
func Find(path string) (Route, bool) {
	for _, r := range Table {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
