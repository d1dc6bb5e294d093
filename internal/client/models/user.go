// Package models holds the domain types shared by the store, the services
// and the console views. Backend payloads are decoded into these types at
// the API boundary; optional fields default to their zero values so views
// never have to null-check the wire format themselves.
package models

// Role is the access level carried by a session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleCA    Role = "ca"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCA
}

// User is the authenticated principal as kept in the auth slice.
// Token is the opaque bearer token returned by the backend.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Token    string `json:"token"`
}
