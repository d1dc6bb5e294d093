package store

import "github.com/rohitpatil05/finlens/internal/client/models"

// SetSession installs an authenticated session. The authenticated flag
// follows the token: a user without a token stays logged out.
func (s *Store) SetSession(u *models.User) {
	s.Dispatch(func(st *State) {
		st.Auth.User = u
		st.Auth.IsAuthenticated = u != nil && u.Token != ""
		st.Auth.Error = ""
	})
}

// SetAuthError records a failed auth attempt: session cleared, error set.
func (s *Store) SetAuthError(msg string) {
	s.Dispatch(func(st *State) {
		st.Auth.User = nil
		st.Auth.IsAuthenticated = false
		st.Auth.Error = msg
	})
}

// ClearSession logs out: user and error cleared.
func (s *Store) ClearSession() {
	s.Dispatch(func(st *State) {
		st.Auth.User = nil
		st.Auth.IsAuthenticated = false
		st.Auth.Error = ""
	})
}

// ClearAuthError clears the auth slice's error without touching the session.
func (s *Store) ClearAuthError() {
	s.Dispatch(func(st *State) {
		st.Auth.Error = ""
	})
}
