// Package store is the single source of truth for client state. It
// composes the auth, clients, documents and ui slices into one tree,
// serializes every mutation, notifies subscribers synchronously, and
// persists the auth slice across restarts. Nothing outside this package
// mutates state directly.
package store

import (
	"context"
	"sync"

	"github.com/rohitpatil05/finlens/internal/client/models"
	"github.com/rohitpatil05/finlens/internal/logging"
)

// Store owns the state tree. All mutation goes through Dispatch, which
// holds the store lock for the duration of the mutation; a dispatched
// mutation is atomic with respect to every reader.
type Store struct {
	mu        sync.Mutex
	state     State
	subs      map[int]func(State)
	nextSubID int
	session   SessionPersister
	log       logging.Logger
}

// SessionPersister saves the auth slice. Implemented by SessionFile;
// tests substitute fakes.
type SessionPersister interface {
	Load() (AuthState, bool, error)
	Save(AuthState) error
}

// New creates a Store. When session is non-nil the auth slice is
// rehydrated from it; a missing or unreadable session file simply means
// a logged-out start.
func New(session SessionPersister, log logging.Logger) *Store {
	s := &Store{
		subs:    make(map[int]func(State)),
		session: session,
		log:     log,
	}
	s.state.Clients.ClientDocuments = make(map[int64][]models.Document)

	if session != nil {
		auth, ok, err := session.Load()
		if err != nil {
			log.Warn(context.Background(), "failed to load session, starting logged out", "error", err)
		} else if ok && auth.Token() != "" {
			auth.IsAuthenticated = true
			s.state.Auth = auth
		}
	}
	return s
}

// Dispatch applies one mutation to the state tree. The derived loading
// flag is recomputed, the auth slice is persisted when it changed, and
// subscribers are notified synchronously (outside the lock, with a
// snapshot) before Dispatch returns.
func (s *Store) Dispatch(mutate func(*State)) {
	s.mu.Lock()
	before := s.state.Auth
	mutate(&s.state)
	s.state.UI.Loading = s.state.UI.Pending > 0
	after := s.state.Auth
	snapshot := s.state.clone()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if s.session != nil && authChanged(before, after) {
		if err := s.session.Save(after); err != nil {
			s.log.Warn(context.Background(), "failed to persist session", "error", err)
		}
	}

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to run after every dispatch. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Token implements api.TokenSource: the bearer token of the current
// session, read fresh on every call.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Auth.Token()
}

func authChanged(a, b AuthState) bool {
	if a.IsAuthenticated != b.IsAuthenticated || a.Error != b.Error {
		return true
	}
	switch {
	case a.User == nil && b.User == nil:
		return false
	case a.User == nil || b.User == nil:
		return true
	default:
		return *a.User != *b.User
	}
}
