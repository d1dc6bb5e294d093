package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitpatil05/finlens/internal/client/models"
	"github.com/rohitpatil05/finlens/internal/logging"
)

type fakePersister struct {
	auth    AuthState
	ok      bool
	loadErr error

	saved   []AuthState
	saveErr error
}

func (f *fakePersister) Load() (AuthState, bool, error) { return f.auth, f.ok, f.loadErr }
func (f *fakePersister) Save(a AuthState) error {
	f.saved = append(f.saved, a)
	return f.saveErr
}

func testUser() *models.User {
	return &models.User{ID: 1, Username: "testuser", Email: "testuser@finlens.dev", Role: models.RoleCA, Token: "abc"}
}

func TestNew_StartsLoggedOutWithoutSession(t *testing.T) {
	s := New(nil, logging.NewNopLogger())
	snap := s.Snapshot()
	assert.False(t, snap.Auth.IsAuthenticated)
	assert.Nil(t, snap.Auth.User)
	assert.NotNil(t, snap.Clients.ClientDocuments)
}

func TestNew_RehydratesPersistedSession(t *testing.T) {
	p := &fakePersister{auth: AuthState{User: testUser()}, ok: true}
	s := New(p, logging.NewNopLogger())

	snap := s.Snapshot()
	require.NotNil(t, snap.Auth.User)
	assert.True(t, snap.Auth.IsAuthenticated, "a persisted token means an authenticated start")
	assert.Equal(t, "abc", s.Token())
}

func TestNew_TokenlessSessionStaysLoggedOut(t *testing.T) {
	u := testUser()
	u.Token = ""
	p := &fakePersister{auth: AuthState{User: u, IsAuthenticated: true}, ok: true}
	s := New(p, logging.NewNopLogger())

	snap := s.Snapshot()
	assert.False(t, snap.Auth.IsAuthenticated)
	assert.Nil(t, snap.Auth.User)
}

func TestNew_LoadErrorMeansLoggedOut(t *testing.T) {
	p := &fakePersister{loadErr: errors.New("disk gone")}
	s := New(p, logging.NewNopLogger())
	assert.False(t, s.Snapshot().Auth.IsAuthenticated)
}

func TestDispatch_NotifiesSubscribersSynchronously(t *testing.T) {
	s := New(nil, logging.NewNopLogger())

	var seen []int
	unsubscribe := s.Subscribe(func(st State) {
		seen = append(seen, st.UI.Pending)
	})

	s.BeginLoading()
	s.BeginLoading()
	s.EndLoading()

	require.Equal(t, []int{1, 2, 1}, seen)

	unsubscribe()
	s.EndLoading()
	assert.Equal(t, []int{1, 2, 1}, seen, "unsubscribed callback must not run")
}

func TestDispatch_DerivesLoadingFromPending(t *testing.T) {
	s := New(nil, logging.NewNopLogger())

	s.BeginLoading()
	s.BeginLoading()
	assert.True(t, s.Snapshot().UI.Loading)

	s.EndLoading()
	assert.True(t, s.Snapshot().UI.Loading, "loading holds while one operation is still in flight")

	s.EndLoading()
	assert.False(t, s.Snapshot().UI.Loading)

	s.EndLoading() // underflow is clamped
	assert.Equal(t, 0, s.Snapshot().UI.Pending)
}

func TestDispatch_PersistsOnlyAuthChanges(t *testing.T) {
	p := &fakePersister{}
	s := New(p, logging.NewNopLogger())

	s.BeginLoading()
	s.SetClients([]models.Client{{ID: 1, Name: "Acme"}})
	assert.Empty(t, p.saved, "non-auth mutations must not touch the session file")

	s.SetSession(testUser())
	require.Len(t, p.saved, 1)
	assert.True(t, p.saved[0].IsAuthenticated)

	s.ClearSession()
	require.Len(t, p.saved, 2)
	assert.False(t, p.saved[1].IsAuthenticated)
	assert.Nil(t, p.saved[1].User)
}

func TestDispatch_SaveFailureDoesNotBlockMutation(t *testing.T) {
	p := &fakePersister{saveErr: errors.New("read-only fs")}
	s := New(p, logging.NewNopLogger())

	s.SetSession(testUser())
	assert.True(t, s.Snapshot().Auth.IsAuthenticated)
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s := New(nil, logging.NewNopLogger())
	s.SetSession(testUser())
	s.SetClients([]models.Client{{ID: 1, Name: "Acme"}})
	s.SetClientDocuments(1, []models.Document{{ID: 10, Title: "a.pdf"}})

	snap := s.Snapshot()
	snap.Auth.User.Username = "mutated"
	snap.Clients.Clients[0].Name = "mutated"
	snap.Clients.ClientDocuments[1][0].Title = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "testuser", fresh.Auth.User.Username)
	assert.Equal(t, "Acme", fresh.Clients.Clients[0].Name)
	assert.Equal(t, "a.pdf", fresh.Clients.ClientDocuments[1][0].Title)
}

func TestSetAuthError_ClearsSession(t *testing.T) {
	s := New(nil, logging.NewNopLogger())
	s.SetSession(testUser())

	s.SetAuthError("login failed")
	snap := s.Snapshot()
	assert.False(t, snap.Auth.IsAuthenticated)
	assert.Nil(t, snap.Auth.User)
	assert.Equal(t, "login failed", snap.Auth.Error)

	s.ClearAuthError()
	assert.Empty(t, s.Snapshot().Auth.Error)
}

func TestSetSession_AuthenticatedFollowsToken(t *testing.T) {
	s := New(nil, logging.NewNopLogger())

	u := testUser()
	u.Token = ""
	s.SetSession(u)
	assert.False(t, s.Snapshot().Auth.IsAuthenticated)
	assert.Empty(t, s.Token())

	s.SetSession(testUser())
	assert.True(t, s.Snapshot().Auth.IsAuthenticated)
}

func TestNotify_LastOneWins(t *testing.T) {
	s := New(nil, logging.NewNopLogger())
	s.Notify("first", models.SeverityInfo, time.Second)
	s.Notify("second", models.SeverityError, 6*time.Second)

	n := s.Snapshot().UI.Notification
	require.NotNil(t, n)
	assert.Equal(t, "second", n.Message)
	assert.Equal(t, models.SeverityError, n.Severity)

	s.ClearNotification()
	assert.Nil(t, s.Snapshot().UI.Notification)
}
