package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rohitpatil05/finlens/internal/client/api"
	"github.com/rohitpatil05/finlens/internal/client/store"
	"github.com/rohitpatil05/finlens/internal/logging"
)

// newFixture spins up a backend stub and a fully wired store + api client
// pair, the same wiring the app performs at startup.
func newFixture(t *testing.T, handler http.Handler) (*store.Store, *api.Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	st := store.New(nil, logging.NewNopLogger())
	apiClient := api.New(srv.URL, 2*time.Second, logging.NewNopLogger())
	apiClient.SetTokenSource(st)
	return st, apiClient
}
