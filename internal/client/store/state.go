package store

import (
	"time"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

// AuthState mirrors the persisted session layout: user, the
// authenticated flag, and the last auth error. The invariant
// "IsAuthenticated iff a non-empty token is present" is maintained by
// the store's mutators, never by callers.
type AuthState struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	Error           string       `json:"error,omitempty"`
}

// Token returns the session's bearer token, or "" when logged out.
func (a AuthState) Token() string {
	if a.User == nil {
		return ""
	}
	return a.User.Token
}

// ClientsState holds the client collection, the focused client, the
// per-client document cache and the slice's last error.
type ClientsState struct {
	Clients         []models.Client
	CurrentClient   *models.Client
	ClientDocuments map[int64][]models.Document
	Error           string
	LastFetched     time.Time
}

// DocumentsState holds the document collection, the focused document and
// the analysis attached to the latest successful process call.
type DocumentsState struct {
	Documents       []models.Document
	CurrentDocument *models.Document
	AnalysisResults *models.AnalysisResult
	Error           string
}

// UIState is process-wide transient state. Pending counts in-flight
// tracked operations; Loading is true while Pending is positive. At most
// one notification is active. Never persisted.
type UIState struct {
	Loading      bool
	Pending      int
	Notification *models.Notification
}

// State is the complete store tree.
type State struct {
	Auth      AuthState
	Clients   ClientsState
	Documents DocumentsState
	UI        UIState
}

// clone returns a deep copy so snapshot holders never share mutable data
// with the store.
func (s State) clone() State {
	out := s

	if s.Auth.User != nil {
		u := *s.Auth.User
		out.Auth.User = &u
	}

	out.Clients.Clients = append([]models.Client(nil), s.Clients.Clients...)
	if s.Clients.CurrentClient != nil {
		c := *s.Clients.CurrentClient
		out.Clients.CurrentClient = &c
	}
	if s.Clients.ClientDocuments != nil {
		m := make(map[int64][]models.Document, len(s.Clients.ClientDocuments))
		for k, v := range s.Clients.ClientDocuments {
			m[k] = append([]models.Document(nil), v...)
		}
		out.Clients.ClientDocuments = m
	}

	out.Documents.Documents = append([]models.Document(nil), s.Documents.Documents...)
	if s.Documents.CurrentDocument != nil {
		d := *s.Documents.CurrentDocument
		out.Documents.CurrentDocument = &d
	}
	if s.Documents.AnalysisResults != nil {
		r := *s.Documents.AnalysisResults
		out.Documents.AnalysisResults = &r
	}

	if s.UI.Notification != nil {
		n := *s.UI.Notification
		out.UI.Notification = &n
	}

	return out
}
