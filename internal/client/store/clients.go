package store

import (
	"time"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

// SetClients replaces the collection wholesale with the server's order
// and stamps the fetch time. Never merges.
func (s *Store) SetClients(clients []models.Client) {
	s.Dispatch(func(st *State) {
		st.Clients.Clients = clients
		st.Clients.LastFetched = time.Now()
		st.Clients.Error = ""
	})
}

// SetCurrentClient sets the focused client without touching the collection.
func (s *Store) SetCurrentClient(c *models.Client) {
	s.Dispatch(func(st *State) {
		st.Clients.CurrentClient = c
		st.Clients.Error = ""
	})
}

// ClearCurrentClient drops the focus.
func (s *Store) ClearCurrentClient() {
	s.Dispatch(func(st *State) {
		st.Clients.CurrentClient = nil
	})
}

// AddClient appends a created client and focuses it. The list fetch
// stamp is reset so the next list call re-syncs with the server.
func (s *Store) AddClient(c models.Client) {
	s.Dispatch(func(st *State) {
		st.Clients.Clients = append(st.Clients.Clients, c)
		st.Clients.CurrentClient = &c
		st.Clients.LastFetched = time.Time{}
		st.Clients.Error = ""
	})
}

// ReplaceClient swaps the matching entry by id and updates the focus if
// it pointed at the changed client.
func (s *Store) ReplaceClient(c models.Client) {
	s.Dispatch(func(st *State) {
		for i := range st.Clients.Clients {
			if st.Clients.Clients[i].ID == c.ID {
				st.Clients.Clients[i] = c
				break
			}
		}
		st.Clients.CurrentClient = &c
		st.Clients.LastFetched = time.Time{}
		st.Clients.Error = ""
	})
}

// RemoveClient deletes the entry by id, clears the focus if it matched,
// and drops the client's cached document list.
func (s *Store) RemoveClient(id int64) {
	s.Dispatch(func(st *State) {
		kept := st.Clients.Clients[:0]
		for _, c := range st.Clients.Clients {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		st.Clients.Clients = kept
		if st.Clients.CurrentClient != nil && st.Clients.CurrentClient.ID == id {
			st.Clients.CurrentClient = nil
		}
		delete(st.Clients.ClientDocuments, id)
		st.Clients.LastFetched = time.Time{}
		st.Clients.Error = ""
	})
}

// SetClientDocuments caches one client's document list under its id.
func (s *Store) SetClientDocuments(clientID int64, docs []models.Document) {
	s.Dispatch(func(st *State) {
		if st.Clients.ClientDocuments == nil {
			st.Clients.ClientDocuments = make(map[int64][]models.Document)
		}
		st.Clients.ClientDocuments[clientID] = docs
		st.Clients.Error = ""
	})
}

// SetClientsError records a failure; collection and focus stay untouched.
func (s *Store) SetClientsError(msg string) {
	s.Dispatch(func(st *State) {
		st.Clients.Error = msg
	})
}

// ClearClientsError clears the slice's error.
func (s *Store) ClearClientsError() {
	s.Dispatch(func(st *State) {
		st.Clients.Error = ""
	})
}
