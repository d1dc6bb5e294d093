package services

import (
	"context"
	"time"

	"github.com/rohitpatil05/finlens/internal/client/api"
	"github.com/rohitpatil05/finlens/internal/client/models"
	"github.com/rohitpatil05/finlens/internal/client/store"
	"github.com/rohitpatil05/finlens/internal/logging"
)

// Clients owns the client-record operations. List fetches are throttled:
// a list satisfied within the TTL is served from the store without a
// network call. That is a latency trade-off, not a consistency
// guarantee; mutations made elsewhere stay invisible until the window
// expires. Local mutations reset the window.
type Clients struct {
	api   *api.Client
	store *store.Store
	ttl   time.Duration
	log   logging.Logger
}

func NewClients(apiClient *api.Client, st *store.Store, ttl time.Duration, log logging.Logger) *Clients {
	return &Clients{api: apiClient, store: st, ttl: ttl, log: log}
}

// List returns the client collection, from the store when fresh enough,
// otherwise from the backend (replacing the collection wholesale).
func (c *Clients) List(ctx context.Context) ([]models.Client, error) {
	snap := c.store.Snapshot()
	if !snap.Clients.LastFetched.IsZero() && time.Since(snap.Clients.LastFetched) < c.ttl {
		c.log.Debug(ctx, "serving clients from cache")
		return snap.Clients.Clients, nil
	}

	c.store.BeginLoading()
	defer c.store.EndLoading()

	list, err := c.api.ListClients(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.store.SetClientsError(errMessage(err, "failed to fetch clients"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.store.SetClients(list)
	return list, nil
}

// Get fetches one client and focuses it. The collection is untouched.
func (c *Clients) Get(ctx context.Context, id int64) (*models.Client, error) {
	c.store.BeginLoading()
	defer c.store.EndLoading()

	client, err := c.api.GetClient(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.store.SetClientsError(errMessage(err, "failed to fetch client"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.store.SetCurrentClient(client)
	return client, nil
}

// Create adds a client; on success it is appended and focused.
func (c *Clients) Create(ctx context.Context, in models.ClientInput) (*models.Client, error) {
	c.store.BeginLoading()
	defer c.store.EndLoading()

	client, err := c.api.CreateClient(ctx, in)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.store.SetClientsError(errMessage(err, "failed to create client"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.store.AddClient(*client)
	return client, nil
}

// Update replaces the matching entry by id and updates the focus.
func (c *Clients) Update(ctx context.Context, id int64, in models.ClientInput) (*models.Client, error) {
	c.store.BeginLoading()
	defer c.store.EndLoading()

	client, err := c.api.UpdateClient(ctx, id, in)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.store.SetClientsError(errMessage(err, "failed to update client"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.store.ReplaceClient(*client)
	return client, nil
}

// Delete removes the client, its focus if it matched, and its cached
// document list.
func (c *Clients) Delete(ctx context.Context, id int64) error {
	c.store.BeginLoading()
	defer c.store.EndLoading()

	if err := c.api.DeleteClient(ctx, id); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.store.SetClientsError(errMessage(err, "failed to delete client"))
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	c.store.RemoveClient(id)
	return nil
}

// Documents fetches one client's document list into the keyed sub-state.
func (c *Clients) Documents(ctx context.Context, id int64) ([]models.Document, error) {
	c.store.BeginLoading()
	defer c.store.EndLoading()

	docs, err := c.api.ClientDocuments(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.store.SetClientsError(errMessage(err, "failed to fetch client documents"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.store.SetClientDocuments(id, docs)
	return docs, nil
}

// ClearError clears the clients slice's error.
func (c *Clients) ClearError() {
	c.store.ClearClientsError()
}
