package api

import (
	"context"
	"fmt"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

// ListClients returns the caller's clients in server order.
func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.getJSON(ctx, "/clients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetClient returns a single client by id.
func (c *Client) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	var out models.Client
	if err := c.getJSON(ctx, fmt.Sprintf("/clients/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClient creates a client record.
func (c *Client) CreateClient(ctx context.Context, in models.ClientInput) (*models.Client, error) {
	var out models.Client
	if err := c.postJSON(ctx, "/clients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient updates a client record.
func (c *Client) UpdateClient(ctx context.Context, id int64, in models.ClientInput) (*models.Client, error) {
	var out models.Client
	if err := c.putJSON(ctx, fmt.Sprintf("/clients/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient removes a client record.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.deleteReq(ctx, fmt.Sprintf("/clients/%d", id))
}

// ClientDocuments returns the documents belonging to one client.
func (c *Client) ClientDocuments(ctx context.Context, id int64) ([]models.Document, error) {
	var out []models.Document
	if err := c.getJSON(ctx, fmt.Sprintf("/clients/%d/documents", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}
