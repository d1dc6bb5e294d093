package models

import "time"

// Client is a customer record owned by an accountant.
type Client struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	DocumentsCount int        `json:"documents_count,omitempty"`
	ProcessedCount int        `json:"processed_count,omitempty"`
	LastActivity   *time.Time `json:"last_activity,omitempty"`
}

// ClientInput is the payload for create/update calls.
type ClientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}
