package models

import "time"

// DocumentStatus is the backend-owned processing state of a document.
// Transitions: uploaded -> processing -> completed | failed. The client
// never invents a status; it applies what the backend reports.
type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusFailed     DocumentStatus = "failed"
)

// Terminal reports whether the status is a final one.
func (s DocumentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Document is an uploaded file plus its processing state.
type Document struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Status      DocumentStatus `json:"status"`
	ClientID    *int64         `json:"client_id,omitempty"`
	FileType    string         `json:"file_type,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	ProcessedAt *time.Time     `json:"processed_at,omitempty"`
}
