package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

// UploadInput describes one file upload. Title and ClientID are optional.
type UploadInput struct {
	FileName string
	Content  io.Reader
	Title    string
	ClientID *int64
}

// StatusResponse is the lightweight status poll payload.
type StatusResponse struct {
	DocumentID int64                 `json:"documentId"`
	Status     models.DocumentStatus `json:"status"`
}

// ListDocuments returns the caller's documents in server order.
func (c *Client) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var out []models.Document
	if err := c.getJSON(ctx, "/documents", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDocument returns a single document by id.
func (c *Client) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	var out models.Document
	if err := c.getJSON(ctx, fmt.Sprintf("/documents/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadDocument sends a multipart upload (fields: file, title, client_id)
// and returns the created document record.
func (c *Client) UploadDocument(ctx context.Context, in UploadInput) (*models.Document, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile("file", in.FileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, in.Content); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if in.Title != "" {
		if err := w.WriteField("title", in.Title); err != nil {
			return nil, err
		}
	}
	if in.ClientID != nil {
		if err := w.WriteField("client_id", strconv.FormatInt(*in.ClientID, 10)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var out models.Document
	if err := c.do(ctx, http.MethodPost, "/documents/upload", buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProcessDocument triggers backend analysis and returns its result.
// The returned payload is the source of truth for the document's status.
func (c *Client) ProcessDocument(ctx context.Context, id int64) (*models.AnalysisResult, error) {
	var out models.AnalysisResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/documents/%d/process", id), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, id int64) error {
	return c.deleteReq(ctx, fmt.Sprintf("/documents/%d", id))
}

// DocumentStatus polls the processing state of a document.
func (c *Client) DocumentStatus(ctx context.Context, id int64) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/documents/%d/status", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
