package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

// AnalysisResults returns the full analysis payload for a processed
// document. The shape is backend-owned; it is surfaced as a generic map.
func (c *Client) AnalysisResults(ctx context.Context, documentID int64) (map[string]any, error) {
	var out map[string]any
	if err := c.getJSON(ctx, fmt.Sprintf("/analysis/%d", documentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CibilScore returns the credit-score view of an analysis.
func (c *Client) CibilScore(ctx context.Context, documentID int64) (*models.CibilScore, error) {
	var out models.CibilScore
	if err := c.getJSON(ctx, fmt.Sprintf("/analysis/%d/cibil", documentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DocumentSummary returns the narrative summary of an analysis.
func (c *Client) DocumentSummary(ctx context.Context, documentID int64) (*models.Summary, error) {
	var out models.Summary
	if err := c.getJSON(ctx, fmt.Sprintf("/analysis/%d/summary", documentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractedTables returns the tables extracted from the document.
func (c *Client) ExtractedTables(ctx context.Context, documentID int64) ([]models.Table, error) {
	var out []models.Table
	if err := c.getJSON(ctx, fmt.Sprintf("/analysis/%d/tables", documentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OCRText returns the recognized text of the document.
func (c *Client) OCRText(ctx context.Context, documentID int64) (*models.OCRText, error) {
	var out models.OCRText
	if err := c.getJSON(ctx, fmt.Sprintf("/analysis/%d/ocr", documentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BankStatement returns the bank-statement breakdown of an analysis.
func (c *Client) BankStatement(ctx context.Context, documentID int64) (*models.BankStatement, error) {
	var out models.BankStatement
	if err := c.getJSON(ctx, fmt.Sprintf("/analysis/%d/bank-statement", documentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Chat sends one question about an analyzed document.
func (c *Client) Chat(ctx context.Context, documentID int64, message string) (*models.ChatResponse, error) {
	var out models.ChatResponse
	in := models.ChatMessage{Message: message}
	if err := c.postJSON(ctx, fmt.Sprintf("/analysis/%d/chat", documentID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadReport fetches the generated analysis report as raw bytes.
// Unlike the JSON endpoints the response body is returned untouched.
func (c *Client) DownloadReport(ctx context.Context, documentID int64, format string) (*models.Report, error) {
	path := fmt.Sprintf("/analysis/%d/download?format=%s", documentID, url.QueryEscape(format))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	token := c.currentToken()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, c.errorFromResponse(resp, token != "")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	report := &models.Report{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
		Filename:    fmt.Sprintf("analysis-%d.%s", documentID, format),
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if name := params["filename"]; name != "" {
			report.Filename = name
		}
	}
	return report, nil
}
