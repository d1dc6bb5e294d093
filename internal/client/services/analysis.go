package services

import (
	"context"

	"github.com/rohitpatil05/finlens/internal/client/api"
	"github.com/rohitpatil05/finlens/internal/client/models"
	"github.com/rohitpatil05/finlens/internal/client/store"
	"github.com/rohitpatil05/finlens/internal/logging"
)

// Analysis reads the derived views of a processed document. These are
// read-only sub-resources; failures land in the documents slice (the
// owning slice) like every other document operation.
type Analysis struct {
	api   *api.Client
	store *store.Store
	log   logging.Logger
}

func NewAnalysis(apiClient *api.Client, st *store.Store, log logging.Logger) *Analysis {
	return &Analysis{api: apiClient, store: st, log: log}
}

// run wraps one read with loading bookkeeping and error capture.
func (a *Analysis) run(ctx context.Context, fallback string, call func() error) error {
	a.store.BeginLoading()
	defer a.store.EndLoading()

	if err := call(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.store.SetDocumentsError(errMessage(err, fallback))
		return err
	}
	return ctx.Err()
}

// Results returns the full analysis payload.
func (a *Analysis) Results(ctx context.Context, documentID int64) (map[string]any, error) {
	var out map[string]any
	err := a.run(ctx, "failed to fetch analysis results", func() error {
		var callErr error
		out, callErr = a.api.AnalysisResults(ctx, documentID)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cibil returns the credit-score view.
func (a *Analysis) Cibil(ctx context.Context, documentID int64) (*models.CibilScore, error) {
	var out *models.CibilScore
	err := a.run(ctx, "failed to fetch credit score", func() error {
		var callErr error
		out, callErr = a.api.CibilScore(ctx, documentID)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Summary returns the narrative summary.
func (a *Analysis) Summary(ctx context.Context, documentID int64) (*models.Summary, error) {
	var out *models.Summary
	err := a.run(ctx, "failed to fetch summary", func() error {
		var callErr error
		out, callErr = a.api.DocumentSummary(ctx, documentID)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Tables returns the extracted tables.
func (a *Analysis) Tables(ctx context.Context, documentID int64) ([]models.Table, error) {
	var out []models.Table
	err := a.run(ctx, "failed to fetch tables", func() error {
		var callErr error
		out, callErr = a.api.ExtractedTables(ctx, documentID)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OCR returns the recognized text.
func (a *Analysis) OCR(ctx context.Context, documentID int64) (*models.OCRText, error) {
	var out *models.OCRText
	err := a.run(ctx, "failed to fetch OCR text", func() error {
		var callErr error
		out, callErr = a.api.OCRText(ctx, documentID)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BankStatement returns the statement breakdown.
func (a *Analysis) BankStatement(ctx context.Context, documentID int64) (*models.BankStatement, error) {
	var out *models.BankStatement
	err := a.run(ctx, "failed to fetch bank statement analysis", func() error {
		var callErr error
		out, callErr = a.api.BankStatement(ctx, documentID)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Chat asks one question about the document.
func (a *Analysis) Chat(ctx context.Context, documentID int64, message string) (*models.ChatResponse, error) {
	var out *models.ChatResponse
	err := a.run(ctx, "chat failed", func() error {
		var callErr error
		out, callErr = a.api.Chat(ctx, documentID, message)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Download fetches the generated report.
func (a *Analysis) Download(ctx context.Context, documentID int64, format string) (*models.Report, error) {
	if format == "" {
		format = "pdf"
	}
	var out *models.Report
	err := a.run(ctx, "report download failed", func() error {
		var callErr error
		out, callErr = a.api.DownloadReport(ctx, documentID, format)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
