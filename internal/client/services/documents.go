package services

import (
	"context"

	"github.com/rohitpatil05/finlens/internal/client/api"
	"github.com/rohitpatil05/finlens/internal/client/models"
	"github.com/rohitpatil05/finlens/internal/client/store"
	"github.com/rohitpatil05/finlens/internal/logging"
)

// Documents owns upload, list, get, process, delete and status polling.
type Documents struct {
	api   *api.Client
	store *store.Store
	log   logging.Logger
}

func NewDocuments(apiClient *api.Client, st *store.Store, log logging.Logger) *Documents {
	return &Documents{api: apiClient, store: st, log: log}
}

// Upload sends a file; the created document is appended and focused.
func (d *Documents) Upload(ctx context.Context, in api.UploadInput) (*models.Document, error) {
	d.store.BeginLoading()
	defer d.store.EndLoading()

	doc, err := d.api.UploadDocument(ctx, in)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		d.store.SetDocumentsError(errMessage(err, "document upload failed"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	d.store.AddDocument(*doc)
	d.log.Info(ctx, "document uploaded", "id", doc.ID, "title", doc.Title)
	return doc, nil
}

// List replaces the document collection wholesale.
func (d *Documents) List(ctx context.Context) ([]models.Document, error) {
	d.store.BeginLoading()
	defer d.store.EndLoading()

	docs, err := d.api.ListDocuments(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		d.store.SetDocumentsError(errMessage(err, "failed to fetch documents"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	d.store.SetDocuments(docs)
	return docs, nil
}

// Get fetches one document and focuses it.
func (d *Documents) Get(ctx context.Context, id int64) (*models.Document, error) {
	d.store.BeginLoading()
	defer d.store.EndLoading()

	doc, err := d.api.GetDocument(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		d.store.SetDocumentsError(errMessage(err, "failed to fetch document"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	d.store.SetCurrentDocument(doc)
	return doc, nil
}

// Process triggers backend analysis. On success the result is attached
// to the slice and the document's status follows the backend payload.
func (d *Documents) Process(ctx context.Context, id int64) (*models.AnalysisResult, error) {
	d.store.BeginLoading()
	defer d.store.EndLoading()

	res, err := d.api.ProcessDocument(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		d.store.SetDocumentsError(errMessage(err, "document processing failed"))
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	d.store.ApplyAnalysis(res)
	d.log.Info(ctx, "document processed", "id", res.DocumentID, "score", res.Score)
	return res, nil
}

// Delete removes the document; focus and analysis follow the reducer.
func (d *Documents) Delete(ctx context.Context, id int64) error {
	d.store.BeginLoading()
	defer d.store.EndLoading()

	if err := d.api.DeleteDocument(ctx, id); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		d.store.SetDocumentsError(errMessage(err, "failed to delete document"))
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	d.store.RemoveDocument(id)
	return nil
}

// Status polls the processing state without touching slice data.
func (d *Documents) Status(ctx context.Context, id int64) (*api.StatusResponse, error) {
	st, err := d.api.DocumentStatus(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		d.store.SetDocumentsError(errMessage(err, "failed to fetch document status"))
		return nil, err
	}
	return st, nil
}

// ClearError clears the documents slice's error.
func (d *Documents) ClearError() {
	d.store.ClearDocumentsError()
}
