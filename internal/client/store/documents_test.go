package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

func TestSetDocuments_ReplacesWholesale(t *testing.T) {
	s := newTestStore()
	s.SetDocuments([]models.Document{{ID: 1}, {ID: 2}})
	s.SetDocuments([]models.Document{{ID: 3}})

	snap := s.Snapshot()
	require.Len(t, snap.Documents.Documents, 1)
	assert.Equal(t, int64(3), snap.Documents.Documents[0].ID)
}

func TestAddDocument_AppendsAndFocuses(t *testing.T) {
	s := newTestStore()
	s.SetDocuments([]models.Document{{ID: 1}})

	s.AddDocument(models.Document{ID: 2, Title: "b.pdf", Status: models.StatusUploaded})
	snap := s.Snapshot()
	require.Len(t, snap.Documents.Documents, 2)
	require.NotNil(t, snap.Documents.CurrentDocument)
	assert.Equal(t, int64(2), snap.Documents.CurrentDocument.ID)
}

func TestApplyAnalysis_FlipsStatusFromPayload(t *testing.T) {
	s := newTestStore()
	s.SetDocuments([]models.Document{
		{ID: 8, Status: models.StatusUploaded},
		{ID: 9, Status: models.StatusUploaded},
	})
	s.SetCurrentDocument(&models.Document{ID: 9, Status: models.StatusUploaded})

	s.ApplyAnalysis(&models.AnalysisResult{DocumentID: 9, Score: 750})
	snap := s.Snapshot()

	require.NotNil(t, snap.Documents.AnalysisResults)
	assert.Equal(t, float64(750), snap.Documents.AnalysisResults.Score)

	assert.Equal(t, models.StatusUploaded, snap.Documents.Documents[0].Status)
	assert.Equal(t, models.StatusCompleted, snap.Documents.Documents[1].Status, "empty status in the payload defaults to completed")
	assert.Equal(t, models.StatusCompleted, snap.Documents.CurrentDocument.Status)
}

func TestApplyAnalysis_HonoursExplicitStatus(t *testing.T) {
	s := newTestStore()
	s.SetDocuments([]models.Document{{ID: 3, Status: models.StatusProcessing}})

	s.ApplyAnalysis(&models.AnalysisResult{DocumentID: 3, Status: models.StatusFailed, Message: "unreadable scan"})
	snap := s.Snapshot()
	assert.Equal(t, models.StatusFailed, snap.Documents.Documents[0].Status)
}

func TestRemoveDocument_ClearsFocusAndAnalysisWhenMatched(t *testing.T) {
	s := newTestStore()
	s.SetDocuments([]models.Document{{ID: 1}, {ID: 2}})
	s.SetCurrentDocument(&models.Document{ID: 2})
	s.ApplyAnalysis(&models.AnalysisResult{DocumentID: 2})

	s.RemoveDocument(2)
	snap := s.Snapshot()
	require.Len(t, snap.Documents.Documents, 1)
	assert.Nil(t, snap.Documents.CurrentDocument)
	assert.Nil(t, snap.Documents.AnalysisResults)
}

func TestRemoveDocument_KeepsUnrelatedFocus(t *testing.T) {
	s := newTestStore()
	s.SetDocuments([]models.Document{{ID: 1}, {ID: 2}})
	s.SetCurrentDocument(&models.Document{ID: 1})
	s.ApplyAnalysis(&models.AnalysisResult{DocumentID: 1})

	s.RemoveDocument(2)
	snap := s.Snapshot()
	require.NotNil(t, snap.Documents.CurrentDocument)
	assert.Equal(t, int64(1), snap.Documents.CurrentDocument.ID)
	assert.NotNil(t, snap.Documents.AnalysisResults)
}

func TestClearCurrentDocument_DropsAnalysisToo(t *testing.T) {
	s := newTestStore()
	s.SetCurrentDocument(&models.Document{ID: 1})
	s.ApplyAnalysis(&models.AnalysisResult{DocumentID: 1})

	s.ClearCurrentDocument()
	snap := s.Snapshot()
	assert.Nil(t, snap.Documents.CurrentDocument)
	assert.Nil(t, snap.Documents.AnalysisResults)
}
