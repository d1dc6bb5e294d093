package store

import "github.com/rohitpatil05/finlens/internal/client/models"

// SetDocuments replaces the collection wholesale with the server's order.
func (s *Store) SetDocuments(docs []models.Document) {
	s.Dispatch(func(st *State) {
		st.Documents.Documents = docs
		st.Documents.Error = ""
	})
}

// SetCurrentDocument focuses a document without touching the collection.
func (s *Store) SetCurrentDocument(d *models.Document) {
	s.Dispatch(func(st *State) {
		st.Documents.CurrentDocument = d
		st.Documents.Error = ""
	})
}

// ClearCurrentDocument drops the focus and any attached analysis.
func (s *Store) ClearCurrentDocument() {
	s.Dispatch(func(st *State) {
		st.Documents.CurrentDocument = nil
		st.Documents.AnalysisResults = nil
	})
}

// AddDocument appends an uploaded document and focuses it.
func (s *Store) AddDocument(d models.Document) {
	s.Dispatch(func(st *State) {
		st.Documents.Documents = append(st.Documents.Documents, d)
		st.Documents.CurrentDocument = &d
		st.Documents.Error = ""
	})
}

// ApplyAnalysis attaches a process result and moves the matching document
// (and the focused one, if it is the same) to the status the backend
// reported. The payload is the source of truth; nothing is guessed.
func (s *Store) ApplyAnalysis(res *models.AnalysisResult) {
	s.Dispatch(func(st *State) {
		st.Documents.AnalysisResults = res
		st.Documents.Error = ""

		status := res.Status
		if status == "" {
			status = models.StatusCompleted
		}
		for i := range st.Documents.Documents {
			if st.Documents.Documents[i].ID == res.DocumentID {
				st.Documents.Documents[i].Status = status
				break
			}
		}
		if st.Documents.CurrentDocument != nil && st.Documents.CurrentDocument.ID == res.DocumentID {
			st.Documents.CurrentDocument.Status = status
		}
	})
}

// RemoveDocument deletes the entry by id; focus and analysis are cleared
// when they belonged to the removed document.
func (s *Store) RemoveDocument(id int64) {
	s.Dispatch(func(st *State) {
		kept := st.Documents.Documents[:0]
		for _, d := range st.Documents.Documents {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		st.Documents.Documents = kept
		if st.Documents.CurrentDocument != nil && st.Documents.CurrentDocument.ID == id {
			st.Documents.CurrentDocument = nil
			st.Documents.AnalysisResults = nil
		}
		st.Documents.Error = ""
	})
}

// SetDocumentsError records a failure; the collection stays untouched.
func (s *Store) SetDocumentsError(msg string) {
	s.Dispatch(func(st *State) {
		st.Documents.Error = msg
	})
}

// ClearDocumentsError clears the slice's error.
func (s *Store) ClearDocumentsError() {
	s.Dispatch(func(st *State) {
		st.Documents.Error = ""
	})
}
