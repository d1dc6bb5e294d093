package devserver

import (
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

func (s *Server) uploadDocument(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "File is required")
	}

	title := c.FormValue("title")
	if title == "" {
		title = file.Filename
	}

	var clientID *int64
	if v := c.FormValue("client_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid client_id")
		}
		s.mu.Lock()
		_, ok := s.clients[id]
		s.mu.Unlock()
		if !ok {
			return notFound(c, "Client")
		}
		clientID = &id
	}

	u := currentUser(c)

	s.mu.Lock()
	doc := &models.Document{
		ID:        s.allocID(),
		Title:     title,
		Status:    models.StatusUploaded,
		ClientID:  clientID,
		FileType:  file.Header.Get("Content-Type"),
		CreatedAt: time.Now().UTC(),
	}
	s.documents[doc.ID] = doc
	s.docOwner[doc.ID] = u.ID
	s.mu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (s *Server) listDocuments(c *fiber.Ctx) error {
	u := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Document, 0, len(s.documents))
	for id, d := range s.documents {
		if u.Role == models.RoleAdmin || s.docOwner[id] == u.ID {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(out)
}

func (s *Server) getDocument(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid document id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.documents[id]
	if !ok {
		return notFound(c, "Document")
	}
	return c.JSON(d)
}

// processDocument runs the simulated analysis synchronously: the
// document completes immediately and the canned result is derived from
// its id, so repeated runs are stable.
func (s *Server) processDocument(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid document id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.documents[id]
	if !ok {
		return notFound(c, "Document")
	}
	if d.Status == models.StatusProcessing {
		return badRequest(c, "Document is already being processed")
	}

	alreadyDone := d.Status == models.StatusCompleted
	now := time.Now().UTC()
	d.Status = models.StatusCompleted
	d.ProcessedAt = &now

	analysis := cannedAnalysis(id)
	message := "Document processed successfully"
	if alreadyDone {
		message = "Document has already been processed"
	}

	return c.JSON(fiber.Map{
		"documentId": id,
		"status":     models.StatusCompleted,
		"message":    message,
		"score":      analysis.score,
		"results": fiber.Map{
			"analysis": fiber.Map{
				"cibilScore": analysis.score,
				"summary":    analysis.summary,
			},
			"ocrText":    analysis.ocrText,
			"confidence": analysis.confidence,
		},
	})
}

func (s *Server) deleteDocument(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid document id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok {
		return notFound(c, "Document")
	}
	delete(s.documents, id)
	delete(s.docOwner, id)
	return c.JSON(fiber.Map{"message": "Document deleted"})
}

func (s *Server) documentStatus(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid document id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.documents[id]
	if !ok {
		return notFound(c, "Document")
	}
	return c.JSON(fiber.Map{"documentId": id, "status": d.Status})
}
