package devserver

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

// requireProcessed loads the document behind an /analysis route; only
// completed documents have derived views.
func (s *Server) requireProcessed(c *fiber.Ctx) (*models.Document, error) {
	id, ok := parseIDParam(c)
	if !ok {
		return nil, badRequest(c, "Invalid document id")
	}

	s.mu.Lock()
	d, ok := s.documents[id]
	s.mu.Unlock()
	if !ok {
		return nil, notFound(c, "Document")
	}
	if d.Status != models.StatusCompleted {
		return nil, badRequest(c, "Document has not been processed yet")
	}
	return d, nil
}

func (s *Server) analysisResults(c *fiber.Ctx) error {
	d, err := s.requireProcessed(c)
	if d == nil {
		return err
	}
	a := cannedAnalysis(d.ID)
	return c.JSON(fiber.Map{
		"analysis": fiber.Map{
			"cibilScore": a.score,
			"summary":    a.summary,
		},
		"ocrText":    a.ocrText,
		"confidence": a.confidence,
		"tableData":  a.tables,
	})
}

func (s *Server) cibilScore(c *fiber.Ctx) error {
	d, err := s.requireProcessed(c)
	if d == nil {
		return err
	}
	a := cannedAnalysis(d.ID)
	return c.JSON(models.CibilScore{
		Score: a.score,
		ExtractedData: map[string]any{
			"income":      a.statement.TotalCredits,
			"expenses":    a.statement.TotalDebits,
			"assets":      a.statement.ClosingBalance,
			"liabilities": a.statement.TotalDebits / 4,
		},
	})
}

func (s *Server) summary(c *fiber.Ctx) error {
	d, err := s.requireProcessed(c)
	if d == nil {
		return err
	}
	a := cannedAnalysis(d.ID)
	return c.JSON(models.Summary{
		Summary: a.summary,
		Highlights: []string{
			fmt.Sprintf("Total credits %.2f", a.statement.TotalCredits),
			fmt.Sprintf("Total debits %.2f", a.statement.TotalDebits),
			fmt.Sprintf("Closing balance %.2f", a.statement.ClosingBalance),
		},
	})
}

func (s *Server) tables(c *fiber.Ctx) error {
	d, err := s.requireProcessed(c)
	if d == nil {
		return err
	}
	return c.JSON(cannedAnalysis(d.ID).tables)
}

func (s *Server) ocrText(c *fiber.Ctx) error {
	d, err := s.requireProcessed(c)
	if d == nil {
		return err
	}
	a := cannedAnalysis(d.ID)
	return c.JSON(models.OCRText{Text: a.ocrText, Confidence: a.confidence})
}

func (s *Server) bankStatement(c *fiber.Ctx) error {
	d, err := s.requireProcessed(c)
	if d == nil {
		return err
	}
	return c.JSON(cannedAnalysis(d.ID).statement)
}

func (s *Server) chat(c *fiber.Ctx) error {
	d, err := s.requireProcessed(c)
	if d == nil {
		return err
	}

	var msg models.ChatMessage
	if err := c.BodyParser(&msg); err != nil || msg.Message == "" {
		return badRequest(c, "Message is required")
	}

	a := cannedAnalysis(d.ID)
	answer := fmt.Sprintf(
		"Based on document %d (score %d): credits total %.2f and debits total %.2f over the statement period. You asked: %q.",
		d.ID, a.score, a.statement.TotalCredits, a.statement.TotalDebits, msg.Message)
	return c.JSON(models.ChatResponse{Message: answer})
}

func (s *Server) downloadReport(c *fiber.Ctx) error {
	d, err := s.requireProcessed(c)
	if d == nil {
		return err
	}
	format := c.Query("format", "pdf")
	a := cannedAnalysis(d.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "FinLens analysis report\n")
	fmt.Fprintf(&b, "Document: %d (%s)\n", d.ID, d.Title)
	fmt.Fprintf(&b, "Score: %d\n\n%s\n", a.score, a.summary)

	filename := fmt.Sprintf("analysis-%d.%s", d.ID, format)
	c.Set("Content-Type", "application/octet-stream")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.SendString(b.String())
}
