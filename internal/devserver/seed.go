package devserver

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

// seed loads a small demo dataset: one admin, one accountant, two
// clients and a pair of documents, one of them already processed.
func (s *Server) seed() {
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	caHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	admin := &user{
		ID:           s.allocID(),
		Username:     "admin",
		Email:        "admin@finlens.dev",
		Role:         models.RoleAdmin,
		PasswordHash: adminHash,
	}
	ca := &user{
		ID:           s.allocID(),
		Username:     "testuser",
		Email:        "testuser@finlens.dev",
		Role:         models.RoleCA,
		PasswordHash: caHash,
	}
	s.users[admin.ID] = admin
	s.users[ca.ID] = ca

	now := time.Now().UTC()
	acme := &models.Client{
		ID:           s.allocID(),
		Name:         "Acme Traders",
		Email:        "accounts@acme.example",
		Phone:        "+91-98765-43210",
		Address:      "14 MG Road, Pune",
		Notes:        "Quarterly GST filings",
		LastActivity: &now,
	}
	mehta := &models.Client{
		ID:           s.allocID(),
		Name:         "Mehta & Sons",
		Email:        "office@mehta.example",
		LastActivity: &now,
	}
	s.clients[acme.ID] = acme
	s.clients[mehta.ID] = mehta

	processedAt := now.Add(-2 * time.Hour)
	done := &models.Document{
		ID:          s.allocID(),
		Title:       "acme-statement-q2.pdf",
		Status:      models.StatusCompleted,
		ClientID:    &acme.ID,
		FileType:    "application/pdf",
		CreatedAt:   now.Add(-24 * time.Hour),
		ProcessedAt: &processedAt,
	}
	fresh := &models.Document{
		ID:        s.allocID(),
		Title:     "mehta-statement-july.pdf",
		Status:    models.StatusUploaded,
		ClientID:  &mehta.ID,
		FileType:  "application/pdf",
		CreatedAt: now.Add(-3 * time.Hour),
	}
	s.documents[done.ID] = done
	s.documents[fresh.ID] = fresh
	s.docOwner[done.ID] = ca.ID
	s.docOwner[fresh.ID] = ca.ID
}
