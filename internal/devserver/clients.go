package devserver

import (
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

func parseIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil
}

func (s *Server) listClients(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Client, 0, len(s.clients))
	for _, cl := range s.clients {
		cl := *cl
		cl.DocumentsCount, cl.ProcessedCount = s.countDocsLocked(cl.ID)
		out = append(out, cl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(out)
}

func (s *Server) getClient(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid client id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cl, ok := s.clients[id]
	if !ok {
		return notFound(c, "Client")
	}
	out := *cl
	out.DocumentsCount, out.ProcessedCount = s.countDocsLocked(id)
	return c.JSON(out)
}

func (s *Server) createClient(c *fiber.Ctx) error {
	var in models.ClientInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if in.Name == "" {
		return badRequest(c, "Name is required")
	}

	now := time.Now().UTC()
	s.mu.Lock()
	cl := &models.Client{
		ID:           s.allocID(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		Notes:        in.Notes,
		LastActivity: &now,
	}
	s.clients[cl.ID] = cl
	s.mu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(cl)
}

func (s *Server) updateClient(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid client id")
	}
	var in models.ClientInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cl, ok := s.clients[id]
	if !ok {
		return notFound(c, "Client")
	}

	if in.Name != "" {
		cl.Name = in.Name
	}
	cl.Email = in.Email
	cl.Phone = in.Phone
	cl.Address = in.Address
	cl.Notes = in.Notes
	now := time.Now().UTC()
	cl.LastActivity = &now

	out := *cl
	out.DocumentsCount, out.ProcessedCount = s.countDocsLocked(id)
	return c.JSON(out)
}

func (s *Server) deleteClient(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid client id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[id]; !ok {
		return notFound(c, "Client")
	}
	delete(s.clients, id)
	// detach, don't delete: documents survive their client
	for _, d := range s.documents {
		if d.ClientID != nil && *d.ClientID == id {
			d.ClientID = nil
		}
	}
	return c.JSON(fiber.Map{"message": "Client deleted"})
}

func (s *Server) clientDocuments(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid client id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[id]; !ok {
		return notFound(c, "Client")
	}

	out := make([]models.Document, 0)
	for _, d := range s.documents {
		if d.ClientID != nil && *d.ClientID == id {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(out)
}

func (s *Server) countDocsLocked(clientID int64) (total, processed int) {
	for _, d := range s.documents {
		if d.ClientID != nil && *d.ClientID == clientID {
			total++
			if d.Status == models.StatusCompleted {
				processed++
			}
		}
	}
	return total, processed
}
