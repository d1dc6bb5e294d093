// Package devserver is an in-memory implementation of the backend REST
// surface the console talks to. It exists so the client can be developed,
// demoed and end-to-end tested without the production analysis backend:
// uploads keep metadata only and processing attaches deterministic canned
// results. It is not a production server.
package devserver

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rohitpatil05/finlens/internal/client/models"
	"github.com/rohitpatil05/finlens/internal/logging"
)

type user struct {
	ID           int64
	Username     string
	Email        string
	Role         models.Role
	PasswordHash []byte
}

// Server holds all state behind one mutex; the dataset is a demo-sized
// handful of records, contention is not a concern.
type Server struct {
	app    *fiber.App
	secret []byte
	log    logging.Logger

	mu        sync.Mutex
	users     map[int64]*user
	clients   map[int64]*models.Client
	documents map[int64]*models.Document
	docOwner  map[int64]int64 // document id -> user id
	nextID    int64
}

// New builds the server and seeds the demo dataset.
func New(secret string, log logging.Logger) *Server {
	s := &Server{
		app:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		secret:    []byte(secret),
		log:       log,
		users:     make(map[int64]*user),
		clients:   make(map[int64]*models.Client),
		documents: make(map[int64]*models.Document),
		docOwner:  make(map[int64]int64),
	}
	s.routes()
	s.seed()
	return s
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves until the listener fails.
func (s *Server) Listen(addr string) error {
	s.log.Info(context.Background(), "dev server listening", "addr", addr)
	return s.app.Listen(addr)
}

func (s *Server) routes() {
	api := s.app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", s.register)
	auth.Post("/login", s.login)
	auth.Post("/reset-password", s.resetPassword)

	protected := api.Group("", s.requireAuth)

	protected.Get("/clients", s.listClients)
	protected.Post("/clients", s.createClient)
	protected.Get("/clients/:id", s.getClient)
	protected.Put("/clients/:id", s.updateClient)
	protected.Delete("/clients/:id", s.deleteClient)
	protected.Get("/clients/:id/documents", s.clientDocuments)

	protected.Post("/documents/upload", s.uploadDocument)
	protected.Get("/documents", s.listDocuments)
	protected.Get("/documents/:id", s.getDocument)
	protected.Post("/documents/:id/process", s.processDocument)
	protected.Delete("/documents/:id", s.deleteDocument)
	protected.Get("/documents/:id/status", s.documentStatus)

	protected.Get("/analysis/:id", s.analysisResults)
	protected.Get("/analysis/:id/cibil", s.cibilScore)
	protected.Get("/analysis/:id/summary", s.summary)
	protected.Get("/analysis/:id/tables", s.tables)
	protected.Get("/analysis/:id/ocr", s.ocrText)
	protected.Get("/analysis/:id/bank-statement", s.bankStatement)
	protected.Post("/analysis/:id/chat", s.chat)
	protected.Get("/analysis/:id/download", s.downloadReport)
}

// requireAuth validates the bearer token and stashes the caller.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Not authenticated"})
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid or expired token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid token claims"})
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid token claims"})
	}

	s.mu.Lock()
	u := s.users[int64(id)]
	s.mu.Unlock()
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Unknown user"})
	}

	c.Locals("user", u)
	return c.Next()
}

func currentUser(c *fiber.Ctx) *user {
	u, _ := c.Locals("user").(*user)
	return u
}

// issueToken signs an HS256 token carrying the identity claims the
// client reads back out.
func (s *Server) issueToken(u *user) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"email":    u.Email,
		"role":     string(u.Role),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *Server) allocID() int64 {
	s.nextID++
	return s.nextID
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": what + " not found"})
}

func badRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": detail})
}
