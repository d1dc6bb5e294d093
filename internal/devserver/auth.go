package devserver

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(c *fiber.Ctx) error {
	var body registerPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if body.Username == "" || body.Password == "" {
		return badRequest(c, "Username and password are required")
	}

	s.mu.Lock()
	for _, u := range s.users {
		if u.Username == body.Username || (body.Email != "" && u.Email == body.Email) {
			s.mu.Unlock()
			return badRequest(c, "User already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		s.mu.Unlock()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Could not hash password"})
	}

	role := models.RoleCA
	if strings.Contains(body.Username, "admin") {
		role = models.RoleAdmin
	}

	u := &user{
		ID:           s.allocID(),
		Username:     body.Username,
		Email:        body.Email,
		Role:         role,
		PasswordHash: hash,
	}
	s.users[u.ID] = u
	s.mu.Unlock()

	token, err := s.issueToken(u)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Could not issue token"})
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":       u.ID,
			"username": u.Username,
			"email":    u.Email,
			"role":     u.Role,
		},
		"access_token": token,
	})
}

// login accepts form-encoded credentials, FastAPI OAuth2 style.
// Username or email both work.
func (s *Server) login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return badRequest(c, "Username and password are required")
	}

	s.mu.Lock()
	var found *user
	for _, u := range s.users {
		if u.Username == username || u.Email == username {
			found = u
			break
		}
	}
	s.mu.Unlock()

	if found == nil || bcrypt.CompareHashAndPassword(found.PasswordHash, []byte(password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Incorrect username or password"})
	}

	token, err := s.issueToken(found)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Could not issue token"})
	}

	return c.JSON(fiber.Map{"access_token": token, "token_type": "bearer"})
}

func (s *Server) resetPassword(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return badRequest(c, "Email is required")
	}
	// Always succeed: a reset endpoint must not leak which addresses exist.
	return c.JSON(fiber.Map{"message": "If the address is registered, a reset mail has been sent"})
}
