package middleware

import (
	"strings"

	"pantry-tracker/domain"
	"pantry-tracker/internal/api/presenters"
	"pantry-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		Identify(jwtService jwt.JWTService) fiber.Handler
		EnsureLoggedIn() fiber.Handler
		EnsureAdmin() fiber.Handler
		EnsureAdminOrCorrectUser(param string) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE",
	})
}

// Identify attaches the token identity to the request when a valid bearer
// token is present. A missing or bad token is not an error here; routes that
// need identity enforce it with the guards below.
func (m *middleware) Identify(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Next()
		}

		token := strings.TrimPrefix(header, "Bearer ")
		username, isAdmin, err := jwtService.GetClaimsByToken(token)
		if err != nil {
			return c.Next()
		}

		c.Locals("username", username)
		c.Locals("is_admin", isAdmin)
		return c.Next()
	}
}

func (m *middleware) EnsureLoggedIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("username").(string); !ok {
			return presenters.ErrorResponse(c, domain.ErrLoginRequired)
		}
		return c.Next()
	}
}

func (m *middleware) EnsureAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("username").(string); !ok {
			return presenters.ErrorResponse(c, domain.ErrLoginRequired)
		}
		if isAdmin, ok := c.Locals("is_admin").(bool); !ok || !isAdmin {
			return presenters.ErrorResponse(c, domain.ErrUserNotAllowed)
		}
		return c.Next()
	}
}

// EnsureAdminOrCorrectUser passes admins, and non-admins whose token
// username matches the named path parameter.
func (m *middleware) EnsureAdminOrCorrectUser(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, ok := c.Locals("username").(string)
		if !ok {
			return presenters.ErrorResponse(c, domain.ErrLoginRequired)
		}
		if isAdmin, ok := c.Locals("is_admin").(bool); ok && isAdmin {
			return c.Next()
		}
		if username != c.Params(param) {
			return presenters.ErrorResponse(c, domain.ErrUserNotAllowed)
		}
		return c.Next()
	}
}
