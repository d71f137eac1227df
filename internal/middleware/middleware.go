package middleware

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/jwt"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		AuthorizeSubject() fiber.Handler
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
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// AuthMiddleware verifies the bearer credential and attaches the principal
// to the request context. Every route except the liveness probe and the
// payment webhook runs it.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, email, err := jwtService.GetPrincipalByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("email", email)
		return c.Next()
	}
}

// AuthorizeSubject rejects requests whose path or body names a user other
// than the authenticated principal. Routes that name no subject pass
// through untouched. It assumes AuthMiddleware already ran; the Locals type
// assertion panics otherwise, which is the intended failure for misordered
// wiring.
func (m *middleware) AuthorizeSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		requestUserID := c.Params("userId")
		if requestUserID == "" {
			requestUserID = subjectFromBody(c.Body())
		}

		if requestUserID == "" {
			return c.Next()
		}

		if requestUserID != userID {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
		}

		return c.Next()
	}
}

func subjectFromBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var probe struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	return probe.UserID
}
