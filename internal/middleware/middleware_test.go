package middleware

import (
	"PantryPal-Backend/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(jwtService jwt.JWTService) *fiber.App {
	m := NewMiddleware()
	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := app.Group("", m.AuthMiddleware(jwtService), m.AuthorizeSubject())
	auth.Get("/profile/:userId", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user": c.Locals("user_id")})
	})
	auth.Post("/items", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	return app
}

func TestHealthExemptFromAuth(t *testing.T) {
	app := newTestApp(jwt.NewJWTService())

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestMissingTokenRejected(t *testing.T) {
	app := newTestApp(jwt.NewJWTService())

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile/u1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestMalformedTokenRejected(t *testing.T) {
	app := newTestApp(jwt.NewJWTService())

	req := httptest.NewRequest(http.MethodGet, "/profile/u1", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestSubjectMismatchRejected(t *testing.T) {
	jwtService := jwt.NewJWTService()
	app := newTestApp(jwtService)
	token := jwtService.GenerateTokenUser("u1", "u1@example.com")

	req := httptest.NewRequest(http.MethodGet, "/profile/u2", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}

func TestSubjectMatchAllowed(t *testing.T) {
	jwtService := jwt.NewJWTService()
	app := newTestApp(jwtService)
	token := jwtService.GenerateTokenUser("u1", "u1@example.com")

	req := httptest.NewRequest(http.MethodGet, "/profile/u1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestBodySubjectMismatchRejected(t *testing.T) {
	jwtService := jwt.NewJWTService()
	app := newTestApp(jwtService)
	token := jwtService.GenerateTokenUser("u1", "u1@example.com")

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"userId":"u2","items":[]}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}

func TestNoSubjectPassesThrough(t *testing.T) {
	jwtService := jwt.NewJWTService()
	app := newTestApp(jwtService)
	token := jwtService.GenerateTokenUser("u1", "u1@example.com")

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"items":[]}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
}
