package presenters

import (
	"PantryPal-Backend/domain"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrPantryNotFound, fiber.StatusNotFound},
		{domain.ErrShoppingListNotFound, fiber.StatusNotFound},
		{domain.ErrMealPlanNotFound, fiber.StatusNotFound},
		{domain.ErrUserNotFound, fiber.StatusNotFound},
		{domain.ErrScanNotFound, fiber.StatusNotFound},
		{domain.ErrUserNotAllowed, fiber.StatusForbidden},
		{domain.ErrPremiumRequired, fiber.StatusForbidden},
		{domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{domain.ErrCredentialsInvalid, fiber.StatusUnauthorized},
		{domain.ErrAssistantNotConfigured, fiber.StatusServiceUnavailable},
		{domain.ErrFoodDatabaseNotConfigured, fiber.StatusServiceUnavailable},
		{domain.ErrParseUUID, fiber.StatusBadRequest},
		{domain.ErrInvalidExpiryDate, fiber.StatusBadRequest},
		{errors.New("driver: connection refused"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, ErrorStatus(tc.err), "error %q", tc.err)
	}
}
