package presenters

import (
	"PantryPal-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	// Internal failures carry only the generic message; everything else
	// surfaces its sentinel text.
	if err != nil && status < fiber.StatusInternalServerError {
		res.Error = err.Error()
	}
	return c.Status(status).JSON(res)
}

// ErrorStatus maps a service error onto the HTTP status taxonomy.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrPantryNotFound),
		errors.Is(err, domain.ErrPantryItemNotFound),
		errors.Is(err, domain.ErrShoppingListNotFound),
		errors.Is(err, domain.ErrListItemNotFound),
		errors.Is(err, domain.ErrMealPlanNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrScanNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrPremiumRequired):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrAssistantNotConfigured),
		errors.Is(err, domain.ErrFoodDatabaseNotConfigured):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidPlanDate),
		errors.Is(err, domain.ErrInvalidImageFormat),
		errors.Is(err, domain.ErrDisplayNameRequired),
		errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
