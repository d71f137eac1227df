package handlers

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/billing"

	"github.com/gofiber/fiber/v2"
)

type (
	BillingHandler interface {
		Subscribe(c *fiber.Ctx) error
		MidtransWebhook(c *fiber.Ctx) error
	}

	billingHandler struct {
		billingService billing.BillingService
	}
)

func NewBillingHandler(billingService billing.BillingService) BillingHandler {
	return &billingHandler{billingService: billingService}
}

func (h *billingHandler) Subscribe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.billingService.Subscribe(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *billingHandler) MidtransWebhook(c *fiber.Ctx) error {
	req := new(domain.MidtransWebhookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.billingService.HandleWebhook(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
