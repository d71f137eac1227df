package handlers

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		MarkRead(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Params("userId")

	res, err := h.notificationService.GetNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("notificationId")

	if err := h.notificationService.MarkRead(c.Context(), notificationID, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkRead)
}
