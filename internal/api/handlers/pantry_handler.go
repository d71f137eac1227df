package handlers

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/pantry"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		AddItems(c *fiber.Ctx) error
		GetPantry(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		validator:     validator,
	}
}

func (h *pantryHandler) AddItems(c *fiber.Ctx) error {
	req := new(domain.AddPantryItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItems, err)
	}

	if err := h.pantryService.AddItems(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedAddPantryItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddPantryItems)
}

func (h *pantryHandler) GetPantry(c *fiber.Ctx) error {
	userID := c.Params("userId")

	res, err := h.pantryService.GetPantry(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetPantry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPantry)
}

func (h *pantryHandler) UpdateItem(c *fiber.Ctx) error {
	userID := c.Params("userId")
	itemID := c.Params("itemId")
	req := new(domain.UpdatePantryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	if err := h.pantryService.UpdateItem(c.Context(), userID, itemID, *req); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedUpdatePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePantryItem)
}

func (h *pantryHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Params("userId")
	itemID := c.Params("itemId")

	if err := h.pantryService.DeleteItem(c.Context(), userID, itemID); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedDeletePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePantryItem)
}
