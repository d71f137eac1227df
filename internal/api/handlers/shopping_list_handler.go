package handlers

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/shoppinglist"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		CreateList(c *fiber.Ctx) error
		GetLists(c *fiber.Ctx) error
		GetListDetail(c *fiber.Ctx) error
		AddItems(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		TransferToPantry(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		listService shoppinglist.ShoppingListService
		validator   *validator.Validate
	}
)

func NewShoppingListHandler(listService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		listService: listService,
		validator:   validator,
	}
}

func (h *shoppingListHandler) CreateList(c *fiber.Ctx) error {
	req := new(domain.CreateShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateList, err)
	}

	res, err := h.listService.CreateList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedCreateList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateList)
}

func (h *shoppingListHandler) GetLists(c *fiber.Ctx) error {
	userID := c.Params("userId")

	res, err := h.listService.GetLists(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLists)
}

func (h *shoppingListHandler) GetListDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")

	res, err := h.listService.GetListDetail(c.Context(), listID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetList)
}

func (h *shoppingListHandler) AddItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")
	req := new(domain.AddListItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItems, err)
	}

	if err := h.listService.AddItems(c.Context(), listID, userID, *req); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedAddListItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddListItems)
}

func (h *shoppingListHandler) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("listId")
	itemID := c.Params("itemId")
	req := new(domain.UpdateListItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListItem, err)
	}

	if err := h.listService.UpdateItem(c.Context(), listID, itemID, userID, *req); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedUpdateListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateListItem)
}

func (h *shoppingListHandler) TransferToPantry(c *fiber.Ctx) error {
	listID := c.Params("listId")
	req := new(domain.ListToPantryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListToPantry, err)
	}

	if err := h.listService.TransferToPantry(c.Context(), listID, *req); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedListToPantry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessListToPantry)
}
