package handlers

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/foodfacts"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodFactsHandler interface {
		Search(c *fiber.Ctx) error
		GetNutrition(c *fiber.Ctx) error
	}

	foodFactsHandler struct {
		foodFactsService foodfacts.FoodFactsService
		validator        *validator.Validate
	}
)

func NewFoodFactsHandler(foodFactsService foodfacts.FoodFactsService, validator *validator.Validate) FoodFactsHandler {
	return &foodFactsHandler{
		foodFactsService: foodFactsService,
		validator:        validator,
	}
}

func (h *foodFactsHandler) Search(c *fiber.Ctx) error {
	req := domain.FoodSearchRequest{Query: c.Query("query")}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFoodSearch, err)
	}

	res, err := h.foodFactsService.Search(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedFoodSearch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFoodSearch)
}

func (h *foodFactsHandler) GetNutrition(c *fiber.Ctx) error {
	foodID := c.Params("foodId")

	res, err := h.foodFactsService.GetNutrition(c.Context(), foodID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedFoodNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFoodNutrition)
}
