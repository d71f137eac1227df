package handlers

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/assistant"
	"PantryPal-Backend/pkg/recipe"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		SaveRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService    recipe.RecipeService
		assistantService assistant.AssistantService
		validator        *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, assistantService assistant.AssistantService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:    recipeService,
		assistantService: assistantService,
		validator:        validator,
	}
}

func (h *recipeHandler) SaveRecipe(c *fiber.Ctx) error {
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	res, err := h.recipeService.SaveRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	userID := c.Params("userId")

	res, err := h.recipeService.GetRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("recipeId")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	req := new(domain.SearchRecipesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	// Keyword extraction degrades to naive tokenization when the language
	// model is unavailable; the search itself always runs.
	keywords, err := h.assistantService.ExtractSearchKeywords(c.Context(), req.Query)
	if err != nil {
		keywords = strings.Fields(strings.ToLower(req.Query))
	}

	results, err := h.recipeService.SearchByKeywords(c.Context(), keywords)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, domain.SearchRecipesResponse{Results: results}, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}
