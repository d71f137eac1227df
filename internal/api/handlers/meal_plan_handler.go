package handlers

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		CreatePlan(c *fiber.Ctx) error
		GetPlans(c *fiber.Ctx) error
		GetPlanDetail(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		planService mealplan.MealPlanService
		validator   *validator.Validate
	}
)

func NewMealPlanHandler(planService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		planService: planService,
		validator:   validator,
	}
}

func (h *mealPlanHandler) CreatePlan(c *fiber.Ctx) error {
	req := new(domain.CreateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMealPlan, err)
	}

	res, err := h.planService.CreatePlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedCreateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMealPlan)
}

func (h *mealPlanHandler) GetPlans(c *fiber.Ctx) error {
	userID := c.Params("userId")

	res, err := h.planService.GetPlans(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) GetPlanDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("planId")

	res, err := h.planService.GetPlanDetail(c.Context(), planID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlan)
}
