package handlers

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/assistant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AssistantHandler interface {
		AIChefQuery(c *fiber.Ctx) error
		AnalyzeMicronutrition(c *fiber.Ctx) error
		ProcessBarcode(c *fiber.Ctx) error
	}

	assistantHandler struct {
		assistantService assistant.AssistantService
		validator        *validator.Validate
	}
)

func NewAssistantHandler(assistantService assistant.AssistantService, validator *validator.Validate) AssistantHandler {
	return &assistantHandler{
		assistantService: assistantService,
		validator:        validator,
	}
}

func (h *assistantHandler) AIChefQuery(c *fiber.Ctx) error {
	req := new(domain.AIChefRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAIChefQuery, err)
	}

	res, err := h.assistantService.AIChefQuery(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedAIChefQuery, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAIChefQuery)
}

func (h *assistantHandler) AnalyzeMicronutrition(c *fiber.Ctx) error {
	req := new(domain.MicronutritionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMicronutrition, err)
	}

	res, err := h.assistantService.AnalyzeMicronutrition(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedMicronutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMicronutrition)
}

func (h *assistantHandler) ProcessBarcode(c *fiber.Ctx) error {
	req := new(domain.BarcodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBarcodeLookup, err)
	}

	res, err := h.assistantService.LookupBarcode(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedBarcodeLookup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBarcodeLookup)
}
