package handlers

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/api/presenters"
	"PantryPal-Backend/pkg/scan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		UploadReceipt(c *fiber.Ctx) error
		GetScan(c *fiber.Ctx) error
		SaveScannedItems(c *fiber.Ctx) error
		RecognizeFood(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) UploadReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadReceiptRequest)

	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.ReceiptImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.scanService.UploadReceipt(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedUploadReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusAccepted, domain.MessageSuccessUploadReceipt)
}

func (h *scanHandler) GetScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("scanId")

	res, err := h.scanService.GetScan(c.Context(), scanID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScan)
}

func (h *scanHandler) SaveScannedItems(c *fiber.Ctx) error {
	req := new(domain.SaveScannedItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScanItems, err)
	}

	if err := h.scanService.SaveScannedItems(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedSaveScanItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSaveScanItems)
}

func (h *scanHandler) RecognizeFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecognizeFoodRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecognizeFood, err)
	}

	res, err := h.scanService.RecognizeFood(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedRecognizeFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecognizeFood)
}
