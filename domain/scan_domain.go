package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessUploadReceipt  = "receipt uploaded successfully"
	MessageSuccessGetScan        = "scan retrieved successfully"
	MessageSuccessSaveScanItems  = "scanned items saved successfully"
	MessageSuccessRecognizeFood  = "food items recognized successfully"

	MessageFailedUploadReceipt = "failed to upload receipt"
	MessageFailedGetScan       = "failed to fetch scan"
	MessageFailedSaveScanItems = "failed to save scanned items"
	MessageFailedRecognizeFood = "failed to recognize food items"

	ErrScanNotFound       = errors.New("receipt scan not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	ReceiptScanResponse struct {
		ScanID    string        `json:"scan_id"`
		ImageURL  string        `json:"image_url"`
		Status    string        `json:"status"`
		Items     []ReceiptItem `json:"items,omitempty"`
		UpdatedAt time.Time     `json:"updated_at"`
	}

	SaveScannedItemsRequest struct {
		UserID string              `json:"userId" validate:"required"`
		ScanID string              `json:"scanId" validate:"required,uuid"`
		Items  []PantryItemPayload `json:"items" validate:"required"`
	}

	RecognizeFoodRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecognizeFoodResponse struct {
		RecognizedItems []RecognizedItem `json:"recognizedItems"`
	}
)
