package domain

import (
	"errors"
)

var (
	MessageSuccessAIChefQuery     = "query processed successfully"
	MessageSuccessMicronutrition  = "micronutrition analysis completed"
	MessageSuccessBarcodeLookup   = "barcode processed successfully"
	MessageAssistantUnavailable   = "AI assistant integration is not configured"

	MessageFailedAIChefQuery    = "failed to process query"
	MessageFailedMicronutrition = "failed to analyze micronutrition"
	MessageFailedBarcodeLookup  = "failed to process barcode"

	ErrAssistantNotConfigured = errors.New("assistant not configured")
	ErrAssistantFailed        = errors.New("assistant processing failed")
	ErrPremiumRequired        = errors.New("premium subscription required")
)

type (
	AIChefRequest struct {
		UserID string `json:"userId" validate:"required"`
		Query  string `json:"query" validate:"required"`
	}

	AIChefResponse struct {
		Response string `json:"response"`
	}

	MicronutritionRequest struct {
		FoodName string `json:"foodName" validate:"required"`
	}

	MicronutritionResponse struct {
		FoodName string `json:"foodName"`
		Analysis string `json:"analysis"`
	}

	BarcodeRequest struct {
		Barcode string `json:"barcode" validate:"required"`
	}

	BarcodeProduct struct {
		Name      string             `json:"name"`
		Brand     string             `json:"brand,omitempty"`
		Nutrition map[string]float64 `json:"nutrition,omitempty"`
	}

	BarcodeResponse struct {
		Product BarcodeProduct `json:"product"`
	}

	// RecognizedItem is one food item extracted from an image by the vision
	// model.
	RecognizedItem struct {
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}

	// ReceiptItem is one purchase line extracted from a receipt image.
	ReceiptItem struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Price    float64 `json:"price,omitempty"`
	}
)
