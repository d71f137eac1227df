package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItems   = "items added to pantry"
	MessageSuccessGetPantry        = "pantry retrieved successfully"
	MessageSuccessUpdatePantryItem = "item updated"
	MessageSuccessDeletePantryItem = "item deleted"

	MessageFailedAddPantryItems   = "failed to add items to pantry"
	MessageFailedGetPantry        = "failed to fetch pantry items"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"

	ErrPantryNotFound     = errors.New("pantry not found")
	ErrPantryItemNotFound = errors.New("item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
)

type (
	// PantryItemPayload is one child entry of a batched pantry write. Entries
	// without a name are dropped by the service, never rejected, so no field
	// here is validated as required.
	PantryItemPayload struct {
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
		Category     string  `json:"category"`
		ExpiryDate   string  `json:"expiryDate,omitempty"`   // YYYY-MM-DD
		PurchaseDate string  `json:"purchaseDate,omitempty"` // YYYY-MM-DD
		IsCustom     bool    `json:"isCustom"`
	}

	AddPantryItemsRequest struct {
		UserID string              `json:"userId" validate:"required"`
		Items  []PantryItemPayload `json:"items" validate:"required"`
	}

	UpdatePantryItemRequest struct {
		Name       string   `json:"name" validate:"omitempty"`
		Quantity   *float64 `json:"quantity" validate:"omitempty"`
		Unit       string   `json:"unit" validate:"omitempty"`
		Category   string   `json:"category" validate:"omitempty"`
		ExpiryDate string   `json:"expiryDate" validate:"omitempty"`
	}

	PantryItemResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Quantity     float64    `json:"quantity"`
		Unit         string     `json:"unit"`
		Category     string     `json:"category"`
		ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
		PurchaseDate time.Time  `json:"purchase_date"`
		ImageURL     string     `json:"image_url,omitempty"`
		IsCustom     bool       `json:"is_custom"`
		CreatedAt    time.Time  `json:"created_at"`
		UpdatedAt    time.Time  `json:"updated_at"`
	}

	PantryResponse struct {
		Items []PantryItemResponse `json:"items"`
	}
)
