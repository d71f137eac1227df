package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateList     = "shopping list created"
	MessageSuccessGetLists       = "shopping lists retrieved successfully"
	MessageSuccessGetList        = "shopping list retrieved successfully"
	MessageSuccessAddListItems   = "items added to shopping list"
	MessageSuccessUpdateListItem = "item updated"
	MessageSuccessListToPantry   = "items added to pantry"

	MessageFailedCreateList     = "failed to create shopping list"
	MessageFailedGetLists       = "failed to fetch shopping lists"
	MessageFailedGetList        = "failed to fetch shopping list items"
	MessageFailedAddListItems   = "failed to add items to shopping list"
	MessageFailedUpdateListItem = "failed to update shopping list item"
	MessageFailedListToPantry   = "failed to add items to pantry"

	ErrShoppingListNotFound = errors.New("shopping list not found")
	ErrListItemNotFound     = errors.New("item not found")
)

type (
	ListItemPayload struct {
		Name      string  `json:"name"`
		Quantity  float64 `json:"quantity"`
		Unit      string  `json:"unit"`
		Category  string  `json:"category"`
		IsChecked bool    `json:"isChecked"`
	}

	CreateShoppingListRequest struct {
		UserID string            `json:"userId" validate:"required"`
		Name   string            `json:"name"`
		Items  []ListItemPayload `json:"items"`
	}

	CreateShoppingListResponse struct {
		ListID string `json:"listId"`
	}

	AddListItemsRequest struct {
		Items []ListItemPayload `json:"items" validate:"required"`
	}

	UpdateListItemRequest struct {
		Name      string   `json:"name" validate:"omitempty"`
		Quantity  *float64 `json:"quantity" validate:"omitempty"`
		Unit      string   `json:"unit" validate:"omitempty"`
		Category  string   `json:"category" validate:"omitempty"`
		IsChecked *bool    `json:"isChecked" validate:"omitempty"`
	}

	ListToPantryRequest struct {
		UserID         string   `json:"userId" validate:"required"`
		PurchasedItems []string `json:"purchasedItems" validate:"required"`
	}

	ListItemResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Quantity  float64   `json:"quantity"`
		Unit      string    `json:"unit"`
		Category  string    `json:"category"`
		IsChecked bool      `json:"is_checked"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	ShoppingListResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	ShoppingListDetailResponse struct {
		List  ShoppingListResponse `json:"list"`
		Items []ListItemResponse   `json:"items"`
	}
)
