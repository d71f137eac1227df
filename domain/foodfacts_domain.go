package domain

import (
	"encoding/json"
	"errors"
)

var (
	MessageSuccessFoodSearch    = "food search completed"
	MessageSuccessFoodNutrition = "nutrition information retrieved"
	MessageFoodDBUnavailable    = "food database integration is not configured"

	MessageFailedFoodSearch    = "failed to search food database"
	MessageFailedFoodNutrition = "failed to fetch nutrition information"

	ErrFoodDatabaseNotConfigured = errors.New("food database not configured")
	ErrFoodDatabaseFailed        = errors.New("food database request failed")
)

type (
	FoodSearchRequest struct {
		Query string `json:"query" validate:"required"`
	}

	// FoodSearchResponse passes the provider payload through unmodified.
	FoodSearchResponse struct {
		Results json.RawMessage `json:"results"`
	}

	FoodNutritionResponse struct {
		FoodID    string          `json:"foodId"`
		Nutrients json.RawMessage `json:"nutrients"`
	}
)
