package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateMealPlan = "meal plan created"
	MessageSuccessGetMealPlans   = "meal plans retrieved successfully"
	MessageSuccessGetMealPlan    = "meal plan retrieved successfully"

	MessageFailedCreateMealPlan = "failed to create meal plan"
	MessageFailedGetMealPlans   = "failed to fetch meal plans"
	MessageFailedGetMealPlan    = "failed to fetch meal plan details"

	ErrMealPlanNotFound  = errors.New("meal plan not found")
	ErrInvalidPlanDate   = errors.New("invalid plan date")
)

type (
	// MealEntryPayload is one child entry of a batched meal-plan write.
	// Entries missing date or type are dropped by the service.
	MealEntryPayload struct {
		Date       string `json:"date"` // YYYY-MM-DD
		Type       string `json:"type"` // breakfast, lunch, dinner, snack
		RecipeID   string `json:"recipeId,omitempty"`
		RecipeName string `json:"recipeName,omitempty"`
		Notes      string `json:"notes,omitempty"`
	}

	CreateMealPlanRequest struct {
		UserID    string             `json:"userId" validate:"required"`
		Name      string             `json:"name"`
		StartDate string             `json:"startDate" validate:"required"`
		EndDate   string             `json:"endDate"`
		Meals     []MealEntryPayload `json:"meals"`
	}

	CreateMealPlanResponse struct {
		MealPlanID string `json:"mealPlanId"`
	}

	MealEntryResponse struct {
		ID         string    `json:"id"`
		Date       time.Time `json:"date"`
		Type       string    `json:"type"`
		RecipeID   string    `json:"recipe_id,omitempty"`
		RecipeName string    `json:"recipe_name,omitempty"`
		Notes      string    `json:"notes,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
		UpdatedAt  time.Time `json:"updated_at"`
	}

	MealPlanResponse struct {
		ID        string     `json:"id"`
		Name      string     `json:"name"`
		StartDate time.Time  `json:"start_date"`
		EndDate   *time.Time `json:"end_date,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt time.Time  `json:"updated_at"`
	}

	MealPlanDetailResponse struct {
		Plan  MealPlanResponse    `json:"plan"`
		Meals []MealEntryResponse `json:"meals"`
	}
)
