package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveRecipe    = "recipe saved"
	MessageSuccessGetRecipes    = "recipes retrieved successfully"
	MessageSuccessGetRecipe     = "recipe retrieved successfully"
	MessageSuccessSearchRecipes = "recipes search completed"

	MessageFailedSaveRecipe    = "failed to save recipe"
	MessageFailedGetRecipes    = "failed to fetch recipes"
	MessageFailedGetRecipe     = "failed to fetch recipe details"
	MessageFailedSearchRecipes = "failed to search recipes"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	RecipePayload struct {
		Name         string             `json:"name" validate:"required"`
		Description  string             `json:"description"`
		Ingredients  []string           `json:"ingredients"`
		Instructions []string           `json:"instructions"`
		PrepTime     int                `json:"prepTime"`
		CookTime     int                `json:"cookTime"`
		Servings     int                `json:"servings"`
		Nutrition    map[string]float64 `json:"nutrition"`
		Tags         []string           `json:"tags"`
		Image        string             `json:"image,omitempty"`
		Source       string             `json:"source,omitempty"`
		IsFavorite   bool               `json:"isFavorite"`
	}

	SaveRecipeRequest struct {
		UserID string        `json:"userId" validate:"required"`
		Recipe RecipePayload `json:"recipe" validate:"required"`
	}

	SaveRecipeResponse struct {
		RecipeID string `json:"recipeId"`
	}

	SearchRecipesRequest struct {
		Query string `json:"query" validate:"required"`
	}

	RecipeResponse struct {
		ID           string             `json:"id"`
		Name         string             `json:"name"`
		Description  string             `json:"description"`
		Ingredients  []string           `json:"ingredients"`
		Instructions []string           `json:"instructions"`
		PrepTime     int                `json:"prep_time,omitempty"`
		CookTime     int                `json:"cook_time,omitempty"`
		Servings     int                `json:"servings,omitempty"`
		Nutrition    map[string]float64 `json:"nutrition,omitempty"`
		Tags         []string           `json:"tags"`
		Image        string             `json:"image,omitempty"`
		Source       string             `json:"source,omitempty"`
		IsFavorite   bool               `json:"is_favorite"`
		CreatedAt    time.Time          `json:"created_at"`
		UpdatedAt    time.Time          `json:"updated_at"`
	}

	SearchRecipesResponse struct {
		Results []RecipeResponse `json:"results"`
	}
)
