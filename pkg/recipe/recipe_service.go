package recipe

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const searchResultsPerKeyword = 5

type (
	RecipeService interface {
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest) (domain.SaveRecipeResponse, error)
		GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error)
		// SearchByKeywords runs the tag search for every keyword and merges
		// the results.
		SearchByKeywords(ctx context.Context, keywords []string) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest) (domain.SaveRecipeResponse, error) {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.SaveRecipeResponse{}, domain.ErrParseUUID
	}

	tags := make([]string, 0, len(req.Recipe.Tags))
	for _, tag := range req.Recipe.Tags {
		tags = append(tags, strings.ToLower(tag))
	}

	ingredients, err := json.Marshal(req.Recipe.Ingredients)
	if err != nil {
		return domain.SaveRecipeResponse{}, err
	}
	instructions, err := json.Marshal(req.Recipe.Instructions)
	if err != nil {
		return domain.SaveRecipeResponse{}, err
	}
	nutrition, err := json.Marshal(req.Recipe.Nutrition)
	if err != nil {
		return domain.SaveRecipeResponse{}, err
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return domain.SaveRecipeResponse{}, err
	}

	now := time.Now()
	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            req.Recipe.Name,
		Description:     req.Recipe.Description,
		Ingredients:     string(ingredients),
		Instructions:    string(instructions),
		Nutrition:       string(nutrition),
		Tags:            string(tagsJSON),
		PrepTimeMinutes: req.Recipe.PrepTime,
		CookTimeMinutes: req.Recipe.CookTime,
		Servings:        req.Recipe.Servings,
		ImageURL:        req.Recipe.Image,
		Source:          req.Recipe.Source,
		IsFavorite:      req.Recipe.IsFavorite,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.SaveRecipeResponse{}, err
	}

	return domain.SaveRecipeResponse{RecipeID: recipe.ID.String()}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, recipeResponse(recipe))
	}
	return response, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return recipeResponse(recipe), nil
}

func (s *recipeService) SearchByKeywords(ctx context.Context, keywords []string) ([]domain.RecipeResponse, error) {
	seen := map[string]bool{}
	results := make([]domain.RecipeResponse, 0)
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}

		recipes, err := s.recipeRepository.SearchByTag(ctx, keyword, searchResultsPerKeyword)
		if err != nil {
			return nil, err
		}
		for _, recipe := range recipes {
			id := recipe.ID.String()
			if seen[id] {
				continue
			}
			seen[id] = true
			results = append(results, recipeResponse(recipe))
		}
	}
	return results, nil
}

func recipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Description: recipe.Description,
		PrepTime:    recipe.PrepTimeMinutes,
		CookTime:    recipe.CookTimeMinutes,
		Servings:    recipe.Servings,
		Image:       recipe.ImageURL,
		Source:      recipe.Source,
		IsFavorite:  recipe.IsFavorite,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
	if recipe.Ingredients != "" {
		_ = json.Unmarshal([]byte(recipe.Ingredients), &res.Ingredients)
	}
	if recipe.Instructions != "" {
		_ = json.Unmarshal([]byte(recipe.Instructions), &res.Instructions)
	}
	if recipe.Nutrition != "" {
		_ = json.Unmarshal([]byte(recipe.Nutrition), &res.Nutrition)
	}
	if recipe.Tags != "" {
		_ = json.Unmarshal([]byte(recipe.Tags), &res.Tags)
	}
	return res
}
