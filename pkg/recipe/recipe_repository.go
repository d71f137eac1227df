package recipe

import (
	"PantryPal-Backend/entities"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipesByUserID(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		// SearchByTag matches recipes whose tag list contains the keyword.
		SearchByTag(ctx context.Context, keyword string, limit int) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipesByUserID(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) SearchByTag(ctx context.Context, keyword string, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	// Tags are stored as a JSON array of lowercase keywords.
	pattern := fmt.Sprintf(`%%"%s"%%`, keyword)
	if err := r.db.WithContext(ctx).
		Where("tags LIKE ?", pattern).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
