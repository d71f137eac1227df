package recipe

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes map[uuid.UUID]*entities.Recipe
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: map[uuid.UUID]*entities.Recipe{}}
}

func (r *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.recipes[recipe.ID] = recipe
	return nil
}

func (r *fakeRecipeRepository) GetRecipesByUserID(_ context.Context, userID string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, recipe := range r.recipes {
		if recipe.UserID.String() == userID {
			out = append(out, recipe)
		}
	}
	return out, nil
}

func (r *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipeUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	recipe, ok := r.recipes[recipeUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (r *fakeRecipeRepository) SearchByTag(_ context.Context, keyword string, limit int) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, recipe := range r.recipes {
		if strings.Contains(recipe.Tags, `"`+keyword+`"`) {
			out = append(out, recipe)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestSaveRecipeLowercasesTags(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)

	res, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{
		UserID: uuid.New().String(),
		Recipe: domain.RecipePayload{
			Name:        "Arrabbiata",
			Ingredients: []string{"pasta", "tomatoes", "chili"},
			Tags:        []string{"Spicy", "ITALIAN"},
		},
	})
	require.NoError(t, err)

	recipeUUID, err := uuid.Parse(res.RecipeID)
	require.NoError(t, err)
	saved := repo.recipes[recipeUUID]
	assert.Contains(t, saved.Tags, `"spicy"`)
	assert.Contains(t, saved.Tags, `"italian"`)
	assert.NotContains(t, saved.Tags, "Spicy")
}

func TestGetRecipeDetailRoundTripsArrays(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)

	res, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{
		UserID: uuid.New().String(),
		Recipe: domain.RecipePayload{
			Name:         "Omelette",
			Ingredients:  []string{"eggs", "butter"},
			Instructions: []string{"whisk", "fry"},
			Nutrition:    map[string]float64{"protein": 12},
		},
	})
	require.NoError(t, err)

	detail, err := service.GetRecipeDetail(context.Background(), res.RecipeID)
	require.NoError(t, err)
	assert.Equal(t, []string{"eggs", "butter"}, detail.Ingredients)
	assert.Equal(t, []string{"whisk", "fry"}, detail.Instructions)
	assert.Equal(t, float64(12), detail.Nutrition["protein"])
}

func TestSearchByKeywordsDeduplicates(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)

	_, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{
		UserID: uuid.New().String(),
		Recipe: domain.RecipePayload{
			Name: "Chicken Curry",
			Tags: []string{"chicken", "spicy"},
		},
	})
	require.NoError(t, err)

	results, err := service.SearchByKeywords(context.Background(), []string{"Chicken", "SPICY", "", "  "})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestGetRecipeDetailMissing(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository())

	_, err := service.GetRecipeDetail(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
