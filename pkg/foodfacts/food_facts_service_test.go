package foodfacts

import (
	"PantryPal-Backend/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnconfiguredProviderRejected(t *testing.T) {
	service := &foodFactsService{}

	_, err := service.Search(context.Background(), domain.FoodSearchRequest{Query: "apple"})
	assert.ErrorIs(t, err, domain.ErrFoodDatabaseNotConfigured)

	_, err = service.GetNutrition(context.Background(), "food_a1gb9ubb72c7snbuxr3weagwv0dd")
	assert.ErrorIs(t, err, domain.ErrFoodDatabaseNotConfigured)
}

func TestConfiguredFlag(t *testing.T) {
	assert.False(t, (&foodFactsService{appID: "id"}).configured())
	assert.False(t, (&foodFactsService{appKey: "key"}).configured())
	assert.True(t, (&foodFactsService{appID: "id", appKey: "key"}).configured())
}
