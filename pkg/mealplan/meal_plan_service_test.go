package mealplan

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMealPlanRepository struct {
	plans map[uuid.UUID]*entities.MealPlan
	meals map[uuid.UUID][]*entities.MealEntry
}

func newFakeMealPlanRepository() *fakeMealPlanRepository {
	return &fakeMealPlanRepository{
		plans: map[uuid.UUID]*entities.MealPlan{},
		meals: map[uuid.UUID][]*entities.MealEntry{},
	}
}

func (r *fakeMealPlanRepository) CreatePlanWithMeals(_ context.Context, plan *entities.MealPlan, meals []*entities.MealEntry) error {
	r.plans[plan.ID] = plan
	for _, meal := range meals {
		meal.MealPlanID = plan.ID
	}
	r.meals[plan.ID] = meals
	return nil
}

func (r *fakeMealPlanRepository) GetPlansByUserID(_ context.Context, userID string) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	for _, plan := range r.plans {
		if plan.UserID.String() == userID {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func (r *fakeMealPlanRepository) GetPlanByID(_ context.Context, id string) (*entities.MealPlan, error) {
	planUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	plan, ok := r.plans[planUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return plan, nil
}

func (r *fakeMealPlanRepository) GetMeals(_ context.Context, planID string) ([]*entities.MealEntry, error) {
	planUUID, err := uuid.Parse(planID)
	if err != nil {
		return nil, err
	}
	return r.meals[planUUID], nil
}

func TestBuildMealEntriesSkipsMalformed(t *testing.T) {
	meals := BuildMealEntries([]domain.MealEntryPayload{
		{Date: "2026-09-01", Type: "dinner", RecipeName: "Stew"},
		{Type: "lunch"},
		{Date: "sometime", Type: "breakfast"},
		{Date: "2026-09-02"},
	})

	require.Len(t, meals, 1)
	assert.Equal(t, "dinner", meals[0].MealType)
	assert.Equal(t, "Stew", meals[0].RecipeName)
}

func TestCreatePlanRequiresValidStartDate(t *testing.T) {
	service := NewMealPlanService(newFakeMealPlanRepository())

	_, err := service.CreatePlan(context.Background(), domain.CreateMealPlanRequest{
		UserID:    uuid.New().String(),
		StartDate: "soon",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPlanDate)
}

func TestCreatePlanDefaultsName(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)

	res, err := service.CreatePlan(context.Background(), domain.CreateMealPlanRequest{
		UserID:    uuid.New().String(),
		StartDate: "2026-09-01",
		Meals: []domain.MealEntryPayload{
			{Date: "2026-09-01", Type: "breakfast"},
			{Date: "2026-09-01", Type: "dinner"},
		},
	})
	require.NoError(t, err)

	planUUID, err := uuid.Parse(res.MealPlanID)
	require.NoError(t, err)
	assert.Equal(t, "Meal Plan", repo.plans[planUUID].Name)
	assert.Len(t, repo.meals[planUUID], 2)
}

func TestGetPlanDetailForeignPlan(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)

	res, err := service.CreatePlan(context.Background(), domain.CreateMealPlanRequest{
		UserID:    uuid.New().String(),
		StartDate: "2026-09-01",
	})
	require.NoError(t, err)

	_, err = service.GetPlanDetail(context.Background(), res.MealPlanID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}
