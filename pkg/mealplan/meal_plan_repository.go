package mealplan

import (
	"PantryPal-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		// CreatePlanWithMeals persists the plan container and its meal
		// entries as one batch.
		CreatePlanWithMeals(ctx context.Context, plan *entities.MealPlan, meals []*entities.MealEntry) error
		GetPlansByUserID(ctx context.Context, userID string) ([]*entities.MealPlan, error)
		GetPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		GetMeals(ctx context.Context, planID string) ([]*entities.MealEntry, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreatePlanWithMeals(ctx context.Context, plan *entities.MealPlan, meals []*entities.MealEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		if len(meals) == 0 {
			return nil
		}
		for _, meal := range meals {
			meal.MealPlanID = plan.ID
		}
		return tx.Create(&meals).Error
	})
}

func (r *mealPlanRepository) GetPlansByUserID(ctx context.Context, userID string) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) GetPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetMeals(ctx context.Context, planID string) ([]*entities.MealEntry, error) {
	var meals []*entities.MealEntry
	if err := r.db.WithContext(ctx).
		Where("meal_plan_id = ?", planID).
		Order("date asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
