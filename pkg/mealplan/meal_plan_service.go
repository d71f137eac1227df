package mealplan

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		CreatePlan(ctx context.Context, req domain.CreateMealPlanRequest) (domain.CreateMealPlanResponse, error)
		GetPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error)
		GetPlanDetail(ctx context.Context, planID, userID string) (domain.MealPlanDetailResponse, error)
	}

	mealPlanService struct {
		planRepository MealPlanRepository
	}
)

func NewMealPlanService(planRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{planRepository: planRepository}
}

func (s *mealPlanService) CreatePlan(ctx context.Context, req domain.CreateMealPlanRequest) (domain.CreateMealPlanResponse, error) {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.CreateMealPlanResponse{}, domain.ErrParseUUID
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return domain.CreateMealPlanResponse{}, domain.ErrInvalidPlanDate
	}

	name := req.Name
	if name == "" {
		name = "Meal Plan"
	}

	now := time.Now()
	plan := &entities.MealPlan{
		ID:        uuid.New(),
		UserID:    userUUID,
		Name:      name,
		StartDate: startDate,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return domain.CreateMealPlanResponse{}, domain.ErrInvalidPlanDate
		}
		plan.EndDate = &endDate
	}

	if err := s.planRepository.CreatePlanWithMeals(ctx, plan, BuildMealEntries(req.Meals)); err != nil {
		return domain.CreateMealPlanResponse{}, err
	}

	return domain.CreateMealPlanResponse{MealPlanID: plan.ID.String()}, nil
}

// BuildMealEntries converts meal payloads into rows, dropping entries that
// lack a date or a type.
func BuildMealEntries(payloads []domain.MealEntryPayload) []*entities.MealEntry {
	now := time.Now()
	meals := make([]*entities.MealEntry, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Date == "" || payload.Type == "" {
			continue
		}
		date, err := time.Parse("2006-01-02", payload.Date)
		if err != nil {
			continue
		}

		meal := &entities.MealEntry{
			ID:         uuid.New(),
			Date:       date,
			MealType:   payload.Type,
			RecipeName: payload.RecipeName,
			Notes:      payload.Notes,
			Timestamp: entities.Timestamp{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if payload.RecipeID != "" {
			if recipeUUID, err := uuid.Parse(payload.RecipeID); err == nil {
				meal.RecipeID = &recipeUUID
			}
		}

		meals = append(meals, meal)
	}
	return meals
}

func (s *mealPlanService) GetPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error) {
	plans, err := s.planRepository.GetPlansByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		response = append(response, planResponse(plan))
	}
	return response, nil
}

func (s *mealPlanService) GetPlanDetail(ctx context.Context, planID, userID string) (domain.MealPlanDetailResponse, error) {
	plan, err := s.planRepository.GetPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanDetailResponse{}, domain.ErrMealPlanNotFound
		}
		return domain.MealPlanDetailResponse{}, err
	}

	if plan.UserID.String() != userID {
		return domain.MealPlanDetailResponse{}, domain.ErrUserNotAllowed
	}

	meals, err := s.planRepository.GetMeals(ctx, planID)
	if err != nil {
		return domain.MealPlanDetailResponse{}, err
	}

	detail := domain.MealPlanDetailResponse{
		Plan:  planResponse(plan),
		Meals: make([]domain.MealEntryResponse, 0, len(meals)),
	}
	for _, meal := range meals {
		res := domain.MealEntryResponse{
			ID:         meal.ID.String(),
			Date:       meal.Date,
			Type:       meal.MealType,
			RecipeName: meal.RecipeName,
			Notes:      meal.Notes,
			CreatedAt:  meal.CreatedAt,
			UpdatedAt:  meal.UpdatedAt,
		}
		if meal.RecipeID != nil {
			res.RecipeID = meal.RecipeID.String()
		}
		detail.Meals = append(detail.Meals, res)
	}
	return detail, nil
}

func planResponse(plan *entities.MealPlan) domain.MealPlanResponse {
	return domain.MealPlanResponse{
		ID:        plan.ID.String(),
		Name:      plan.Name,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}
}
