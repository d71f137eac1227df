package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealPlan struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	User  *User        `gorm:"foreignKey:UserID"`
	Meals []*MealEntry `gorm:"foreignKey:MealPlanID"`
	Timestamp
}

type MealEntry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MealPlanID uuid.UUID  `gorm:"type:uuid;index" json:"meal_plan_id"`
	Date       time.Time  `json:"date"`
	MealType   string     `json:"meal_type"` // breakfast, lunch, dinner, snack
	RecipeID   *uuid.UUID `gorm:"type:uuid" json:"recipe_id,omitempty"`
	RecipeName string     `json:"recipe_name,omitempty"`
	Notes      string     `json:"notes,omitempty"`

	MealPlan *MealPlan `gorm:"foreignKey:MealPlanID"`
	Timestamp
}
