package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Ingredients     string    `json:"ingredients" gorm:"type:text"`    // JSON array
	Instructions    string    `json:"instructions" gorm:"type:text"`   // JSON array
	Nutrition       string    `json:"nutrition" gorm:"type:text"`      // JSON object
	Tags            string    `json:"tags" gorm:"type:text"`           // JSON array, lowercase keywords
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Servings        int       `json:"servings"`
	ImageURL        string    `json:"image_url,omitempty"`
	Source          string    `json:"source,omitempty"`
	IsFavorite      bool      `json:"is_favorite"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
