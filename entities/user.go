package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email               string    `gorm:"uniqueIndex" json:"email"`
	Password            string    `json:"-"`
	DisplayName         string    `json:"display_name"`
	DietaryRestrictions string    `gorm:"type:text" json:"dietary_restrictions,omitempty"` // JSON array
	FavoriteCuisines    string    `gorm:"type:text" json:"favorite_cuisines,omitempty"`    // JSON array
	IsPremium           bool      `json:"is_premium"`

	Timestamp
}
