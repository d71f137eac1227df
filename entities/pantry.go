package entities

import (
	"time"

	"github.com/google/uuid"
)

type Pantry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User  *User         `gorm:"foreignKey:UserID"`
	Items []*PantryItem `gorm:"foreignKey:PantryID"`
}

type PantryItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PantryID     uuid.UUID  `gorm:"type:uuid;index" json:"pantry_id"`
	Name         string     `json:"name"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	Category     string     `json:"category"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	PurchaseDate time.Time  `json:"purchase_date"`
	ImageURL     string     `json:"image_url,omitempty"`
	IsCustom     bool       `json:"is_custom"`

	Pantry *Pantry `gorm:"foreignKey:PantryID"`
	Timestamp
}
