package entities

import (
	"time"

	"github.com/google/uuid"
)

type ReceiptScan struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	ImageURL string    `json:"image_url"`
	Status   string    `json:"status"` // "Pending", "Processed", "Failed"
	Results  string    `json:"results,omitempty" gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type FoodRecognition struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	ImageURL  string    `json:"image_url"`
	Items     string    `gorm:"type:text" json:"items"` // JSON array of recognized items
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
