package entities

import (
	"github.com/google/uuid"
)

type ShoppingList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name   string    `json:"name"`

	User  *User               `gorm:"foreignKey:UserID"`
	Items []*ShoppingListItem `gorm:"foreignKey:ListID"`
	Timestamp
}

type ShoppingListItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListID    uuid.UUID `gorm:"type:uuid;index" json:"list_id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	IsChecked bool      `json:"is_checked"`

	List *ShoppingList `gorm:"foreignKey:ListID"`
	Timestamp
}
