package entities

import (
	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	OrderID     string    `gorm:"uniqueIndex" json:"order_id"`
	GrossAmount int64     `json:"gross_amount"`
	Status      string    `json:"status"` // "pending", "settlement", "expire", "cancel"
	PaymentType string    `json:"payment_type,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
