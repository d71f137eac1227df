package entities

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Type      string    `json:"type"` // "expiring-items"
	Payload   string    `gorm:"type:text" json:"payload"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
