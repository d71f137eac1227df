package domain

import (
	"errors"
	"time"
)

const NotificationTypeExpiringItems = "expiring-items"

// ExpiryWarningWindow is how far ahead the daily sweep looks for expiring
// pantry items.
const ExpiryWarningWindow = 72 * time.Hour

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkRead         = "notification marked as read"

	MessageFailedGetNotifications = "failed to fetch notifications"
	MessageFailedMarkRead         = "failed to mark notification as read"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	ExpiringItemPayload struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Quantity   float64   `json:"quantity"`
		Unit       string    `json:"unit"`
		ExpiryDate time.Time `json:"expiry_date"`
	}

	NotificationResponse struct {
		ID        string                `json:"id"`
		Type      string                `json:"type"`
		Items     []ExpiringItemPayload `json:"items,omitempty"`
		Read      bool                  `json:"read"`
		CreatedAt time.Time             `json:"created_at"`
	}
)
