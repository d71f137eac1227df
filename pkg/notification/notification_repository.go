package notification

import (
	"PantryPal-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotificationsByUserID(ctx context.Context, userID string) ([]*entities.Notification, error)
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		MarkRead(ctx context.Context, id string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetNotificationsByUserID(ctx context.Context, userID string) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}
