package notification

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"PantryPal-Backend/internal/utils/mailing"
	"PantryPal-Backend/pkg/pantry"
	"PantryPal-Backend/pkg/user"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error)
		MarkRead(ctx context.Context, notificationID, userID string) error
		// SweepExpiringItems checks every pantry for items expiring inside
		// the warning window and records a notification per affected user.
		// Runs daily from the scheduler.
		SweepExpiringItems(ctx context.Context) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		pantryRepository       pantry.PantryRepository
		userRepository         user.UserRepository
	}
)

func NewNotificationService(
	notificationRepository NotificationRepository,
	pantryRepository pantry.PantryRepository,
	userRepository user.UserRepository,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		pantryRepository:       pantryRepository,
		userRepository:         userRepository,
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error) {
	notifications, err := s.notificationRepository.GetNotificationsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		res := domain.NotificationResponse{
			ID:        notification.ID.String(),
			Type:      notification.Type,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt,
		}
		if notification.Payload != "" {
			_ = json.Unmarshal([]byte(notification.Payload), &res.Items)
		}
		response = append(response, res)
	}
	return response, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID string) error {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.notificationRepository.MarkRead(ctx, notificationID)
}

func (s *notificationService) SweepExpiringItems(ctx context.Context) error {
	pantries, err := s.pantryRepository.GetAllPantries(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	deadline := now.Add(domain.ExpiryWarningWindow)

	for _, p := range pantries {
		// One pantry failing must not stop the sweep for the others.
		if err := s.notifyPantry(ctx, p, now, deadline); err != nil {
			log.Printf("expiry sweep: pantry %s: %v", p.ID, err)
		}
	}
	return nil
}

func (s *notificationService) notifyPantry(ctx context.Context, p *entities.Pantry, start, end time.Time) error {
	items, err := s.pantryRepository.GetItemsExpiringBetween(ctx, p.ID.String(), start, end)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	expiring := make([]domain.ExpiringItemPayload, 0, len(items))
	for _, item := range items {
		expiring = append(expiring, domain.ExpiringItemPayload{
			ID:         item.ID.String(),
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			ExpiryDate: *item.ExpiryDate,
		})
	}

	payload, err := json.Marshal(expiring)
	if err != nil {
		return err
	}

	notification := &entities.Notification{
		ID:        uuid.New(),
		UserID:    p.UserID,
		Type:      domain.NotificationTypeExpiringItems,
		Payload:   string(payload),
		CreatedAt: time.Now(),
	}
	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		return err
	}

	account, err := s.userRepository.GetUserByID(ctx, p.UserID.String())
	if err != nil {
		return err
	}
	if err := mailing.SendMail(account.Email, "Pantry items expiring soon", expiryDigestBody(expiring)); err != nil {
		// The notification row is already stored; mail delivery is best
		// effort.
		log.Printf("expiry sweep: mail to %s failed: %v", account.Email, err)
	}
	return nil
}

func expiryDigestBody(items []domain.ExpiringItemPayload) string {
	var b strings.Builder
	b.WriteString("<p>These pantry items expire within the next 3 days:</p><ul>")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("<li>%s (%g %s), expires %s</li>",
			item.Name, item.Quantity, item.Unit, item.ExpiryDate.Format("2006-01-02")))
	}
	b.WriteString("</ul>")
	return b.String()
}
