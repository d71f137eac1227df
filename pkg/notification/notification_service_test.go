package notification

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	notifications map[uuid.UUID]*entities.Notification
}

func newFakeNotificationRepository() *fakeNotificationRepository {
	return &fakeNotificationRepository{notifications: map[uuid.UUID]*entities.Notification{}}
}

func (r *fakeNotificationRepository) CreateNotification(_ context.Context, n *entities.Notification) error {
	r.notifications[n.ID] = n
	return nil
}

func (r *fakeNotificationRepository) GetNotificationsByUserID(_ context.Context, userID string) ([]*entities.Notification, error) {
	var out []*entities.Notification
	for _, n := range r.notifications {
		if n.UserID.String() == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepository) GetNotificationByID(_ context.Context, id string) (*entities.Notification, error) {
	notificationUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	n, ok := r.notifications[notificationUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (r *fakeNotificationRepository) MarkRead(_ context.Context, id string) error {
	notificationUUID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	if n, ok := r.notifications[notificationUUID]; ok {
		n.Read = true
	}
	return nil
}

type sweepPantryRepository struct {
	pantries []*entities.Pantry
	expiring map[uuid.UUID][]*entities.PantryItem
}

func (r *sweepPantryRepository) GetPantryByUserID(context.Context, string) (*entities.Pantry, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *sweepPantryRepository) AddItemsBatch(context.Context, uuid.UUID, []*entities.PantryItem) error {
	return nil
}

func (r *sweepPantryRepository) GetItems(context.Context, string) ([]*entities.PantryItem, error) {
	return nil, nil
}

func (r *sweepPantryRepository) GetItemByID(context.Context, string) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *sweepPantryRepository) UpdateItem(context.Context, *entities.PantryItem) error { return nil }

func (r *sweepPantryRepository) DeleteItem(context.Context, string) error { return nil }

func (r *sweepPantryRepository) GetAllPantries(context.Context) ([]*entities.Pantry, error) {
	return r.pantries, nil
}

func (r *sweepPantryRepository) GetItemsExpiringBetween(_ context.Context, pantryID string, _, _ time.Time) ([]*entities.PantryItem, error) {
	pantryUUID, err := uuid.Parse(pantryID)
	if err != nil {
		return nil, err
	}
	return r.expiring[pantryUUID], nil
}

type sweepUserRepository struct {
	users map[uuid.UUID]*entities.User
}

func (r *sweepUserRepository) CreateUser(context.Context, *entities.User) error { return nil }

func (r *sweepUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	userUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	u, ok := r.users[userUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *sweepUserRepository) GetUserByEmail(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *sweepUserRepository) UpdateUser(context.Context, *entities.User) error { return nil }

func (r *sweepUserRepository) EmailExists(context.Context, string) (bool, error) {
	return false, nil
}

func TestSweepNotifiesOnlyPantriesWithExpiringItems(t *testing.T) {
	expiry := time.Now().Add(24 * time.Hour)
	userWithExpiring := uuid.New()
	userWithout := uuid.New()
	pantryWithExpiring := &entities.Pantry{ID: uuid.New(), UserID: userWithExpiring}
	pantryWithout := &entities.Pantry{ID: uuid.New(), UserID: userWithout}

	pantryRepo := &sweepPantryRepository{
		pantries: []*entities.Pantry{pantryWithExpiring, pantryWithout},
		expiring: map[uuid.UUID][]*entities.PantryItem{
			pantryWithExpiring.ID: {
				{ID: uuid.New(), PantryID: pantryWithExpiring.ID, Name: "Milk", Quantity: 1, Unit: "item", ExpiryDate: &expiry},
			},
		},
	}
	userRepo := &sweepUserRepository{users: map[uuid.UUID]*entities.User{
		userWithExpiring: {ID: userWithExpiring, Email: "expiring@example.com"},
		userWithout:      {ID: userWithout, Email: "fine@example.com"},
	}}
	notificationRepo := newFakeNotificationRepository()
	service := NewNotificationService(notificationRepo, pantryRepo, userRepo)

	require.NoError(t, service.SweepExpiringItems(context.Background()))

	require.Len(t, notificationRepo.notifications, 1)
	for _, n := range notificationRepo.notifications {
		assert.Equal(t, userWithExpiring, n.UserID)
		assert.Equal(t, domain.NotificationTypeExpiringItems, n.Type)
		assert.Contains(t, n.Payload, "Milk")
	}

	notifications, err := service.GetNotifications(context.Background(), userWithExpiring.String())
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Len(t, notifications[0].Items, 1)
	assert.Equal(t, "Milk", notifications[0].Items[0].Name)
}

func TestMarkReadChecksOwnership(t *testing.T) {
	notificationRepo := newFakeNotificationRepository()
	owner := uuid.New()
	n := &entities.Notification{
		ID:     uuid.New(),
		UserID: owner,
		Type:   domain.NotificationTypeExpiringItems,
	}
	require.NoError(t, notificationRepo.CreateNotification(context.Background(), n))

	service := NewNotificationService(notificationRepo, &sweepPantryRepository{}, &sweepUserRepository{})

	err := service.MarkRead(context.Background(), n.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	require.NoError(t, service.MarkRead(context.Background(), n.ID.String(), owner.String()))
	assert.True(t, notificationRepo.notifications[n.ID].Read)
}
