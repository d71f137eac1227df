package pantry

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

type fakePantryRepository struct {
	pantries map[uuid.UUID]*entities.Pantry // keyed by user id
	items    map[uuid.UUID]*entities.PantryItem
}

func newFakePantryRepository() *fakePantryRepository {
	return &fakePantryRepository{
		pantries: map[uuid.UUID]*entities.Pantry{},
		items:    map[uuid.UUID]*entities.PantryItem{},
	}
}

func (r *fakePantryRepository) GetPantryByUserID(_ context.Context, userID string) (*entities.Pantry, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	pantry, ok := r.pantries[userUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return pantry, nil
}

func (r *fakePantryRepository) AddItemsBatch(_ context.Context, userID uuid.UUID, items []*entities.PantryItem) error {
	pantry, ok := r.pantries[userID]
	if !ok {
		pantry = &entities.Pantry{ID: uuid.New(), UserID: userID, CreatedAt: time.Now()}
		r.pantries[userID] = pantry
	}
	for _, item := range items {
		item.PantryID = pantry.ID
		r.items[item.ID] = item
	}
	return nil
}

func (r *fakePantryRepository) GetItems(_ context.Context, pantryID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	for _, item := range r.items {
		if item.PantryID.String() == pantryID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakePantryRepository) GetItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	itemUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	item, ok := r.items[itemUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakePantryRepository) UpdateItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakePantryRepository) DeleteItem(_ context.Context, id string) error {
	itemUUID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(r.items, itemUUID)
	return nil
}

func (r *fakePantryRepository) GetAllPantries(_ context.Context) ([]*entities.Pantry, error) {
	var pantries []*entities.Pantry
	for _, pantry := range r.pantries {
		pantries = append(pantries, pantry)
	}
	return pantries, nil
}

func (r *fakePantryRepository) GetItemsExpiringBetween(_ context.Context, pantryID string, start, end time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	for _, item := range r.items {
		if item.PantryID.String() != pantryID || item.ExpiryDate == nil {
			continue
		}
		if item.ExpiryDate.After(start) && item.ExpiryDate.Before(end) {
			items = append(items, item)
		}
	}
	return items, nil
}

func TestAddItemsAppliesDefaults(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)
	userID := uuid.New()

	err := service.AddItems(context.Background(), domain.AddPantryItemsRequest{
		UserID: userID.String(),
		Items:  []domain.PantryItemPayload{{Name: "Milk"}},
	})
	require.NoError(t, err)

	require.Len(t, repo.items, 1)
	for _, item := range repo.items {
		assert.Equal(t, "Milk", item.Name)
		assert.Equal(t, float64(domain.DefaultQuantity), item.Quantity)
		assert.Equal(t, domain.DefaultUnit, item.Unit)
		assert.Equal(t, domain.DefaultCategory, item.Category)
	}
}

func TestAddItemsSkipsNamelessEntries(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)

	err := service.AddItems(context.Background(), domain.AddPantryItemsRequest{
		UserID: uuid.New().String(),
		Items: []domain.PantryItemPayload{
			{Name: "Eggs", Quantity: 12},
			{Quantity: 3},
			{Name: "Butter"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, repo.items, 2)
}

func TestAddItemsReusesExistingPantry(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)
	userID := uuid.New()

	require.NoError(t, service.AddItems(context.Background(), domain.AddPantryItemsRequest{
		UserID: userID.String(),
		Items:  []domain.PantryItemPayload{{Name: "Rice"}},
	}))
	pantryID := repo.pantries[userID].ID

	require.NoError(t, service.AddItems(context.Background(), domain.AddPantryItemsRequest{
		UserID: userID.String(),
		Items:  []domain.PantryItemPayload{{Name: "Beans"}},
	}))

	assert.Len(t, repo.pantries, 1)
	assert.Equal(t, pantryID, repo.pantries[userID].ID)
	assert.Len(t, repo.items, 2)
}

func TestAddItemsRejectsBadUserID(t *testing.T) {
	service := NewPantryService(newFakePantryRepository())

	err := service.AddItems(context.Background(), domain.AddPantryItemsRequest{
		UserID: "not-a-uuid",
		Items:  []domain.PantryItemPayload{{Name: "Milk"}},
	})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestAddItemsRejectsBadExpiryDate(t *testing.T) {
	service := NewPantryService(newFakePantryRepository())

	err := service.AddItems(context.Background(), domain.AddPantryItemsRequest{
		UserID: uuid.New().String(),
		Items:  []domain.PantryItemPayload{{Name: "Yogurt", ExpiryDate: "next tuesday"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestGetPantryMissingContainer(t *testing.T) {
	service := NewPantryService(newFakePantryRepository())

	_, err := service.GetPantry(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrPantryNotFound)
}

func TestUpdateItemOwnedByAnotherUser(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)
	owner := uuid.New()
	intruder := uuid.New()

	require.NoError(t, service.AddItems(context.Background(), domain.AddPantryItemsRequest{
		UserID: owner.String(),
		Items:  []domain.PantryItemPayload{{Name: "Cheese"}},
	}))
	require.NoError(t, service.AddItems(context.Background(), domain.AddPantryItemsRequest{
		UserID: intruder.String(),
		Items:  []domain.PantryItemPayload{{Name: "Bread"}},
	}))

	var cheeseID string
	for _, item := range repo.items {
		if item.Name == "Cheese" {
			cheeseID = item.ID.String()
		}
	}

	err := service.UpdateItem(context.Background(), intruder.String(), cheeseID, domain.UpdatePantryItemRequest{Name: "Stolen"})
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}
