package shoppinglist

import (
	"PantryPal-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		// CreateListWithItems persists the list container and its initial
		// items as one batch.
		CreateListWithItems(ctx context.Context, list *entities.ShoppingList, items []*entities.ShoppingListItem) error
		GetListsByUserID(ctx context.Context, userID string) ([]*entities.ShoppingList, error)
		GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error)
		GetItems(ctx context.Context, listID string) ([]*entities.ShoppingListItem, error)
		GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error)
		// AddItemsBatch persists the items and stamps the list's updated_at
		// in one batch.
		AddItemsBatch(ctx context.Context, listID uuid.UUID, items []*entities.ShoppingListItem) error
		UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error
		// TransferToPantry copies the purchased list items into the user's
		// pantry (creating it if absent) and marks them checked, all in one
		// transaction.
		TransferToPantry(ctx context.Context, userID uuid.UUID, listID string, itemIDs []string) error
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) CreateListWithItems(ctx context.Context, list *entities.ShoppingList, items []*entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for _, item := range items {
			item.ListID = list.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *shoppingListRepository) GetListsByUserID(ctx context.Context, userID string) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepository) GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) GetItems(ctx context.Context, listID string) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingListRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingListRepository) AddItemsBatch(ctx context.Context, listID uuid.UUID, items []*entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(items) > 0 {
			for _, item := range items {
				item.ListID = listID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Model(&entities.ShoppingList{}).
			Where("id = ?", listID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *shoppingListRepository) UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingListRepository) TransferToPantry(ctx context.Context, userID uuid.UUID, listID string, itemIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listItems []*entities.ShoppingListItem
		if err := tx.Where("list_id = ? AND id IN ?", listID, itemIDs).
			Find(&listItems).Error; err != nil {
			return err
		}

		pantry := entities.Pantry{}
		if err := tx.Where(entities.Pantry{UserID: userID}).
			Attrs(entities.Pantry{ID: uuid.New(), CreatedAt: time.Now()}).
			FirstOrCreate(&pantry).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, listItem := range listItems {
			pantryItem := &entities.PantryItem{
				ID:           uuid.New(),
				PantryID:     pantry.ID,
				Name:         listItem.Name,
				Quantity:     listItem.Quantity,
				Unit:         listItem.Unit,
				Category:     listItem.Category,
				PurchaseDate: now,
				Timestamp: entities.Timestamp{
					CreatedAt: now,
					UpdatedAt: now,
				},
			}
			if err := tx.Create(pantryItem).Error; err != nil {
				return err
			}

			if err := tx.Model(listItem).
				Updates(map[string]interface{}{"is_checked": true, "updated_at": now}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
