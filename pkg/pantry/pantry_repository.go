package pantry

import (
	"PantryPal-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		GetPantryByUserID(ctx context.Context, userID string) (*entities.Pantry, error)
		// AddItemsBatch creates the user's pantry if absent and persists the
		// items alongside it in one transaction. An existing pantry is left
		// untouched.
		AddItemsBatch(ctx context.Context, userID uuid.UUID, items []*entities.PantryItem) error
		GetItems(ctx context.Context, pantryID string) ([]*entities.PantryItem, error)
		GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		UpdateItem(ctx context.Context, item *entities.PantryItem) error
		DeleteItem(ctx context.Context, id string) error

		// Expiry sweep support
		GetAllPantries(ctx context.Context) ([]*entities.Pantry, error)
		GetItemsExpiringBetween(ctx context.Context, pantryID string, start, end time.Time) ([]*entities.PantryItem, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) GetPantryByUserID(ctx context.Context, userID string) (*entities.Pantry, error) {
	var pantry entities.Pantry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pantry).Error; err != nil {
		return nil, err
	}
	return &pantry, nil
}

func (r *pantryRepository) AddItemsBatch(ctx context.Context, userID uuid.UUID, items []*entities.PantryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pantry := entities.Pantry{}
		if err := tx.Where(entities.Pantry{UserID: userID}).
			Attrs(entities.Pantry{ID: uuid.New(), CreatedAt: time.Now()}).
			FirstOrCreate(&pantry).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		for _, item := range items {
			item.PantryID = pantry.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *pantryRepository) GetItems(ctx context.Context, pantryID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("pantry_id = ?", pantryID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) GetAllPantries(ctx context.Context) ([]*entities.Pantry, error) {
	var pantries []*entities.Pantry
	if err := r.db.WithContext(ctx).Find(&pantries).Error; err != nil {
		return nil, err
	}
	return pantries, nil
}

func (r *pantryRepository) GetItemsExpiringBetween(ctx context.Context, pantryID string, start, end time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("pantry_id = ? AND expiry_date IS NOT NULL AND expiry_date BETWEEN ? AND ?",
			pantryID, start, end).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
