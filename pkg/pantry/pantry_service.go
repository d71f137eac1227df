package pantry

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddItems(ctx context.Context, req domain.AddPantryItemsRequest) error
		GetPantry(ctx context.Context, userID string) (domain.PantryResponse, error)
		UpdateItem(ctx context.Context, userID, itemID string, req domain.UpdatePantryItemRequest) error
		DeleteItem(ctx context.Context, userID, itemID string) error
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{pantryRepository: pantryRepository}
}

// AddItems stages the user's pantry container plus every well-formed item
// and commits them as one batch. Items without a name are dropped, not
// rejected.
func (s *pantryService) AddItems(ctx context.Context, req domain.AddPantryItemsRequest) error {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	items, err := BuildPantryItems(req.Items)
	if err != nil {
		return err
	}

	return s.pantryRepository.AddItemsBatch(ctx, userUUID, items)
}

// BuildPantryItems converts child payloads into pantry item rows, skipping
// malformed entries and applying the documented defaults. Shared with the
// scan and shopping-list flows, which batch into the pantry the same way.
func BuildPantryItems(payloads []domain.PantryItemPayload) ([]*entities.PantryItem, error) {
	now := time.Now()
	items := make([]*entities.PantryItem, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Name == "" {
			continue
		}

		item := &entities.PantryItem{
			ID:           uuid.New(),
			Name:         payload.Name,
			Quantity:     payload.Quantity,
			Unit:         payload.Unit,
			Category:     payload.Category,
			PurchaseDate: now,
			IsCustom:     payload.IsCustom,
			Timestamp: entities.Timestamp{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if item.Quantity <= 0 {
			item.Quantity = domain.DefaultQuantity
		}
		if item.Unit == "" {
			item.Unit = domain.DefaultUnit
		}
		if item.Category == "" {
			item.Category = domain.DefaultCategory
		}
		if payload.ExpiryDate != "" {
			expiry, err := time.Parse("2006-01-02", payload.ExpiryDate)
			if err != nil {
				return nil, domain.ErrInvalidExpiryDate
			}
			item.ExpiryDate = &expiry
		}
		if payload.PurchaseDate != "" {
			purchase, err := time.Parse("2006-01-02", payload.PurchaseDate)
			if err == nil {
				item.PurchaseDate = purchase
			}
		}

		items = append(items, item)
	}
	return items, nil
}

func (s *pantryService) GetPantry(ctx context.Context, userID string) (domain.PantryResponse, error) {
	pantry, err := s.pantryRepository.GetPantryByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryResponse{}, domain.ErrPantryNotFound
		}
		return domain.PantryResponse{}, err
	}

	items, err := s.pantryRepository.GetItems(ctx, pantry.ID.String())
	if err != nil {
		return domain.PantryResponse{}, err
	}

	response := domain.PantryResponse{Items: make([]domain.PantryItemResponse, 0, len(items))}
	for _, item := range items {
		response.Items = append(response.Items, domain.PantryItemResponse{
			ID:           item.ID.String(),
			Name:         item.Name,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			Category:     item.Category,
			ExpiryDate:   item.ExpiryDate,
			PurchaseDate: item.PurchaseDate,
			ImageURL:     item.ImageURL,
			IsCustom:     item.IsCustom,
			CreatedAt:    item.CreatedAt,
			UpdatedAt:    item.UpdatedAt,
		})
	}

	return response, nil
}

func (s *pantryService) UpdateItem(ctx context.Context, userID, itemID string, req domain.UpdatePantryItemRequest) error {
	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != nil && *req.Quantity > 0 {
		item.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &expiry
	}
	item.UpdatedAt = time.Now()

	return s.pantryRepository.UpdateItem(ctx, item)
}

func (s *pantryService) DeleteItem(ctx context.Context, userID, itemID string) error {
	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	return s.pantryRepository.DeleteItem(ctx, item.ID.String())
}

func (s *pantryService) getOwnedItem(ctx context.Context, userID, itemID string) (*entities.PantryItem, error) {
	pantry, err := s.pantryRepository.GetPantryByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryNotFound
		}
		return nil, err
	}

	item, err := s.pantryRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if item.PantryID != pantry.ID {
		return nil, domain.ErrUserNotAllowed
	}

	return item, nil
}
