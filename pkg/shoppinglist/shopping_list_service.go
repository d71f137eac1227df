package shoppinglist

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
	ShoppingListService interface {
		CreateList(ctx context.Context, req domain.CreateShoppingListRequest) (domain.CreateShoppingListResponse, error)
		GetLists(ctx context.Context, userID string) ([]domain.ShoppingListResponse, error)
		GetListDetail(ctx context.Context, listID, userID string) (domain.ShoppingListDetailResponse, error)
		AddItems(ctx context.Context, listID, userID string, req domain.AddListItemsRequest) error
		UpdateItem(ctx context.Context, listID, itemID, userID string, req domain.UpdateListItemRequest) error
		TransferToPantry(ctx context.Context, listID string, req domain.ListToPantryRequest) error
	}

	shoppingListService struct {
		listRepository ShoppingListRepository
	}
)

func NewShoppingListService(listRepository ShoppingListRepository) ShoppingListService {
	return &shoppingListService{listRepository: listRepository}
}

func (s *shoppingListService) CreateList(ctx context.Context, req domain.CreateShoppingListRequest) (domain.CreateShoppingListResponse, error) {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.CreateShoppingListResponse{}, domain.ErrParseUUID
	}

	name := req.Name
	if name == "" {
		name = "Shopping List"
	}

	now := time.Now()
	list := &entities.ShoppingList{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   name,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.listRepository.CreateListWithItems(ctx, list, buildListItems(req.Items)); err != nil {
		return domain.CreateShoppingListResponse{}, err
	}

	return domain.CreateShoppingListResponse{ListID: list.ID.String()}, nil
}

func buildListItems(payloads []domain.ListItemPayload) []*entities.ShoppingListItem {
	now := time.Now()
	items := make([]*entities.ShoppingListItem, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Name == "" {
			continue
		}

		item := &entities.ShoppingListItem{
			ID:        uuid.New(),
			Name:      payload.Name,
			Quantity:  payload.Quantity,
			Unit:      payload.Unit,
			Category:  payload.Category,
			IsChecked: payload.IsChecked,
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

		items = append(items, item)
	}
	return items
}

func (s *shoppingListService) GetLists(ctx context.Context, userID string) ([]domain.ShoppingListResponse, error) {
	lists, err := s.listRepository.GetListsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, listResponse(list))
	}
	return response, nil
}

func (s *shoppingListService) GetListDetail(ctx context.Context, listID, userID string) (domain.ShoppingListDetailResponse, error) {
	list, err := s.getOwnedList(ctx, listID, userID)
	if err != nil {
		return domain.ShoppingListDetailResponse{}, err
	}

	items, err := s.listRepository.GetItems(ctx, listID)
	if err != nil {
		return domain.ShoppingListDetailResponse{}, err
	}

	detail := domain.ShoppingListDetailResponse{
		List:  listResponse(list),
		Items: make([]domain.ListItemResponse, 0, len(items)),
	}
	for _, item := range items {
		detail.Items = append(detail.Items, domain.ListItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Category:  item.Category,
			IsChecked: item.IsChecked,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return detail, nil
}

func (s *shoppingListService) AddItems(ctx context.Context, listID, userID string, req domain.AddListItemsRequest) error {
	list, err := s.getOwnedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	return s.listRepository.AddItemsBatch(ctx, list.ID, buildListItems(req.Items))
}

func (s *shoppingListService) UpdateItem(ctx context.Context, listID, itemID, userID string, req domain.UpdateListItemRequest) error {
	if _, err := s.getOwnedList(ctx, listID, userID); err != nil {
		return err
	}

	item, err := s.listRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListItemNotFound
		}
		return err
	}
	if item.ListID.String() != listID {
		return domain.ErrListItemNotFound
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
	if req.IsChecked != nil {
		item.IsChecked = *req.IsChecked
	}
	item.UpdatedAt = time.Now()

	return s.listRepository.UpdateItem(ctx, item)
}

func (s *shoppingListService) TransferToPantry(ctx context.Context, listID string, req domain.ListToPantryRequest) error {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.getOwnedList(ctx, listID, req.UserID); err != nil {
		return err
	}

	return s.listRepository.TransferToPantry(ctx, userUUID, listID, req.PurchasedItems)
}

func (s *shoppingListService) getOwnedList(ctx context.Context, listID, userID string) (*entities.ShoppingList, error) {
	list, err := s.listRepository.GetListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingListNotFound
		}
		return nil, err
	}

	if list.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return list, nil
}

func listResponse(list *entities.ShoppingList) domain.ShoppingListResponse {
	return domain.ShoppingListResponse{
		ID:        list.ID.String(),
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
}
