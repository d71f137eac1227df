package billing

import (
	"PantryPal-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	BillingRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.Transaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error)
		UpdateTransaction(ctx context.Context, transaction *entities.Transaction) error
	}

	billingRepository struct {
		db *gorm.DB
	}
)

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) CreateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *billingRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error) {
	var transaction entities.Transaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *billingRepository) UpdateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}
