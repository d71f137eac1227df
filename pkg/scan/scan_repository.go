package scan

import (
	"PantryPal-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ScanRepository interface {
		CreateScan(ctx context.Context, scan *entities.ReceiptScan) error
		GetScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error)
		UpdateScan(ctx context.Context, scan *entities.ReceiptScan) error
		CreateFoodRecognition(ctx context.Context, recognition *entities.FoodRecognition) error
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) CreateScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *scanRepository) GetScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	var scan entities.ReceiptScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *scanRepository) UpdateScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}

func (r *scanRepository) CreateFoodRecognition(ctx context.Context, recognition *entities.FoodRecognition) error {
	return r.db.WithContext(ctx).Create(recognition).Error
}
