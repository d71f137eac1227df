package scan

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"PantryPal-Backend/internal/utils/storage"
	"PantryPal-Backend/pkg/assistant"
	"PantryPal-Backend/pkg/pantry"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	scanStatusPending   = "Pending"
	scanStatusProcessed = "Processed"
	scanStatusFailed    = "Failed"
)

type (
	ScanService interface {
		// UploadReceipt stores the image and kicks off extraction in the
		// background. The response carries the pending scan id to poll.
		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error)
		GetScan(ctx context.Context, scanID, userID string) (domain.ReceiptScanResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest) error
		RecognizeFood(ctx context.Context, req domain.RecognizeFoodRequest, userID string) (domain.RecognizeFoodResponse, error)
	}

	scanService struct {
		scanRepository   ScanRepository
		pantryRepository pantry.PantryRepository
		assistantService assistant.AssistantService
		awsS3            storage.AwsS3
	}
)

func NewScanService(
	scanRepository ScanRepository,
	pantryRepository pantry.PantryRepository,
	assistantService assistant.AssistantService,
	awsS3 storage.AwsS3,
) ScanService {
	return &scanService{
		scanRepository:   scanRepository,
		pantryRepository: pantryRepository,
		assistantService: assistantService,
		awsS3:            awsS3,
	}
}

func (s *scanService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	imageFormat, imageData, err := readImage(req.ReceiptImage)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	scanID := uuid.New()
	objectKey, err := s.awsS3.UploadFile(scanID.String(), req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	imageURL := s.awsS3.GetPublicLinkKey(objectKey)

	now := time.Now()
	scan := &entities.ReceiptScan{
		ID:       scanID,
		UserID:   userUUID,
		ImageURL: imageURL,
		Status:   scanStatusPending,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.scanRepository.CreateScan(ctx, scan); err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	go s.processReceipt(scanID.String(), imageFormat, imageData)

	return domain.UploadReceiptResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   scanStatusPending,
	}, nil
}

// processReceipt runs after the upload response is sent. The request context
// is gone by then, so it uses a fresh one.
func (s *scanService) processReceipt(scanID, imageFormat string, imageData []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	scan, err := s.scanRepository.GetScanByID(ctx, scanID)
	if err != nil {
		log.Printf("receipt scan %s: load failed: %v", scanID, err)
		return
	}

	items, err := s.assistantService.ParseReceiptImage(ctx, imageFormat, imageData)
	if err != nil {
		log.Printf("receipt scan %s: extraction failed: %v", scanID, err)
		scan.Status = scanStatusFailed
	} else {
		results, marshalErr := json.Marshal(items)
		if marshalErr != nil {
			scan.Status = scanStatusFailed
		} else {
			scan.Status = scanStatusProcessed
			scan.Results = string(results)
		}
	}
	scan.UpdatedAt = time.Now()

	if err := s.scanRepository.UpdateScan(ctx, scan); err != nil {
		log.Printf("receipt scan %s: status update failed: %v", scanID, err)
	}
}

func (s *scanService) GetScan(ctx context.Context, scanID, userID string) (domain.ReceiptScanResponse, error) {
	scan, err := s.scanRepository.GetScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptScanResponse{}, domain.ErrScanNotFound
		}
		return domain.ReceiptScanResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.ReceiptScanResponse{}, domain.ErrUserNotAllowed
	}

	res := domain.ReceiptScanResponse{
		ScanID:    scan.ID.String(),
		ImageURL:  scan.ImageURL,
		Status:    scan.Status,
		UpdatedAt: scan.UpdatedAt,
	}
	if scan.Results != "" {
		_ = json.Unmarshal([]byte(scan.Results), &res.Items)
	}
	return res, nil
}

func (s *scanService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest) error {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	scan, err := s.scanRepository.GetScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrScanNotFound
		}
		return err
	}
	if scan.UserID != userUUID {
		return domain.ErrUserNotAllowed
	}

	items, err := pantry.BuildPantryItems(req.Items)
	if err != nil {
		return err
	}

	return s.pantryRepository.AddItemsBatch(ctx, userUUID, items)
}

func (s *scanService) RecognizeFood(ctx context.Context, req domain.RecognizeFoodRequest, userID string) (domain.RecognizeFoodResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecognizeFoodResponse{}, domain.ErrParseUUID
	}

	imageFormat, imageData, err := readImage(req.Image)
	if err != nil {
		return domain.RecognizeFoodResponse{}, err
	}

	recognized, err := s.assistantService.RecognizeFoodImage(ctx, imageFormat, imageData)
	if err != nil {
		return domain.RecognizeFoodResponse{}, err
	}

	objectKey, err := s.awsS3.UploadFile(uuid.New().String(), req.Image, "food-images", storage.AllowImage...)
	if err != nil {
		return domain.RecognizeFoodResponse{}, err
	}

	itemsJSON, err := json.Marshal(recognized)
	if err != nil {
		return domain.RecognizeFoodResponse{}, err
	}

	recognition := &entities.FoodRecognition{
		ID:        uuid.New(),
		UserID:    userUUID,
		ImageURL:  s.awsS3.GetPublicLinkKey(objectKey),
		Items:     string(itemsJSON),
		CreatedAt: time.Now(),
	}
	if err := s.scanRepository.CreateFoodRecognition(ctx, recognition); err != nil {
		return domain.RecognizeFoodResponse{}, err
	}

	return domain.RecognizeFoodResponse{RecognizedItems: recognized}, nil
}

// readImage pulls the raw bytes out of the upload and derives the format tag
// the vision model expects ("jpeg", "png", ...).
func readImage(file *multipart.FileHeader) (string, []byte, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if ext == "jpg" {
		ext = "jpeg"
	}
	if ext == "" {
		return "", nil, domain.ErrInvalidImageFormat
	}

	src, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", nil, err
	}
	return ext, data, nil
}
