package billing

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"PantryPal-Backend/internal/utils"
	"PantryPal-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	BillingService interface {
		// Subscribe opens a Midtrans payment for the premium upgrade and
		// records the pending transaction.
		Subscribe(ctx context.Context, userID string) (domain.SubscribeResponse, error)
		// HandleWebhook applies a Midtrans payment notification; a settled
		// payment flips the user to premium.
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	billingService struct {
		billingRepository BillingRepository
		userRepository    user.UserRepository
		snapClient        snap.Client
	}
)

func NewBillingService(billingRepository BillingRepository, userRepository user.UserRepository) BillingService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(utils.GetConfig("SERVER_KEY"), env)

	return &billingService{
		billingRepository: billingRepository,
		userRepository:    userRepository,
		snapClient:        snapClient,
	}
}

func (s *billingService) Subscribe(ctx context.Context, userID string) (domain.SubscribeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscribeResponse{}, domain.ErrParseUUID
	}

	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscribeResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscribeResponse{}, err
	}

	orderID := fmt.Sprintf("premium-%s", uuid.New())
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: domain.PremiumPrice,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: account.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "premium-subscription",
				Name:  "Premium subscription",
				Price: domain.PremiumPrice,
				Qty:   1,
			},
		},
	}

	snapRes, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.SubscribeResponse{}, snapErr
	}

	now := time.Now()
	transaction := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		OrderID:     orderID,
		GrossAmount: domain.PremiumPrice,
		Status:      "pending",
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.billingRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.SubscribeResponse{}, err
	}

	return domain.SubscribeResponse{
		OrderID:     orderID,
		Token:       snapRes.Token,
		RedirectURL: snapRes.RedirectURL,
	}, nil
}

func (s *billingService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	transaction, err := s.billingRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	transaction.Status = req.TransactionStatus
	transaction.PaymentType = req.PaymentType
	transaction.UpdatedAt = time.Now()
	if err := s.billingRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	if !paymentSettled(req) {
		return nil
	}

	account, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
	if err != nil {
		return err
	}
	if account.IsPremium {
		return nil
	}
	account.IsPremium = true
	return s.userRepository.UpdateUser(ctx, account)
}

func paymentSettled(req domain.MidtransWebhookRequest) bool {
	if req.TransactionStatus == "settlement" {
		return true
	}
	return req.TransactionStatus == "capture" && req.FraudStatus == "accept"
}
