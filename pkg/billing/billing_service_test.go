package billing

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeBillingRepository struct {
	transactions map[string]*entities.Transaction
}

func newFakeBillingRepository() *fakeBillingRepository {
	return &fakeBillingRepository{transactions: map[string]*entities.Transaction{}}
}

func (r *fakeBillingRepository) CreateTransaction(_ context.Context, tx *entities.Transaction) error {
	r.transactions[tx.OrderID] = tx
	return nil
}

func (r *fakeBillingRepository) GetTransactionByOrderID(_ context.Context, orderID string) (*entities.Transaction, error) {
	tx, ok := r.transactions[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tx, nil
}

func (r *fakeBillingRepository) UpdateTransaction(_ context.Context, tx *entities.Transaction) error {
	r.transactions[tx.OrderID] = tx
	return nil
}

type fakeUserRepository struct {
	users map[uuid.UUID]*entities.User
}

func (r *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
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

func (r *fakeUserRepository) GetUserByEmail(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, u *entities.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepository) EmailExists(context.Context, string) (bool, error) {
	return false, nil
}

func TestWebhookSettlementGrantsPremium(t *testing.T) {
	billingRepo := newFakeBillingRepository()
	account := &entities.User{ID: uuid.New(), Email: "buyer@example.com"}
	userRepo := &fakeUserRepository{users: map[uuid.UUID]*entities.User{account.ID: account}}
	service := NewBillingService(billingRepo, userRepo)

	tx := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      account.ID,
		OrderID:     "premium-test-order",
		GrossAmount: domain.PremiumPrice,
		Status:      "pending",
	}
	require.NoError(t, billingRepo.CreateTransaction(context.Background(), tx))

	err := service.HandleWebhook(context.Background(), domain.MidtransWebhookRequest{
		OrderID:           "premium-test-order",
		TransactionStatus: "settlement",
		PaymentType:       "qris",
	})
	require.NoError(t, err)

	assert.Equal(t, "settlement", billingRepo.transactions["premium-test-order"].Status)
	assert.Equal(t, "qris", billingRepo.transactions["premium-test-order"].PaymentType)
	assert.True(t, userRepo.users[account.ID].IsPremium)
}

func TestWebhookPendingDoesNotGrantPremium(t *testing.T) {
	billingRepo := newFakeBillingRepository()
	account := &entities.User{ID: uuid.New(), Email: "buyer@example.com"}
	userRepo := &fakeUserRepository{users: map[uuid.UUID]*entities.User{account.ID: account}}
	service := NewBillingService(billingRepo, userRepo)

	tx := &entities.Transaction{
		ID:      uuid.New(),
		UserID:  account.ID,
		OrderID: "premium-pending-order",
		Status:  "pending",
	}
	require.NoError(t, billingRepo.CreateTransaction(context.Background(), tx))

	err := service.HandleWebhook(context.Background(), domain.MidtransWebhookRequest{
		OrderID:           "premium-pending-order",
		TransactionStatus: "pending",
	})
	require.NoError(t, err)
	assert.False(t, userRepo.users[account.ID].IsPremium)
}

func TestWebhookUnknownOrder(t *testing.T) {
	service := NewBillingService(newFakeBillingRepository(), &fakeUserRepository{users: map[uuid.UUID]*entities.User{}})

	err := service.HandleWebhook(context.Background(), domain.MidtransWebhookRequest{
		OrderID:           "missing",
		TransactionStatus: "settlement",
	})
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestPaymentSettled(t *testing.T) {
	assert.True(t, paymentSettled(domain.MidtransWebhookRequest{TransactionStatus: "settlement"}))
	assert.True(t, paymentSettled(domain.MidtransWebhookRequest{TransactionStatus: "capture", FraudStatus: "accept"}))
	assert.False(t, paymentSettled(domain.MidtransWebhookRequest{TransactionStatus: "capture", FraudStatus: "challenge"}))
	assert.False(t, paymentSettled(domain.MidtransWebhookRequest{TransactionStatus: "expire"}))
}
