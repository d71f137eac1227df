package assistant

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

type fakeClient struct {
	textResponse   string
	visionResponse string
}

func (c *fakeClient) GenerateText(context.Context, string) (string, error) {
	return c.textResponse, nil
}

func (c *fakeClient) GenerateVision(context.Context, string, string, []byte) (string, error) {
	return c.visionResponse, nil
}

func (c *fakeClient) Close() error { return nil }

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	r.users[u.ID.String()] = u
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, u *entities.User) error {
	r.users[u.ID.String()] = u
	return nil
}

func (r *fakeUserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(context.Background(), email)
	return err == nil, nil
}

type emptyPantryRepository struct{}

func (emptyPantryRepository) GetPantryByUserID(context.Context, string) (*entities.Pantry, error) {
	return nil, gorm.ErrRecordNotFound
}

func (emptyPantryRepository) AddItemsBatch(context.Context, uuid.UUID, []*entities.PantryItem) error {
	return nil
}

func (emptyPantryRepository) GetItems(context.Context, string) ([]*entities.PantryItem, error) {
	return nil, nil
}

func (emptyPantryRepository) GetItemByID(context.Context, string) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (emptyPantryRepository) UpdateItem(context.Context, *entities.PantryItem) error { return nil }

func (emptyPantryRepository) DeleteItem(context.Context, string) error { return nil }

func (emptyPantryRepository) GetAllPantries(context.Context) ([]*entities.Pantry, error) {
	return nil, nil
}

func (emptyPantryRepository) GetItemsExpiringBetween(context.Context, string, time.Time, time.Time) ([]*entities.PantryItem, error) {
	return nil, nil
}

func TestUnconfiguredClientRejectsEveryCall(t *testing.T) {
	service := NewAssistantService(nil, emptyPantryRepository{}, &fakeUserRepository{users: map[string]*entities.User{}})
	ctx := context.Background()

	_, err := service.AIChefQuery(ctx, domain.AIChefRequest{UserID: uuid.New().String(), Query: "dinner?"})
	assert.ErrorIs(t, err, domain.ErrAssistantNotConfigured)

	_, err = service.AnalyzeMicronutrition(ctx, domain.MicronutritionRequest{FoodName: "kale"})
	assert.ErrorIs(t, err, domain.ErrAssistantNotConfigured)

	_, err = service.LookupBarcode(ctx, domain.BarcodeRequest{Barcode: "123"})
	assert.ErrorIs(t, err, domain.ErrAssistantNotConfigured)

	_, err = service.ExtractSearchKeywords(ctx, "spicy chicken")
	assert.ErrorIs(t, err, domain.ErrAssistantNotConfigured)

	_, err = service.ParseReceiptImage(ctx, "jpeg", []byte{1})
	assert.ErrorIs(t, err, domain.ErrAssistantNotConfigured)

	_, err = service.RecognizeFoodImage(ctx, "jpeg", []byte{1})
	assert.ErrorIs(t, err, domain.ErrAssistantNotConfigured)
}

func TestAIChefRequiresPremium(t *testing.T) {
	account := &entities.User{ID: uuid.New(), Email: "basic@example.com"}
	userRepo := &fakeUserRepository{users: map[string]*entities.User{account.ID.String(): account}}
	service := NewAssistantService(&fakeClient{textResponse: "try a stir fry"}, emptyPantryRepository{}, userRepo)

	_, err := service.AIChefQuery(context.Background(), domain.AIChefRequest{
		UserID: account.ID.String(),
		Query:  "what can I cook?",
	})
	assert.ErrorIs(t, err, domain.ErrPremiumRequired)
}

func TestAIChefAnswersPremiumUser(t *testing.T) {
	account := &entities.User{ID: uuid.New(), Email: "chef@example.com", IsPremium: true}
	userRepo := &fakeUserRepository{users: map[string]*entities.User{account.ID.String(): account}}
	service := NewAssistantService(&fakeClient{textResponse: "  try a stir fry  "}, emptyPantryRepository{}, userRepo)

	res, err := service.AIChefQuery(context.Background(), domain.AIChefRequest{
		UserID: account.ID.String(),
		Query:  "what can I cook?",
	})
	require.NoError(t, err)
	assert.Equal(t, "try a stir fry", res.Response)
}

func TestExtractSearchKeywordsStripsCodeFences(t *testing.T) {
	service := NewAssistantService(
		&fakeClient{textResponse: "```json\n[\"chicken\",\"spicy\"]\n```"},
		emptyPantryRepository{},
		&fakeUserRepository{users: map[string]*entities.User{}},
	)

	keywords, err := service.ExtractSearchKeywords(context.Background(), "spicy chicken recipes")
	require.NoError(t, err)
	assert.Equal(t, []string{"chicken", "spicy"}, keywords)
}

func TestParseReceiptImageParsesItems(t *testing.T) {
	service := NewAssistantService(
		&fakeClient{visionResponse: `[{"name":"Milk","quantity":2,"price":3.5}]`},
		emptyPantryRepository{},
		&fakeUserRepository{users: map[string]*entities.User{}},
	)

	items, err := service.ParseReceiptImage(context.Background(), "jpeg", []byte{0xFF})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, float64(2), items[0].Quantity)
}

func TestLookupBarcodeBadModelOutput(t *testing.T) {
	service := NewAssistantService(
		&fakeClient{textResponse: "sorry, I cannot help with that"},
		emptyPantryRepository{},
		&fakeUserRepository{users: map[string]*entities.User{}},
	)

	_, err := service.LookupBarcode(context.Background(), domain.BarcodeRequest{Barcode: "5901234123457"})
	assert.ErrorIs(t, err, domain.ErrAssistantFailed)
}
