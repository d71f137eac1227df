package assistant

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/pkg/pantry"
	"PantryPal-Backend/pkg/user"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type (
	AssistantService interface {
		// AIChefQuery answers a cooking question with the caller's pantry
		// contents as context. Premium only.
		AIChefQuery(ctx context.Context, req domain.AIChefRequest) (domain.AIChefResponse, error)
		AnalyzeMicronutrition(ctx context.Context, req domain.MicronutritionRequest) (domain.MicronutritionResponse, error)
		LookupBarcode(ctx context.Context, req domain.BarcodeRequest) (domain.BarcodeResponse, error)
		// ExtractSearchKeywords turns a free-text recipe query into search
		// keywords. Returns ErrAssistantNotConfigured when no model is wired
		// so callers can degrade to naive tokenization.
		ExtractSearchKeywords(ctx context.Context, query string) ([]string, error)
		ParseReceiptImage(ctx context.Context, imageFormat string, imageData []byte) ([]domain.ReceiptItem, error)
		RecognizeFoodImage(ctx context.Context, imageFormat string, imageData []byte) ([]domain.RecognizedItem, error)
	}

	assistantService struct {
		client           Client
		pantryRepository pantry.PantryRepository
		userRepository   user.UserRepository
	}
)

func NewAssistantService(client Client, pantryRepository pantry.PantryRepository, userRepository user.UserRepository) AssistantService {
	return &assistantService{
		client:           client,
		pantryRepository: pantryRepository,
		userRepository:   userRepository,
	}
}

func (s *assistantService) AIChefQuery(ctx context.Context, req domain.AIChefRequest) (domain.AIChefResponse, error) {
	if s.client == nil {
		return domain.AIChefResponse{}, domain.ErrAssistantNotConfigured
	}

	account, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AIChefResponse{}, domain.ErrUserNotFound
		}
		return domain.AIChefResponse{}, err
	}
	if !account.IsPremium {
		return domain.AIChefResponse{}, domain.ErrPremiumRequired
	}

	prompt := fmt.Sprintf(
		"You are a helpful chef assistant. The user has these ingredients in their pantry: %s.\n\nUser question: %s",
		s.pantrySummary(ctx, req.UserID), req.Query,
	)

	answer, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return domain.AIChefResponse{}, domain.ErrAssistantFailed
	}

	return domain.AIChefResponse{Response: strings.TrimSpace(answer)}, nil
}

// pantrySummary lists pantry item names for prompt context. An empty or
// missing pantry is not an error here.
func (s *assistantService) pantrySummary(ctx context.Context, userID string) string {
	p, err := s.pantryRepository.GetPantryByUserID(ctx, userID)
	if err != nil {
		return "nothing"
	}

	items, err := s.pantryRepository.GetItems(ctx, p.ID.String())
	if err != nil || len(items) == 0 {
		return "nothing"
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, fmt.Sprintf("%s (%g %s)", item.Name, item.Quantity, item.Unit))
	}
	return strings.Join(names, ", ")
}

func (s *assistantService) AnalyzeMicronutrition(ctx context.Context, req domain.MicronutritionRequest) (domain.MicronutritionResponse, error) {
	if s.client == nil {
		return domain.MicronutritionResponse{}, domain.ErrAssistantNotConfigured
	}

	prompt := fmt.Sprintf(
		"Provide a concise micronutrient analysis for %q: key vitamins, minerals, and notable health properties. Answer in plain text.",
		req.FoodName,
	)
	analysis, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return domain.MicronutritionResponse{}, domain.ErrAssistantFailed
	}

	return domain.MicronutritionResponse{
		FoodName: req.FoodName,
		Analysis: strings.TrimSpace(analysis),
	}, nil
}

func (s *assistantService) LookupBarcode(ctx context.Context, req domain.BarcodeRequest) (domain.BarcodeResponse, error) {
	if s.client == nil {
		return domain.BarcodeResponse{}, domain.ErrAssistantNotConfigured
	}

	prompt := fmt.Sprintf(
		`Identify the food product with barcode %s. Respond with JSON only, shaped as `+
			`{"name": string, "brand": string, "nutrition": {<nutrient>: <amount per 100g>}}. `+
			`If the barcode is unknown, use "Unknown product" as the name.`,
		req.Barcode,
	)
	raw, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return domain.BarcodeResponse{}, domain.ErrAssistantFailed
	}

	var product domain.BarcodeProduct
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &product); err != nil {
		return domain.BarcodeResponse{}, domain.ErrAssistantFailed
	}

	return domain.BarcodeResponse{Product: product}, nil
}

func (s *assistantService) ExtractSearchKeywords(ctx context.Context, query string) ([]string, error) {
	if s.client == nil {
		return nil, domain.ErrAssistantNotConfigured
	}

	prompt := fmt.Sprintf(
		`Extract up to five recipe search keywords from this request: %q. `+
			`Respond with a JSON array of lowercase single words only, e.g. ["chicken","spicy"].`,
		query,
	)
	raw, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, domain.ErrAssistantFailed
	}

	var keywords []string
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &keywords); err != nil {
		return nil, domain.ErrAssistantFailed
	}
	return keywords, nil
}

func (s *assistantService) ParseReceiptImage(ctx context.Context, imageFormat string, imageData []byte) ([]domain.ReceiptItem, error) {
	if s.client == nil {
		return nil, domain.ErrAssistantNotConfigured
	}

	prompt := `Extract the purchased food items from this receipt image. ` +
		`Respond with a JSON array only, each element shaped as ` +
		`{"name": string, "quantity": number, "price": number}. ` +
		`Skip non-food lines such as totals, taxes, and bags.`

	raw, err := s.client.GenerateVision(ctx, prompt, imageFormat, imageData)
	if err != nil {
		return nil, domain.ErrAssistantFailed
	}

	var items []domain.ReceiptItem
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &items); err != nil {
		return nil, domain.ErrAssistantFailed
	}
	return items, nil
}

func (s *assistantService) RecognizeFoodImage(ctx context.Context, imageFormat string, imageData []byte) ([]domain.RecognizedItem, error) {
	if s.client == nil {
		return nil, domain.ErrAssistantNotConfigured
	}

	prompt := `Identify the food items visible in this image. ` +
		`Respond with a JSON array only, each element shaped as ` +
		`{"name": string, "category": string, "confidence": number between 0 and 1}.`

	raw, err := s.client.GenerateVision(ctx, prompt, imageFormat, imageData)
	if err != nil {
		return nil, domain.ErrAssistantFailed
	}

	var items []domain.RecognizedItem
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &items); err != nil {
		return nil, domain.ErrAssistantFailed
	}
	return items, nil
}

// cleanJSONResponse strips the markdown code fences the model tends to wrap
// JSON answers in.
func cleanJSONResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
