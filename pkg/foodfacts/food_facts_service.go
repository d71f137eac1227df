package foodfacts

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	parserEndpoint    = "https://api.edamam.com/api/food-database/v2/parser"
	nutrientsEndpoint = "https://api.edamam.com/api/food-database/v2/nutrients"
)

type (
	FoodFactsService interface {
		// Search proxies a free-text query to the food database and passes
		// the provider payload through unmodified.
		Search(ctx context.Context, req domain.FoodSearchRequest) (domain.FoodSearchResponse, error)
		GetNutrition(ctx context.Context, foodID string) (domain.FoodNutritionResponse, error)
	}

	foodFactsService struct {
		appID      string
		appKey     string
		httpClient *http.Client
	}
)

func NewFoodFactsService() FoodFactsService {
	return &foodFactsService{
		appID:  utils.GetConfig("EDAMAM_APP_ID"),
		appKey: utils.GetConfig("EDAMAM_APP_KEY"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *foodFactsService) configured() bool {
	return s.appID != "" && s.appKey != ""
}

func (s *foodFactsService) Search(ctx context.Context, req domain.FoodSearchRequest) (domain.FoodSearchResponse, error) {
	if !s.configured() {
		return domain.FoodSearchResponse{}, domain.ErrFoodDatabaseNotConfigured
	}

	query := url.Values{}
	query.Set("app_id", s.appID)
	query.Set("app_key", s.appKey)
	query.Set("ingr", req.Query)

	body, err := s.get(ctx, parserEndpoint+"?"+query.Encode())
	if err != nil {
		return domain.FoodSearchResponse{}, err
	}

	return domain.FoodSearchResponse{Results: body}, nil
}

func (s *foodFactsService) GetNutrition(ctx context.Context, foodID string) (domain.FoodNutritionResponse, error) {
	if !s.configured() {
		return domain.FoodNutritionResponse{}, domain.ErrFoodDatabaseNotConfigured
	}

	query := url.Values{}
	query.Set("app_id", s.appID)
	query.Set("app_key", s.appKey)

	payload, err := json.Marshal(map[string]any{
		"ingredients": []map[string]any{
			{"quantity": 1, "measureURI": "http://www.edamam.com/ontologies/edamam.owl#Measure_unit", "foodId": foodID},
		},
	})
	if err != nil {
		return domain.FoodNutritionResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		nutrientsEndpoint+"?"+query.Encode(), bytes.NewReader(payload))
	if err != nil {
		return domain.FoodNutritionResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	body, err := s.do(httpReq)
	if err != nil {
		return domain.FoodNutritionResponse{}, err
	}

	return domain.FoodNutritionResponse{
		FoodID:    foodID,
		Nutrients: body,
	}, nil
}

func (s *foodFactsService) get(ctx context.Context, rawURL string) (json.RawMessage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return s.do(httpReq)
}

func (s *foodFactsService) do(req *http.Request) (json.RawMessage, error) {
	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrFoodDatabaseFailed
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, domain.ErrFoodDatabaseFailed
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, domain.ErrFoodDatabaseFailed
	}
	return body, nil
}
