package assistant

import (
	"PantryPal-Backend/domain"
	"PantryPal-Backend/internal/utils"
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type (
	// Client wraps the language model behind the two call shapes the
	// service needs. A nil Client means the integration is not configured;
	// callers check at call time, never at process start.
	Client interface {
		GenerateText(ctx context.Context, prompt string) (string, error)
		GenerateVision(ctx context.Context, prompt string, imageFormat string, imageData []byte) (string, error)
		Close() error
	}

	geminiClient struct {
		client *genai.Client
		model  *genai.GenerativeModel
	}
)

// NewGeminiClient creates the Gemini API client, or returns (nil, nil) when
// no API key is configured so that dependent routes degrade instead of
// failing at startup.
func NewGeminiClient(ctx context.Context) (Client, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	modelName := utils.GetConfig("GEMINI_MODEL")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	model := client.GenerativeModel(modelName)

	return &geminiClient{client: client, model: model}, nil
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return textFromResponse(resp)
}

func (c *geminiClient) GenerateVision(ctx context.Context, prompt string, imageFormat string, imageData []byte) (string, error) {
	resp, err := c.model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData(imageFormat, imageData),
	)
	if err != nil {
		return "", err
	}
	return textFromResponse(resp)
}

func (c *geminiClient) Close() error {
	return c.client.Close()
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrAssistantFailed
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", domain.ErrAssistantFailed
	}
	return string(text), nil
}
