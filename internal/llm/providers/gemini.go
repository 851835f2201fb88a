package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tradelink-utils/internal/config"
	"tradelink-utils/internal/llm"
	"tradelink-utils/internal/logging"
)

// GeminiProvider implements the model provider interface using Google's
// Gemini API. Pricing estimates use conservative generation parameters so
// repeated requests for the same job stay in the same ballpark.
type GeminiProvider struct {
	client *genai.Client
	config *config.Config
	logger logging.Logger
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.Config) (*GeminiProvider, error) {
	if cfg.LLM.APIKey == "" {
		return nil, llm.NewConfigError("gemini", "init",
			fmt.Errorf("Gemini API key not configured - set LLM_API_KEY or GEMINI_API_KEY"))
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.LLM.APIKey))
	if err != nil {
		return nil, llm.NewConfigError("gemini", "init", err)
	}

	return &GeminiProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// GenerateEstimateText sends the estimation prompt to Gemini and returns the raw response text
func (gp *GeminiProvider) GenerateEstimateText(ctx context.Context, prompt string) (string, error) {
	startTime := time.Now()

	model := gp.client.GenerativeModel(gp.config.LLM.Model)
	model.SetTemperature(gp.config.LLM.Temperature)
	model.SetTopP(gp.config.LLM.TopP)
	model.SetTopK(gp.config.LLM.TopK)
	model.SetMaxOutputTokens(gp.config.LLM.MaxOutputTokens)
	model.SafetySettings = []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockLowAndAbove,
		},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", llm.NewTransientError("gemini", "generate_content", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", llm.NewTransientError("gemini", "generate_content",
			fmt.Errorf("empty response from Gemini API"))
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", llm.NewTransientError("gemini", "generate_content",
			fmt.Errorf("unexpected response part type %T", resp.Candidates[0].Content.Parts[0]))
	}

	gp.logger.Debug("Gemini response received", map[string]interface{}{
		"provider":        "gemini",
		"model":           gp.config.LLM.Model,
		"response_length": len(string(text)),
		"processing_time": time.Since(startTime),
	})

	return string(text), nil
}

// IsHealthy checks if the Gemini provider is healthy and available
func (gp *GeminiProvider) IsHealthy(ctx context.Context) error {
	model := gp.client.GenerativeModel(gp.config.LLM.Model)
	model.SetMaxOutputTokens(16)

	if _, err := model.GenerateContent(ctx, genai.Text("Hello")); err != nil {
		return fmt.Errorf("Gemini API health check failed: %w", err)
	}
	return nil
}

// GetProviderName returns the name of the provider
func (gp *GeminiProvider) GetProviderName() string {
	return "gemini"
}

// GetModelName returns the configured model identifier
func (gp *GeminiProvider) GetModelName() string {
	return gp.config.LLM.Model
}

// Close releases the underlying API client
func (gp *GeminiProvider) Close() error {
	return gp.client.Close()
}
