package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"tradelink-utils/internal/config"
	"tradelink-utils/internal/llm"
	"tradelink-utils/internal/logging"
)

// ClaudeProvider implements the model provider interface using Anthropic's
// Claude. Kept as an alternative to Gemini, selected via the llm.provider
// config key.
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
	model  anthropic.Model
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) (*ClaudeProvider, error) {
	if cfg.LLM.APIKey == "" {
		return nil, llm.NewConfigError("claude", "init",
			fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable"))
	}

	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
		model:  anthropic.ModelClaude3_7SonnetLatest,
	}, nil
}

// GenerateEstimateText sends the estimation prompt to Claude and returns the raw response text
func (cp *ClaudeProvider) GenerateEstimateText(ctx context.Context, prompt string) (string, error) {
	startTime := time.Now()

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       cp.model,
		MaxTokens:   int64(cp.config.LLM.MaxOutputTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		TopP:        anthropic.Float(float64(cp.config.LLM.TopP)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return "", llm.NewTransientError("claude", "messages_new", err)
	}

	if len(response.Content) == 0 {
		return "", llm.NewTransientError("claude", "messages_new",
			fmt.Errorf("empty response from Claude"))
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return "", llm.NewTransientError("claude", "messages_new",
			fmt.Errorf("no text content in Claude response"))
	}

	cp.logger.Debug("Claude response received", map[string]interface{}{
		"provider":        "claude",
		"response_length": len(responseText),
		"processing_time": time.Since(startTime),
	})

	return responseText, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     cp.model,
		MaxTokens: 16,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}

// GetModelName returns the model identifier used for provenance metadata
func (cp *ClaudeProvider) GetModelName() string {
	return string(cp.model)
}
