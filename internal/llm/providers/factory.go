package providers

import (
	"fmt"

	"tradelink-utils/internal/config"
	"tradelink-utils/internal/llm"
)

// CreateProvider creates a model provider based on the configuration
func CreateProvider(cfg *config.Config) (llm.Provider, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return NewGeminiProvider(cfg)
	case "claude":
		return NewClaudeProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLM.Provider)
	}
}

// SupportedProviders returns the list of supported provider names
func SupportedProviders() []string {
	return []string{"gemini", "claude"}
}
