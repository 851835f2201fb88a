package llm

import (
	"context"
)

// Provider defines the interface for generative model providers. The
// estimator hands it a fully rendered prompt and gets back the model's raw
// response text; everything past that point (JSON extraction, clamping) is
// the estimator's job.
type Provider interface {
	// GenerateEstimateText sends the estimation prompt to the model and
	// returns the raw response text
	GenerateEstimateText(ctx context.Context, prompt string) (string, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string

	// GetModelName returns the model identifier used for provenance metadata
	GetModelName() string
}
