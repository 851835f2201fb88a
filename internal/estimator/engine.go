package estimator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tradelink-utils/internal/llm"
	"tradelink-utils/internal/logging"
	"tradelink-utils/pkg/models"
)

// TextGenerator is the slice of the model boundary the engine needs. The
// llm.Manager satisfies it; tests substitute stubs.
type TextGenerator interface {
	GenerateEstimateText(ctx context.Context, prompt string) (string, error)
	GetModelName() string
}

// Engine produces price estimates for trade jobs. The pricing context and
// model boundary are injected so tests can swap either out; the engine
// itself holds no mutable state and is safe for concurrent use.
type Engine struct {
	pricing   *PricingContext
	generator TextGenerator
	timeout   time.Duration
	logger    logging.Logger
}

// NewEngine creates an estimation engine
func NewEngine(pricing *PricingContext, generator TextGenerator, timeout time.Duration) *Engine {
	return &Engine{
		pricing:   pricing,
		generator: generator,
		timeout:   timeout,
		logger:    logging.GetGlobalLogger(),
	}
}

// Pricing returns the engine's pricing context
func (e *Engine) Pricing() *PricingContext {
	return e.pricing
}

// GeneratePriceEstimate runs one estimation: validate input, build the
// prompt, invoke the model once, parse the response. Transport failures and
// unparseable responses downgrade to the deterministic fallback estimate;
// input validation failures and non-transient provider errors propagate.
func (e *Engine) GeneratePriceEstimate(ctx context.Context, job models.JobRequest) (*models.PriceEstimate, error) {
	if err := validateJobRequest(job, e.pricing); err != nil {
		return nil, err
	}

	job = normalizeJobRequest(job)

	prompt := BuildEstimationPrompt(job, e.pricing)

	// The timeout covers only the model invocation; expiry is handled like
	// any other transport failure.
	callCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	raw, err := e.generator.GenerateEstimateText(callCtx, prompt)
	if err != nil {
		if llm.IsTransient(err) || errors.Is(err, context.DeadlineExceeded) {
			e.logger.Warn("Model invocation failed, using fallback estimate", map[string]interface{}{
				"trade_category": job.TradeCategory,
				"error":          err.Error(),
			})
			return BuildFallbackEstimate(job, e.pricing), nil
		}
		return nil, err
	}

	estimate, err := ParseAIEstimate(raw, job, e.pricing, e.generator.GetModelName())
	if err != nil {
		e.logger.Warn("Failed to parse AI response, using fallback estimate", map[string]interface{}{
			"trade_category": job.TradeCategory,
			"error":          err.Error(),
		})
		return BuildFallbackEstimate(job, e.pricing), nil
	}

	return estimate, nil
}

// FallbackEstimate computes the deterministic formula-based estimate for a
// job without touching the model. Input must already satisfy the request
// checks; defaults are applied here as in the AI path.
func (e *Engine) FallbackEstimate(job models.JobRequest) *models.PriceEstimate {
	return BuildFallbackEstimate(normalizeJobRequest(job), e.pricing)
}

// validateJobRequest fails fast on requests the engine cannot price
func validateJobRequest(job models.JobRequest, pc *PricingContext) error {
	description := strings.TrimSpace(job.Description)
	if description == "" {
		return &InputValidationError{Field: "description", Reason: "is required"}
	}
	if len(description) < 10 {
		return &InputValidationError{Field: "description", Reason: "must be at least 10 characters"}
	}

	if job.TradeCategory == "" {
		return &InputValidationError{Field: "trade_category", Reason: "is required"}
	}
	if !pc.HasTrade(job.TradeCategory) {
		return &InputValidationError{
			Field:  "trade_category",
			Reason: fmt.Sprintf("has no pricing data (%s)", job.TradeCategory),
		}
	}

	if strings.TrimSpace(job.Suburb) == "" {
		return &InputValidationError{Field: "suburb", Reason: "is required"}
	}

	return nil
}

// normalizeJobRequest applies the documented defaults
func normalizeJobRequest(job models.JobRequest) models.JobRequest {
	if job.State == "" {
		job.State = DefaultState
	}
	if job.Urgency == "" {
		job.Urgency = UrgencyFlexible
	}
	return job
}
