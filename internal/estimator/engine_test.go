package estimator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelink-utils/internal/estimator"
	"tradelink-utils/internal/llm"
	"tradelink-utils/pkg/models"
)

// stubGenerator scripts the model boundary for engine tests
type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) GenerateEstimateText(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) GetModelName() string {
	return "stub-model"
}

func newTestEngine(gen *stubGenerator) *estimator.Engine {
	return estimator.NewEngine(estimator.DefaultPricingContext(), gen, 5*time.Second)
}

func TestGeneratePriceEstimate_SuccessfulModelResponse(t *testing.T) {
	gen := &stubGenerator{response: wellFormedResponse}
	engine := newTestEngine(gen)

	est, err := engine.GeneratePriceEstimate(context.Background(), urgentPlumberJob())
	require.NoError(t, err)

	assert.Equal(t, models.SourceAIGenerated, est.Source)
	assert.Equal(t, "stub-model", est.Model)
	assert.Equal(t, 870.0, est.Costs.Total)
	assert.Equal(t, 1, gen.calls)
}

func TestGeneratePriceEstimate_TransientFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: llm.NewTransientError("gemini", "generate", errors.New("503 service unavailable"))}
	engine := newTestEngine(gen)

	est, err := engine.GeneratePriceEstimate(context.Background(), urgentPlumberJob())
	require.NoError(t, err)

	assert.Equal(t, models.SourceFallbackCalculation, est.Source)
	assert.Equal(t, "basic_formula", est.Model)
	assert.Equal(t, 848.0, est.Costs.Total)
}

func TestGeneratePriceEstimate_DeadlineExceededFallsBack(t *testing.T) {
	gen := &stubGenerator{err: context.DeadlineExceeded}
	engine := newTestEngine(gen)

	est, err := engine.GeneratePriceEstimate(context.Background(), urgentPlumberJob())
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallbackCalculation, est.Source)
}

func TestGeneratePriceEstimate_NonTransientFailurePropagates(t *testing.T) {
	configErr := llm.NewConfigError("gemini", "generate", errors.New("API key not configured"))
	gen := &stubGenerator{err: configErr}
	engine := newTestEngine(gen)

	est, err := engine.GeneratePriceEstimate(context.Background(), urgentPlumberJob())
	require.Error(t, err)
	assert.Nil(t, est)
	assert.False(t, llm.IsTransient(err))
}

func TestGeneratePriceEstimate_UnparseableResponseFallsBack(t *testing.T) {
	gen := &stubGenerator{response: "Sorry, I can't help with pricing this job."}
	engine := newTestEngine(gen)

	est, err := engine.GeneratePriceEstimate(context.Background(), urgentPlumberJob())
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallbackCalculation, est.Source)
}

func TestGeneratePriceEstimate_InvalidInputNeverReachesModel(t *testing.T) {
	cases := []struct {
		name string
		job  models.JobRequest
	}{
		{"empty description", models.JobRequest{TradeCategory: "Plumber", Suburb: "Bondi Beach"}},
		{"short description", models.JobRequest{Description: "leaky tap", TradeCategory: "Plumber", Suburb: "Bondi Beach"}},
		{"missing trade", models.JobRequest{Description: "Burst pipe under the kitchen sink", Suburb: "Bondi Beach"}},
		{"unknown trade", models.JobRequest{Description: "Burst pipe under the kitchen sink", TradeCategory: "Blacksmith", Suburb: "Bondi Beach"}},
		{"missing suburb", models.JobRequest{Description: "Burst pipe under the kitchen sink", TradeCategory: "Plumber"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerator{response: wellFormedResponse}
			engine := newTestEngine(gen)

			est, err := engine.GeneratePriceEstimate(context.Background(), tc.job)
			require.Error(t, err)
			assert.Nil(t, est)
			assert.True(t, estimator.IsInputValidation(err))
			assert.Equal(t, 0, gen.calls, "model must not be invoked for invalid input")
		})
	}
}

func TestGeneratePriceEstimate_DefaultsStateAndUrgency(t *testing.T) {
	gen := &stubGenerator{err: llm.NewTransientError("gemini", "generate", errors.New("down"))}
	engine := newTestEngine(gen)

	job := models.JobRequest{
		Description:   "Burst pipe under the kitchen sink, water everywhere",
		TradeCategory: "Plumber",
		Suburb:        "Bondi Beach",
	}

	est, err := engine.GeneratePriceEstimate(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, "Bondi Beach, NSW", est.JobDetails.Location)
	assert.Equal(t, "flexible", est.JobDetails.Urgency)
	assert.Equal(t, 1.0, est.UrgencyMultiplier)
}

func TestFallbackEstimate_AppliesDefaults(t *testing.T) {
	engine := newTestEngine(&stubGenerator{})

	est := engine.FallbackEstimate(models.JobRequest{
		Description:   "Repaint the living room walls and ceiling",
		TradeCategory: "Painter",
		Suburb:        "Newtown",
	})

	require.NotNil(t, est)
	assert.Equal(t, models.SourceFallbackCalculation, est.Source)
	assert.Equal(t, "Newtown, NSW", est.JobDetails.Location)
	assert.Equal(t, "flexible", est.JobDetails.Urgency)
}
