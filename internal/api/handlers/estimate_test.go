package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelink-utils/internal/api/handlers"
	"tradelink-utils/internal/estimator"
	"tradelink-utils/internal/llm"
	"tradelink-utils/pkg/models"
)

type scriptedGenerator struct {
	response string
	err      error
}

func (g *scriptedGenerator) GenerateEstimateText(ctx context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func (g *scriptedGenerator) GetModelName() string { return "test-model" }

func newEstimateServer(gen estimator.TextGenerator) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	engine := estimator.NewEngine(estimator.DefaultPricingContext(), gen, time.Second)
	e.POST("/api/v1/estimate", handlers.EstimateHandler(engine, func() string { return "test" }, nil))
	return e
}

func postEstimate(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/estimate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEstimateEndpoint_FallbackWhenModelDown(t *testing.T) {
	gen := &scriptedGenerator{err: llm.NewTransientError("gemini", "generate", errors.New("unreachable"))}
	e := newEstimateServer(gen)

	rec := postEstimate(e, `{
		"description": "Burst pipe under the kitchen sink, water everywhere",
		"trade_category": "Plumber",
		"suburb": "Bondi Beach",
		"state": "NSW",
		"urgency": "urgent"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "test", resp.Provider)
	require.NotNil(t, resp.Estimate)
	assert.Equal(t, models.SourceFallbackCalculation, resp.Estimate.Source)
	assert.Equal(t, 848.0, resp.Estimate.Costs.Total)
	assert.Equal(t, "$848", resp.Estimate.FormattedCosts.Total)
	assert.Equal(t, "$678", resp.Estimate.FormattedRange.Min)
	assert.Equal(t, "$1,187", resp.Estimate.FormattedRange.Max)
}

func TestEstimateEndpoint_AIResponseReturned(t *testing.T) {
	gen := &scriptedGenerator{response: `{
		"estimatedHours": 4, "complexity": "moderate", "hourlyRate": 180,
		"laborCost": 720, "materialCost": 150, "totalCost": 870,
		"priceRange": {"min": 700, "max": 1100},
		"confidence": "high", "reasoning": "Standard job"
	}`}
	e := newEstimateServer(gen)

	rec := postEstimate(e, `{
		"description": "Burst pipe under the kitchen sink, water everywhere",
		"trade_category": "Plumber",
		"suburb": "Bondi Beach"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Estimate)
	assert.Equal(t, models.SourceAIGenerated, resp.Estimate.Source)
	assert.Equal(t, "test-model", resp.Estimate.Model)
	assert.Equal(t, 870.0, resp.Estimate.Costs.Total)
}

func TestEstimateEndpoint_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"short description", `{"description": "leaky tap", "trade_category": "Plumber", "suburb": "Bondi Beach"}`},
		{"missing trade", `{"description": "Burst pipe under the kitchen sink", "suburb": "Bondi Beach"}`},
		{"bad state", `{"description": "Burst pipe under the kitchen sink", "trade_category": "Plumber", "suburb": "Bondi Beach", "state": "XYZ"}`},
		{"bad urgency", `{"description": "Burst pipe under the kitchen sink", "trade_category": "Plumber", "suburb": "Bondi Beach", "urgency": "yesterday"}`},
		{"malformed json", `{"description": `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEstimateServer(&scriptedGenerator{response: "{}"})
			rec := postEstimate(e, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "bad_request", resp.Error)
		})
	}
}

func TestEstimateEndpoint_UnknownTradeRejected(t *testing.T) {
	e := newEstimateServer(&scriptedGenerator{response: "{}"})

	rec := postEstimate(e, `{
		"description": "Shoe a horse before the weekend races",
		"trade_category": "Blacksmith",
		"suburb": "Bondi Beach"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimateEndpoint_NonTransientFailureIsBadGateway(t *testing.T) {
	gen := &scriptedGenerator{err: llm.NewConfigError("gemini", "generate", errors.New("no key"))}
	e := newEstimateServer(gen)

	rec := postEstimate(e, `{
		"description": "Burst pipe under the kitchen sink, water everywhere",
		"trade_category": "Plumber",
		"suburb": "Bondi Beach"
	}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
