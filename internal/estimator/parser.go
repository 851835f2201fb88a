package estimator

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"tradelink-utils/pkg/models"
	"tradelink-utils/pkg/utils"
)

// aiEstimatePayload mirrors the JSON schema the prompt asks the model to
// produce. Pointer fields distinguish missing values from explicit zeros so
// the normalization defaults stay in one place.
type aiEstimatePayload struct {
	EstimatedHours *float64 `json:"estimatedHours"`
	Complexity     string   `json:"complexity"`
	HourlyRate     *float64 `json:"hourlyRate"`
	LaborCost      *float64 `json:"laborCost"`
	MaterialCost   *float64 `json:"materialCost"`
	TotalCost      *float64 `json:"totalCost"`
	PriceRange     *struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	} `json:"priceRange"`
	Breakdown *struct {
		BaseLabor          *float64 `json:"baseLabor"`
		UrgencyPremium     *float64 `json:"urgencyPremium"`
		LocationAdjustment *float64 `json:"locationAdjustment"`
		ComplexityFactor   *float64 `json:"complexityFactor"`
	} `json:"breakdown"`
	Confidence      string   `json:"confidence"`
	Reasoning       string   `json:"reasoning"`
	Assumptions     []string `json:"assumptions"`
	Recommendations []string `json:"recommendations"`
}

// numberOr returns the payload value, or def when the field is missing or
// zero. Zero counts as missing so a model that emits placeholder zeros gets
// the same defaults as one that omits the field.
func numberOr(v *float64, def float64) float64 {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}

// ParseAIEstimate extracts the JSON payload from the model's raw response
// text and normalizes it into a canonical estimate. Every numeric field is
// defaulted and clamped; a failure at any step returns a ResponseParseError
// and the caller decides recovery.
func ParseAIEstimate(raw string, job models.JobRequest, pc *PricingContext, modelName string) (*models.PriceEstimate, error) {
	// The model is instructed to return bare JSON but may wrap it in prose
	// or markdown fences; take everything between the first '{' and the
	// last '}'.
	jsonStart := strings.Index(raw, "{")
	jsonEnd := strings.LastIndex(raw, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, &ResponseParseError{Reason: "no JSON object found in AI response"}
	}

	var payload aiEstimatePayload
	if err := json.Unmarshal([]byte(raw[jsonStart:jsonEnd+1]), &payload); err != nil {
		return nil, &ResponseParseError{Reason: "malformed JSON in AI response", Err: err}
	}

	basePricing, ok := pc.BaseRates[job.TradeCategory]
	if !ok {
		return nil, &ResponseParseError{
			Reason: fmt.Sprintf("no pricing data for trade category %q", job.TradeCategory),
		}
	}

	location := pc.ResolveLocation(job.Suburb, job.State)

	complexity := payload.Complexity
	if _, known := pc.ComplexityFactors[complexity]; !known {
		complexity = ComplexityModerate
	}

	confidence := payload.Confidence
	switch confidence {
	case "high", "medium", "low":
	default:
		confidence = "medium"
	}

	reasoning := payload.Reasoning
	if reasoning == "" {
		reasoning = "Estimate based on typical job requirements"
	}

	assumptions := payload.Assumptions
	if assumptions == nil {
		assumptions = []string{}
	}
	recommendations := payload.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	estimate := &models.PriceEstimate{
		JobID:     utils.GenerateEstimateID(),
		Timestamp: time.Now().UTC(),
		JobDetails: models.JobDetails{
			Description:   job.Description,
			TradeCategory: job.TradeCategory,
			Location:      fmt.Sprintf("%s, %s", job.Suburb, job.State),
			Urgency:       job.Urgency,
		},

		EstimatedHours: math.Max(0.5, numberOr(payload.EstimatedHours, 2)),
		Complexity:     complexity,
		HourlyRate: math.Max(basePricing.Min,
			math.Min(basePricing.Max, numberOr(payload.HourlyRate, basePricing.Min))),

		Costs: models.Costs{
			Labor:     math.Max(50, numberOr(payload.LaborCost, 200)),
			Materials: math.Max(0, numberOr(payload.MaterialCost, 0)),
			Total:     math.Max(50, numberOr(payload.TotalCost, 200)),
		},

		Confidence:      confidence,
		Reasoning:       reasoning,
		Assumptions:     assumptions,
		Recommendations: recommendations,

		LocationMultiplier: location.Multiplier,
		UrgencyMultiplier:  pc.UrgencyMultiplier(job.Urgency),

		Source:  models.SourceAIGenerated,
		Model:   modelName,
		Version: "1.0",
	}

	if payload.PriceRange != nil {
		estimate.PriceRange = models.PriceRange{
			Min: math.Max(50, numberOr(payload.PriceRange.Min, 150)),
			Max: math.Max(100, numberOr(payload.PriceRange.Max, 400)),
		}
	} else {
		estimate.PriceRange = models.PriceRange{Min: 150, Max: 400}
	}

	if payload.Breakdown != nil {
		estimate.Breakdown = models.CostBreakdown{
			BaseLabor:          numberOr(payload.Breakdown.BaseLabor, 0),
			UrgencyPremium:     numberOr(payload.Breakdown.UrgencyPremium, 0),
			LocationAdjustment: numberOr(payload.Breakdown.LocationAdjustment, 0),
			ComplexityFactor:   numberOr(payload.Breakdown.ComplexityFactor, 0),
		}
	}

	return estimate, nil
}
