package estimator

import (
	"fmt"
	"math"
	"time"

	"tradelink-utils/pkg/models"
	"tradelink-utils/pkg/utils"
)

// Fixed assumptions for the formula-based estimate
const (
	fallbackHours         = 3.0 // conservative estimate
	fallbackMaterialsRate = 0.4 // materials as a share of labor when bundled
	fallbackRangeMin      = 0.8
	fallbackRangeMax      = 1.4
)

var (
	fallbackAssumptions = []string{
		"Standard complexity job",
		"Typical material requirements",
		"Normal site access",
	}
	fallbackRecommendations = []string{
		"Get multiple quotes for comparison",
		"Confirm material requirements with tradie",
		"Ask about additional costs upfront",
	}
)

// BuildFallbackEstimate computes a deterministic estimate from the static
// pricing tables alone. It is used when the model is unreachable or its
// output cannot be parsed, and it never fails: the arithmetic is pure and
// the inputs are already validated and defaulted.
func BuildFallbackEstimate(job models.JobRequest, pc *PricingContext) *models.PriceEstimate {
	basePricing := pc.BaseRates[job.TradeCategory]
	location := pc.ResolveLocation(job.Suburb, job.State)
	urgencyMultiplier := pc.UrgencyMultiplier(job.Urgency)

	baseHourlyRate := basePricing.Midpoint()
	adjustedRate := baseHourlyRate * location.Multiplier * urgencyMultiplier

	laborCost := fallbackHours * adjustedRate
	materialCost := 0.0
	if job.MaterialsIncluded {
		materialCost = laborCost * fallbackMaterialsRate
	}
	// The range brackets the rounded total, so round before spreading
	totalCost := math.Round(laborCost + materialCost)

	return &models.PriceEstimate{
		JobID:     utils.GenerateEstimateID(),
		Timestamp: time.Now().UTC(),
		JobDetails: models.JobDetails{
			Description:   job.Description,
			TradeCategory: job.TradeCategory,
			Location:      fmt.Sprintf("%s, %s", job.Suburb, job.State),
			Urgency:       job.Urgency,
		},

		EstimatedHours: fallbackHours,
		Complexity:     ComplexityModerate,
		HourlyRate:     math.Round(adjustedRate),

		Costs: models.Costs{
			Labor:     math.Round(laborCost),
			Materials: math.Round(materialCost),
			Total:     totalCost,
		},

		PriceRange: models.PriceRange{
			Min: math.Round(totalCost * fallbackRangeMin),
			Max: math.Round(totalCost * fallbackRangeMax),
		},

		// Informational only; the urgency premium is the residual after
		// removing the location-adjusted base cost, so the terms are not
		// guaranteed to sum to the labor cost.
		Breakdown: models.CostBreakdown{
			BaseLabor:          math.Round(fallbackHours * baseHourlyRate),
			UrgencyPremium:     math.Round(laborCost - fallbackHours*baseHourlyRate*location.Multiplier),
			LocationAdjustment: math.Round(fallbackHours * baseHourlyRate * (location.Multiplier - 1)),
			ComplexityFactor:   0,
		},

		Confidence:      "medium",
		Reasoning:       "Fallback estimate based on industry averages",
		Assumptions:     append([]string(nil), fallbackAssumptions...),
		Recommendations: append([]string(nil), fallbackRecommendations...),

		LocationMultiplier: location.Multiplier,
		UrgencyMultiplier:  urgencyMultiplier,

		Source:  models.SourceFallbackCalculation,
		Model:   "basic_formula",
		Version: "1.0",
	}
}
