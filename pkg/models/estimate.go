package models

import "time"

// JobRequest describes the job a homeowner wants priced
type JobRequest struct {
	Description       string  `json:"description"`
	TradeCategory     string  `json:"trade_category"`
	Suburb            string  `json:"suburb"`
	State             string  `json:"state,omitempty"`
	Urgency           string  `json:"urgency,omitempty"`
	MaterialsIncluded bool    `json:"materials_included,omitempty"`
	EstimatedHours    float64 `json:"estimated_hours,omitempty"` // caller hint, not consumed by the parser
}

// JobDetails echoes the normalized request back on the estimate
type JobDetails struct {
	Description   string `json:"description"`
	TradeCategory string `json:"trade_category"`
	Location      string `json:"location"` // "suburb, state"
	Urgency       string `json:"urgency"`
}

// Costs is the labor/materials/total cost decomposition of an estimate
type Costs struct {
	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Total     float64 `json:"total"`
}

// PriceRange is the expected min/max band around the total
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CostBreakdown is an informational decomposition of the labor cost.
// The terms are not guaranteed to sum to the total.
type CostBreakdown struct {
	BaseLabor          float64 `json:"base_labor"`
	UrgencyPremium     float64 `json:"urgency_premium"`
	LocationAdjustment float64 `json:"location_adjustment"`
	ComplexityFactor   float64 `json:"complexity_factor"`
}

// Estimate sources
const (
	SourceAIGenerated         = "ai_generated"
	SourceFallbackCalculation = "fallback_calculation"
)

// PriceEstimate is the canonical estimate record returned to callers.
// Instances are ephemeral: created per request, returned, discarded.
type PriceEstimate struct {
	JobID     string    `json:"job_id"`
	Timestamp time.Time `json:"timestamp"`

	JobDetails JobDetails `json:"job_details"`

	EstimatedHours float64 `json:"estimated_hours"`
	Complexity     string  `json:"complexity"`
	HourlyRate     float64 `json:"hourly_rate"`

	Costs      Costs         `json:"costs"`
	PriceRange PriceRange    `json:"price_range"`
	Breakdown  CostBreakdown `json:"breakdown"`

	Confidence      string   `json:"confidence"`
	Reasoning       string   `json:"reasoning"`
	Assumptions     []string `json:"assumptions"`
	Recommendations []string `json:"recommendations"`

	LocationMultiplier float64 `json:"location_multiplier"`
	UrgencyMultiplier  float64 `json:"urgency_multiplier"`

	Source  string `json:"source"`
	Model   string `json:"model"`
	Version string `json:"version"`
}

// FormattedCosts holds display-ready currency strings for the cost fields
type FormattedCosts struct {
	Labor     string `json:"labor"`
	Materials string `json:"materials"`
	Total     string `json:"total"`
}

// FormattedRange holds display-ready currency strings for the price range
type FormattedRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// DisplayEstimate merges an estimate with its display formatting
type DisplayEstimate struct {
	PriceEstimate
	FormattedCosts      FormattedCosts `json:"formatted_costs"`
	FormattedRange      FormattedRange `json:"formatted_range"`
	FormattedHourlyRate string         `json:"formatted_hourly_rate"`
}
