package estimator

import (
	"fmt"
	"strings"

	"tradelink-utils/pkg/models"
)

// ValidateEstimate is the post-condition check callers run before trusting
// an estimate, regardless of which path produced it. It is a pure check:
// nothing is normalized or mutated.
func ValidateEstimate(estimate *models.PriceEstimate) error {
	if estimate == nil {
		return &EstimateValidationError{
			Kind:   ValidationMissingField,
			Detail: "estimate is nil",
		}
	}

	var missing []string
	if estimate.EstimatedHours == 0 {
		missing = append(missing, "estimated_hours")
	}
	if estimate.HourlyRate == 0 {
		missing = append(missing, "hourly_rate")
	}
	if estimate.Costs == (models.Costs{}) {
		missing = append(missing, "costs")
	}
	if estimate.PriceRange == (models.PriceRange{}) {
		missing = append(missing, "price_range")
	}
	if len(missing) > 0 {
		return &EstimateValidationError{
			Kind:   ValidationMissingField,
			Detail: fmt.Sprintf("missing %s", strings.Join(missing, ", ")),
		}
	}

	if estimate.Costs.Total <= 0 {
		return &EstimateValidationError{
			Kind:   ValidationInvalidValue,
			Detail: "total cost must be positive",
		}
	}

	if estimate.PriceRange.Min > estimate.PriceRange.Max {
		return &EstimateValidationError{
			Kind:   ValidationInvalidRange,
			Detail: "min price cannot exceed max price",
		}
	}

	return nil
}
