package estimator

import (
	"math"
	"strconv"

	"tradelink-utils/pkg/models"
)

// FormatCurrency renders an amount as a whole-dollar currency string with
// grouped thousands, e.g. 1187.4 -> "$1,187".
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))

	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + "$" + string(grouped)
}

// FormatEstimateForDisplay merges display-ready currency strings alongside
// the original estimate fields. Pure transform, no error conditions.
func FormatEstimateForDisplay(estimate *models.PriceEstimate) *models.DisplayEstimate {
	return &models.DisplayEstimate{
		PriceEstimate: *estimate,
		FormattedCosts: models.FormattedCosts{
			Labor:     FormatCurrency(estimate.Costs.Labor),
			Materials: FormatCurrency(estimate.Costs.Materials),
			Total:     FormatCurrency(estimate.Costs.Total),
		},
		FormattedRange: models.FormattedRange{
			Min: FormatCurrency(estimate.PriceRange.Min),
			Max: FormatCurrency(estimate.PriceRange.Max),
		},
		FormattedHourlyRate: FormatCurrency(estimate.HourlyRate),
	}
}
