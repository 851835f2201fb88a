package estimator

import (
	"fmt"
	"sort"
	"strings"

	"tradelink-utils/pkg/models"
)

// descriptionSanitizer neutralizes caller text before it is embedded in the
// prompt so it cannot break out of the quoted description line.
var descriptionSanitizer = strings.NewReplacer(
	"\r", " ",
	"\n", " ",
	`"`, "'",
)

// BuildEstimationPrompt deterministically renders a job request and its
// pricing context into the estimation prompt. Same input, same prompt.
func BuildEstimationPrompt(job models.JobRequest, pc *PricingContext) string {
	basePricing := pc.BaseRates[job.TradeCategory]
	location := pc.ResolveLocation(job.Suburb, job.State)
	urgencyMultiplier := pc.UrgencyMultiplier(job.Urgency)

	materialsIncluded := "No"
	if job.MaterialsIncluded {
		materialsIncluded = "Yes"
	}

	description := strings.TrimSpace(descriptionSanitizer.Replace(job.Description))

	var examples strings.Builder
	jobTypes := pc.CommonJobTypes[job.TradeCategory]
	names := make([]string, 0, len(jobTypes))
	for name := range jobTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		details := jobTypes[name]
		fmt.Fprintf(&examples, "- %s: ~%ghrs, %s complexity, materials: $%g\n",
			name, details.Hours, details.Complexity, details.Materials)
	}

	return fmt.Sprintf(`You are a professional trade pricing expert in Australia. Provide a detailed price estimate for the following job:

JOB DETAILS:
- Trade: %s
- Description: "%s"
- Location: %s, %s
- Urgency: %s
- Materials included: %s

PRICING CONTEXT:
- Base hourly rate for %s: $%g-%g AUD
- Location multiplier: %gx
- Urgency factor: %gx

SIMILAR JOB EXAMPLES:
%s
ANALYSIS REQUIREMENTS:
1. Estimate total hours needed based on job description
2. Assess job complexity (basic/moderate/complex/expert)
3. Consider location-specific pricing in %s, %s
4. Factor in urgency level (%s)
5. Estimate material costs if applicable
6. Consider any special requirements or challenges

RESPONSE FORMAT:
Provide your analysis in this exact JSON structure:
{
  "estimatedHours": [number],
  "complexity": "[basic/moderate/complex/expert]",
  "hourlyRate": [number],
  "laborCost": [number],
  "materialCost": [number],
  "totalCost": [number],
  "priceRange": {
    "min": [number],
    "max": [number]
  },
  "breakdown": {
    "baseLabor": [number],
    "urgencyPremium": [number],
    "locationAdjustment": [number],
    "complexityFactor": [number]
  },
  "confidence": "[high/medium/low]",
  "reasoning": "[brief explanation of estimate]",
  "assumptions": ["[assumption 1]", "[assumption 2]"],
  "recommendations": ["[recommendation 1]", "[recommendation 2]"]
}

Important: Only respond with valid JSON. No additional text before or after.`,
		job.TradeCategory,
		description,
		job.Suburb, job.State,
		job.Urgency,
		materialsIncluded,
		job.TradeCategory, basePricing.Min, basePricing.Max,
		location.Multiplier,
		urgencyMultiplier,
		examples.String(),
		job.Suburb, job.State,
		job.Urgency,
	)
}
