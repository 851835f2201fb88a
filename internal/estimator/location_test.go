package estimator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tradelink-utils/internal/estimator"
)

func TestResolveLocation(t *testing.T) {
	pc := estimator.DefaultPricingContext()

	cases := []struct {
		name           string
		suburb         string
		state          string
		wantCity       string
		wantMultiplier float64
		wantAreaType   string
	}{
		{"sydney inner by marker", "Bondi Beach", "NSW", "Sydney", 1.3, "inner"},
		{"sydney cbd", "Sydney CBD", "NSW", "Sydney", 1.3, "inner"},
		{"sydney outer", "Penrith", "NSW", "Sydney", 1.1, "outer"},
		{"melbourne inner", "Melbourne City", "VIC", "Melbourne", 1.25, "inner"},
		{"melbourne outer", "Frankston", "VIC", "Melbourne", 1.05, "outer"},
		{"brisbane outer", "Logan", "QLD", "Brisbane", 1.0, "outer"},
		{"canberra inner", "Civic Central", "ACT", "Canberra", 1.35, "inner"},
		{"hobart outer", "Glenorchy", "TAS", "Hobart", 0.85, "outer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc := pc.ResolveLocation(tc.suburb, tc.state)
			assert.Equal(t, tc.wantCity, loc.City)
			assert.Equal(t, tc.wantMultiplier, loc.Multiplier)
			assert.Equal(t, tc.wantAreaType, loc.AreaType)
		})
	}
}

func TestResolveLocation_UnknownState(t *testing.T) {
	pc := estimator.DefaultPricingContext()

	// No city mapping and no multiplier data: defaults apply
	loc := pc.ResolveLocation("Somewhere", "NZ")
	assert.Equal(t, "NZ", loc.City)
	assert.Equal(t, 0.9, loc.Multiplier)
	assert.Equal(t, "outer", loc.AreaType)

	inner := pc.ResolveLocation("Somewhere Central", "NZ")
	assert.Equal(t, 1.0, inner.Multiplier)
	assert.Equal(t, "inner", inner.AreaType)
}
