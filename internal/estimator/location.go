package estimator

import "strings"

// LocationContext is the pricing context resolved for a suburb/state pair
type LocationContext struct {
	City       string
	Multiplier float64
	AreaType   string // "inner" or "outer"
}

// stateCities maps a state code to the representative city used for
// location multipliers. Unknown states fall through to using the state
// code itself as the city key.
var stateCities = map[string]string{
	"NSW": "Sydney",
	"VIC": "Melbourne",
	"QLD": "Brisbane",
	"WA":  "Perth",
	"SA":  "Adelaide",
	"ACT": "Canberra",
	"NT":  "Darwin",
	"TAS": "Hobart",
}

// innerSuburbMarkers classify a suburb as inner-city when its name contains
// any of these substrings. Everything else is treated as outer; the remote
// tier exists in the multiplier data but is never selected here.
var innerSuburbMarkers = []string{
	"CBD", "City", "Inner", "Central", "Surry Hills", "Paddington", "Bondi",
}

// ResolveLocation deterministically resolves the location multiplier for a
// suburb/state pair. It never fails: unknown cities degrade to default
// multipliers.
func (pc *PricingContext) ResolveLocation(suburb, state string) LocationContext {
	city := state
	if mapped, ok := stateCities[state]; ok {
		city = mapped
	}

	cityData, ok := pc.LocationMultipliers[city]
	if !ok {
		cityData = LocationMultipliers{Inner: 1.0, Outer: 0.9, Remote: 0.8}
	}

	for _, marker := range innerSuburbMarkers {
		if strings.Contains(suburb, marker) {
			return LocationContext{City: city, Multiplier: cityData.Inner, AreaType: "inner"}
		}
	}

	return LocationContext{City: city, Multiplier: cityData.Outer, AreaType: "outer"}
}
