package estimator

// RateBand is the configured hourly rate band for a trade, in AUD
type RateBand struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Unit string  `yaml:"unit"`
}

// Midpoint returns the middle of the rate band
func (b RateBand) Midpoint() float64 {
	return (b.Min + b.Max) / 2
}

// LocationMultipliers holds the inner/outer/remote scalar multipliers for a city
type LocationMultipliers struct {
	Inner  float64 `yaml:"inner"`
	Outer  float64 `yaml:"outer"`
	Remote float64 `yaml:"remote"`
}

// JobArchetype is an illustrative example job used as few-shot context in the prompt
type JobArchetype struct {
	Hours      float64 `yaml:"hours"`
	Complexity string  `yaml:"complexity"`
	Materials  float64 `yaml:"materials"`
}

// PricingContext is the static reference data the engine prices against.
// It is constructed once at startup and never mutated, so concurrent
// estimation calls can share it without locking.
type PricingContext struct {
	BaseRates           map[string]RateBand
	LocationMultipliers map[string]LocationMultipliers
	UrgencyMultipliers  map[string]float64
	ComplexityFactors   map[string]float64
	CommonJobTypes      map[string]map[string]JobArchetype
}

// Urgency levels
const (
	UrgencyUrgent   = "urgent"   // same day / emergency
	UrgencySoon     = "soon"     // within 2-3 days
	UrgencyFlexible = "flexible" // within a week or more
)

// Complexity tiers
const (
	ComplexityBasic    = "basic"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"
	ComplexityExpert   = "expert"
)

// DefaultState is assumed when a job request does not name one
const DefaultState = "NSW"

// DefaultPricingContext returns the built-in pricing reference data for
// Australian trade jobs.
func DefaultPricingContext() *PricingContext {
	return &PricingContext{
		BaseRates: map[string]RateBand{
			"Plumber":       {Min: 90, Max: 200, Unit: "hour"},
			"Electrician":   {Min: 110, Max: 250, Unit: "hour"},
			"Painter":       {Min: 60, Max: 120, Unit: "hour"},
			"Roofer":        {Min: 150, Max: 400, Unit: "hour"},
			"AC Specialist": {Min: 120, Max: 300, Unit: "hour"},
			"Handyman":      {Min: 50, Max: 100, Unit: "hour"},
			"Gardener":      {Min: 45, Max: 90, Unit: "hour"},
			"Cleaner":       {Min: 35, Max: 80, Unit: "hour"},
		},

		LocationMultipliers: map[string]LocationMultipliers{
			"Sydney":    {Inner: 1.3, Outer: 1.1, Remote: 0.9},
			"Melbourne": {Inner: 1.25, Outer: 1.05, Remote: 0.85},
			"Brisbane":  {Inner: 1.2, Outer: 1.0, Remote: 0.8},
			"Perth":     {Inner: 1.15, Outer: 0.95, Remote: 0.75},
			"Adelaide":  {Inner: 1.1, Outer: 0.9, Remote: 0.7},
			"Canberra":  {Inner: 1.35, Outer: 1.15, Remote: 0.9},
			"Darwin":    {Inner: 1.4, Outer: 1.2, Remote: 1.0},
			"Hobart":    {Inner: 1.05, Outer: 0.85, Remote: 0.7},
		},

		UrgencyMultipliers: map[string]float64{
			UrgencyUrgent:   1.5,
			UrgencySoon:     1.2,
			UrgencyFlexible: 1.0,
		},

		ComplexityFactors: map[string]float64{
			ComplexityBasic:    1.0, // simple repairs, basic installation
			ComplexityModerate: 1.4, // standard renovations, complex repairs
			ComplexityComplex:  2.0, // major renovations, specialized work
			ComplexityExpert:   3.0, // highly specialized, certified work only
		},

		CommonJobTypes: map[string]map[string]JobArchetype{
			"Plumber": {
				"Basic tap repair":      {Hours: 1, Complexity: ComplexityBasic, Materials: 50},
				"Toilet installation":   {Hours: 2, Complexity: ComplexityModerate, Materials: 200},
				"Bathroom renovation":   {Hours: 40, Complexity: ComplexityComplex, Materials: 3000},
				"Emergency leak repair": {Hours: 2, Complexity: ComplexityBasic, Materials: 150},
				"Hot water system":      {Hours: 4, Complexity: ComplexityModerate, Materials: 800},
			},
			"Electrician": {
				"Power point installation": {Hours: 1, Complexity: ComplexityBasic, Materials: 80},
				"Light fitting":            {Hours: 1, Complexity: ComplexityBasic, Materials: 120},
				"Safety inspection":        {Hours: 2, Complexity: ComplexityModerate, Materials: 0},
				"Electrical rewiring":      {Hours: 20, Complexity: ComplexityComplex, Materials: 1200},
				"Smart home setup":         {Hours: 6, Complexity: ComplexityExpert, Materials: 800},
			},
			"Painter": {
				"Single room paint":    {Hours: 8, Complexity: ComplexityBasic, Materials: 200},
				"Exterior house paint": {Hours: 30, Complexity: ComplexityModerate, Materials: 800},
				"Feature wall":         {Hours: 4, Complexity: ComplexityBasic, Materials: 150},
				"Commercial painting":  {Hours: 50, Complexity: ComplexityComplex, Materials: 1500},
			},
		},
	}
}

// UrgencyMultiplier resolves the multiplier for an urgency level, treating
// unknown or empty values as flexible.
func (pc *PricingContext) UrgencyMultiplier(urgency string) float64 {
	if m, ok := pc.UrgencyMultipliers[urgency]; ok {
		return m
	}
	return pc.UrgencyMultipliers[UrgencyFlexible]
}

// HasTrade reports whether pricing data exists for the trade category
func (pc *PricingContext) HasTrade(trade string) bool {
	_, ok := pc.BaseRates[trade]
	return ok
}
