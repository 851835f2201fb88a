package catalog

import "strings"

// TradeCategory is a browsable trade with its configured rate band
type TradeCategory struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	RateMin  float64 `json:"rate_min"`
	RateMax  float64 `json:"rate_max"`
	RateUnit string  `json:"rate_unit"`
}

// Suburb is a selectable locality in the browsing flow
type Suburb struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// Position is a map coordinate for the bubble view
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Tradie is a vetted professional listed in the browsing flow
type Tradie struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Trade         string   `json:"trade"`
	SuburbID      string   `json:"suburb_id"`
	TrustScore    float64  `json:"trust_score"`
	StartingPrice string   `json:"starting_price"`
	Position      Position `json:"position"`
}

// Catalog serves the marketplace's read-only reference data: the trades,
// suburbs and vetted professionals the browsing pages render. Records are
// fixed at startup; there is no persistence behind them.
type Catalog struct {
	trades  []TradeCategory
	suburbs []Suburb
	tradies []Tradie
}

// New builds the catalog with the built-in records
func New() *Catalog {
	return &Catalog{
		trades: []TradeCategory{
			{ID: "plumber", Name: "Plumber", RateMin: 90, RateMax: 200, RateUnit: "hour"},
			{ID: "electrician", Name: "Electrician", RateMin: 110, RateMax: 250, RateUnit: "hour"},
			{ID: "painter", Name: "Painter", RateMin: 60, RateMax: 120, RateUnit: "hour"},
			{ID: "roofer", Name: "Roofer", RateMin: 150, RateMax: 400, RateUnit: "hour"},
			{ID: "ac-specialist", Name: "AC Specialist", RateMin: 120, RateMax: 300, RateUnit: "hour"},
			{ID: "handyman", Name: "Handyman", RateMin: 50, RateMax: 100, RateUnit: "hour"},
			{ID: "gardener", Name: "Gardener", RateMin: 45, RateMax: 90, RateUnit: "hour"},
			{ID: "cleaner", Name: "Cleaner", RateMin: 35, RateMax: 80, RateUnit: "hour"},
		},
		suburbs: []Suburb{
			{ID: "bondi-beach-2026", Name: "Bondi Beach", State: "NSW", Postcode: "2026"},
			{ID: "paddington-2021", Name: "Paddington", State: "NSW", Postcode: "2021"},
			{ID: "surry-hills-2010", Name: "Surry Hills", State: "NSW", Postcode: "2010"},
			{ID: "woollahra-2025", Name: "Woollahra", State: "NSW", Postcode: "2025"},
			{ID: "double-bay-2028", Name: "Double Bay", State: "NSW", Postcode: "2028"},
			{ID: "manly-2095", Name: "Manly", State: "NSW", Postcode: "2095"},
			{ID: "newtown-2042", Name: "Newtown", State: "NSW", Postcode: "2042"},
			{ID: "redfern-2016", Name: "Redfern", State: "NSW", Postcode: "2016"},
		},
		tradies: []Tradie{
			{ID: 1, Name: "Mike's Plumbing", Trade: "plumber", SuburbID: "bondi-beach-2026",
				TrustScore: 4.8, StartingPrice: "$80/hr", Position: Position{Lat: -33.8915, Lng: 151.2767}},
			{ID: 2, Name: "Spark Solutions", Trade: "electrician", SuburbID: "bondi-beach-2026",
				TrustScore: 4.6, StartingPrice: "$100/hr", Position: Position{Lat: -33.8905, Lng: 151.2777}},
			{ID: 3, Name: "Coastal Painters", Trade: "painter", SuburbID: "bondi-beach-2026",
				TrustScore: 4.9, StartingPrice: "$60/hr", Position: Position{Lat: -33.8925, Lng: 151.2757}},
			{ID: 4, Name: "Heritage Roofing", Trade: "roofer", SuburbID: "paddington-2021",
				TrustScore: 4.7, StartingPrice: "$150/hr", Position: Position{Lat: -33.8866, Lng: 151.2314}},
			{ID: 5, Name: "Cool Comfort AC", Trade: "ac-specialist", SuburbID: "paddington-2021",
				TrustScore: 4.5, StartingPrice: "$120/hr", Position: Position{Lat: -33.8876, Lng: 151.2324}},
		},
	}
}

// Trades returns all browsable trade categories
func (c *Catalog) Trades() []TradeCategory {
	return c.trades
}

// Suburbs returns all selectable suburbs
func (c *Catalog) Suburbs() []Suburb {
	return c.suburbs
}

// Tradies returns the vetted professionals, optionally filtered by trade
// and/or suburb ID. Empty filters match everything.
func (c *Catalog) Tradies(trade, suburbID string) []Tradie {
	trade = strings.ToLower(strings.TrimSpace(trade))
	suburbID = strings.ToLower(strings.TrimSpace(suburbID))

	result := make([]Tradie, 0, len(c.tradies))
	for _, t := range c.tradies {
		if trade != "" && t.Trade != trade {
			continue
		}
		if suburbID != "" && t.SuburbID != suburbID {
			continue
		}
		result = append(result, t)
	}
	return result
}
