package models

// EstimateRequest represents the request payload for a price estimate
type EstimateRequest struct {
	Description       string  `json:"description" validate:"required,min=10"`
	TradeCategory     string  `json:"trade_category" validate:"required"`
	Suburb            string  `json:"suburb,omitempty"`
	State             string  `json:"state,omitempty" validate:"omitempty,oneof=NSW VIC QLD WA SA ACT NT TAS"`
	Urgency           string  `json:"urgency,omitempty" validate:"omitempty,oneof=urgent soon flexible"`
	MaterialsIncluded bool    `json:"materials_included,omitempty"`
	EstimatedHours    float64 `json:"estimated_hours,omitempty" validate:"omitempty,gt=0"`
	SessionID         string  `json:"session_id,omitempty"` // used to fill suburb/state from the stored context
}

// JobRequestFrom converts the API payload into the engine's input record
func (r *EstimateRequest) JobRequest() JobRequest {
	return JobRequest{
		Description:       r.Description,
		TradeCategory:     r.TradeCategory,
		Suburb:            r.Suburb,
		State:             r.State,
		Urgency:           r.Urgency,
		MaterialsIncluded: r.MaterialsIncluded,
		EstimatedHours:    r.EstimatedHours,
	}
}

// UpdateContextRequest represents the payload for updating a session's role/location context
type UpdateContextRequest struct {
	Role     string           `json:"role,omitempty" validate:"omitempty,oneof=homeowner tradie"`
	Location *LocationContext `json:"location,omitempty"`
}

// LocationContext is the per-session location stored for a user
type LocationContext struct {
	Suburb   string `json:"suburb" validate:"required"`
	State    string `json:"state" validate:"required,oneof=NSW VIC QLD WA SA ACT NT TAS"`
	Postcode string `json:"postcode,omitempty" validate:"omitempty,len=4,numeric"`
}
