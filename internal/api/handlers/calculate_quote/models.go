package calculate_quote

import "github.com/m04kA/SMC-DetailingBooking/internal/service/quote"

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ServiceKey   string   `json:"serviceKey" validate:"required"`
	VehicleKey   string   `json:"vehicleKey" validate:"required"`
	ConditionKey string   `json:"conditionKey" validate:"required"`
	AddonKeys    []string `json:"addonKeys" validate:"omitempty,dive,required"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ServiceKey         string    `json:"serviceKey"`
	VehicleKey         string    `json:"vehicleKey"`
	ConditionKey       string    `json:"conditionKey"`
	AddonKeys          []string  `json:"addonKeys"`
	TotalPrice         float64   `json:"totalPrice"`
	TotalDurationHours float64   `json:"totalDurationHours"`
	Breakdown          Breakdown `json:"breakdown"`
}

type Breakdown struct {
	Base           float64 `json:"base"`
	VehicleDelta   float64 `json:"vehicleDelta"`
	ConditionDelta float64 `json:"conditionDelta"`
	AddonTotal     float64 `json:"addonTotal"`
}

// FromQuote конвертирует расчет в HTTP response
func FromQuote(q *quote.Quote) *QuoteResponse {
	addons := q.AddonKeys
	if addons == nil {
		addons = []string{}
	}

	return &QuoteResponse{
		ServiceKey:         q.ServiceKey,
		VehicleKey:         q.VehicleKey,
		ConditionKey:       q.ConditionKey,
		AddonKeys:          addons,
		TotalPrice:         q.TotalPrice.InexactFloat64(),
		TotalDurationHours: q.TotalDurationHours.InexactFloat64(),
		Breakdown: Breakdown{
			Base:           q.Breakdown.Base.InexactFloat64(),
			VehicleDelta:   q.Breakdown.VehicleDelta.InexactFloat64(),
			ConditionDelta: q.Breakdown.ConditionDelta.InexactFloat64(),
			AddonTotal:     q.Breakdown.AddonTotal.InexactFloat64(),
		},
	}
}
