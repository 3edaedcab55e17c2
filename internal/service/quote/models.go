package quote

import "github.com/shopspring/decimal"

// Quote расчет цены и длительности; не хранится
type Quote struct {
	ServiceKey         string
	VehicleKey         string
	ConditionKey       string
	AddonKeys          []string
	TotalPrice         decimal.Decimal
	TotalDurationHours decimal.Decimal
	Breakdown          Breakdown
}

// Breakdown составляющие итоговой цены
// Base + VehicleDelta + ConditionDelta + AddonTotal = TotalPrice
type Breakdown struct {
	Base           decimal.Decimal
	VehicleDelta   decimal.Decimal
	ConditionDelta decimal.Decimal
	AddonTotal     decimal.Decimal
}
