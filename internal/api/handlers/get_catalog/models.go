package get_catalog

import (
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/quote"
)

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Timezone       string         `json:"timezone"`
	Slots          []string       `json:"slots"`
	Services       []Service      `json:"services"`
	VehicleClasses []VehicleClass `json:"vehicleClasses"`
	Conditions     []Condition    `json:"conditions"`
	Addons         []Addon        `json:"addons"`
}

type Service struct {
	Key               string  `json:"key"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	BasePrice         float64 `json:"basePrice"`
	BaseDurationHours float64 `json:"baseDurationHours"`
}

type VehicleClass struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type Condition struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
}

type Addon struct {
	Key           string  `json:"key"`
	Label         string  `json:"label"`
	Price         float64 `json:"price"`
	DurationHours float64 `json:"durationHours"`
}

// FromCatalog конвертирует каталоги в HTTP response
func FromCatalog(c *quote.Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Timezone:       domain.BusinessTimezone,
		Slots:          domain.Slots(),
		Services:       make([]Service, 0, len(c.Services)),
		VehicleClasses: make([]VehicleClass, 0, len(c.VehicleClasses)),
		Conditions:     make([]Condition, 0, len(c.Conditions)),
		Addons:         make([]Addon, 0, len(c.Addons)),
	}

	for _, s := range c.Services {
		resp.Services = append(resp.Services, Service{
			Key:               s.Key,
			Name:              s.Name,
			Description:       s.Description,
			BasePrice:         s.BasePrice.InexactFloat64(),
			BaseDurationHours: s.BaseDurationHours.InexactFloat64(),
		})
	}
	for _, v := range c.VehicleClasses {
		resp.VehicleClasses = append(resp.VehicleClasses, VehicleClass{
			Key:        v.Key,
			Name:       v.Name,
			Multiplier: v.Multiplier.InexactFloat64(),
		})
	}
	for _, cond := range c.Conditions {
		resp.Conditions = append(resp.Conditions, Condition{
			Key:         cond.Key,
			Name:        cond.Name,
			Description: cond.Description,
			Multiplier:  cond.Multiplier.InexactFloat64(),
		})
	}
	for _, a := range c.Addons {
		resp.Addons = append(resp.Addons, Addon{
			Key:           a.Key,
			Label:         a.Label,
			Price:         a.Price.InexactFloat64(),
			DurationHours: a.DurationHours.InexactFloat64(),
		})
	}

	return resp
}
