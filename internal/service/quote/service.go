package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Service расчет стоимости и длительности по статическим каталогам
// Чистые функции без I/O, безопасен для конкурентного использования
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// CalculateQuote считает цену и длительность услуги
//
// Цена округляется до целых после каждого множителя по очереди:
//
//	vehicleAdjusted   = round(base * vehicle)
//	conditionAdjusted = round(vehicleAdjusted * condition)
//	total             = conditionAdjusted + Σ addon.price
//
// Длительность = round1(baseDuration * vehicle + Σ addon.duration).
// Повторяющиеся ключи опций не схлопываются: каждая считается отдельно
func (s *Service) CalculateQuote(serviceKey, vehicleKey, conditionKey string, addonKeys []string) (*Quote, error) {
	service, ok := domain.LookupService(serviceKey)
	if !ok {
		return nil, fmt.Errorf("%w: service %q", ErrInvalidCatalogKey, serviceKey)
	}
	vehicle, ok := domain.LookupVehicleClass(vehicleKey)
	if !ok {
		return nil, fmt.Errorf("%w: vehicle class %q", ErrInvalidCatalogKey, vehicleKey)
	}
	condition, ok := domain.LookupCondition(conditionKey)
	if !ok {
		return nil, fmt.Errorf("%w: condition %q", ErrInvalidCatalogKey, conditionKey)
	}

	addonPrice := decimal.Zero
	addonDuration := decimal.Zero
	for _, key := range addonKeys {
		addon, ok := domain.LookupAddon(key)
		if !ok {
			return nil, fmt.Errorf("%w: addon %q", ErrInvalidCatalogKey, key)
		}
		addonPrice = addonPrice.Add(addon.Price)
		addonDuration = addonDuration.Add(addon.DurationHours)
	}

	base := service.BasePrice
	vehicleAdjusted := base.Mul(vehicle.Multiplier).Round(0)
	conditionAdjusted := vehicleAdjusted.Mul(condition.Multiplier).Round(0)

	duration := service.BaseDurationHours.
		Mul(vehicle.Multiplier).
		Add(addonDuration).
		Round(1)

	keys := make([]string, len(addonKeys))
	copy(keys, addonKeys)

	return &Quote{
		ServiceKey:         serviceKey,
		VehicleKey:         vehicleKey,
		ConditionKey:       conditionKey,
		AddonKeys:          keys,
		TotalPrice:         conditionAdjusted.Add(addonPrice),
		TotalDurationHours: duration,
		Breakdown: Breakdown{
			Base:           base,
			VehicleDelta:   vehicleAdjusted.Sub(base),
			ConditionDelta: conditionAdjusted.Sub(vehicleAdjusted),
			AddonTotal:     addonPrice,
		},
	}, nil
}

// Catalog возвращает все четыре каталога для отображения клиенту
func (s *Service) Catalog() *Catalog {
	return &Catalog{
		Services:       domain.Services(),
		VehicleClasses: domain.VehicleClasses(),
		Conditions:     domain.Conditions(),
		Addons:         domain.Addons(),
	}
}

// Catalog содержимое статических каталогов
type Catalog struct {
	Services       []domain.Service
	VehicleClasses []domain.VehicleClass
	Conditions     []domain.Condition
	Addons         []domain.Addon
}
