package domain

import "github.com/shopspring/decimal"

// Service пакет услуг детейлинга
type Service struct {
	Key               string
	Name              string
	Description       string
	BasePrice         decimal.Decimal
	BaseDurationHours decimal.Decimal
}

// VehicleClass класс автомобиля, множитель цены и длительности
type VehicleClass struct {
	Key        string
	Name       string
	Multiplier decimal.Decimal
}

// Condition степень загрязнения, второй множитель цены
type Condition struct {
	Key         string
	Name        string
	Description string
	Multiplier  decimal.Decimal
}

// Addon дополнительная опция с фиксированной ценой и длительностью
type Addon struct {
	Key           string
	Label         string
	Price         decimal.Decimal
	DurationHours decimal.Decimal
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Каталоги задаются при сборке и не перезагружаются
var (
	services = []Service{
		{Key: "express", Name: "Express Detail", Description: "Exterior hand wash, wheels, tire shine and a quick interior vacuum", BasePrice: d("95"), BaseDurationHours: d("1.5")},
		{Key: "interior", Name: "Interior Revival", Description: "Deep vacuum, steam clean of seats and carpets, dash and trim dressing", BasePrice: d("150"), BaseDurationHours: d("2.5")},
		{Key: "full", Name: "Full Detail", Description: "Complete interior and exterior detail with clay bar and sealant", BasePrice: d("190"), BaseDurationHours: d("3")},
		{Key: "paint_correction", Name: "Paint Correction", Description: "Single-stage machine polish to remove swirls and light scratches", BasePrice: d("420"), BaseDurationHours: d("5")},
	}

	vehicleClasses = []VehicleClass{
		{Key: "sedan", Name: "Sedan / Coupe", Multiplier: d("1.00")},
		{Key: "suv", Name: "SUV / Crossover", Multiplier: d("1.15")},
		{Key: "truck", Name: "Pickup Truck", Multiplier: d("1.25")},
		{Key: "van", Name: "Minivan / Van", Multiplier: d("1.30")},
	}

	conditions = []Condition{
		{Key: "light", Name: "Light", Description: "Regularly maintained, light dust and water spots", Multiplier: d("1.00")},
		{Key: "moderate", Name: "Moderate", Description: "Visible dirt, crumbs, some stains", Multiplier: d("1.20")},
		{Key: "heavy", Name: "Heavy", Description: "Heavy soiling, mud, pet hair throughout", Multiplier: d("1.40")},
	}

	addons = []Addon{
		{Key: "pet_hair", Label: "Pet hair removal", Price: d("40"), DurationHours: d("0.5")},
		{Key: "headlight", Label: "Headlight restoration", Price: d("60"), DurationHours: d("0.75")},
		{Key: "engine_bay", Label: "Engine bay cleaning", Price: d("50"), DurationHours: d("0.5")},
		{Key: "odor", Label: "Odor elimination", Price: d("45"), DurationHours: d("0.25")},
	}
)

// Services каталог услуг в порядке отображения
func Services() []Service {
	return append([]Service(nil), services...)
}

// VehicleClasses каталог классов автомобилей
func VehicleClasses() []VehicleClass {
	return append([]VehicleClass(nil), vehicleClasses...)
}

// Conditions каталог степеней загрязнения
func Conditions() []Condition {
	return append([]Condition(nil), conditions...)
}

// Addons каталог дополнительных опций
func Addons() []Addon {
	return append([]Addon(nil), addons...)
}

func LookupService(key string) (Service, bool) {
	for _, s := range services {
		if s.Key == key {
			return s, true
		}
	}
	return Service{}, false
}

func LookupVehicleClass(key string) (VehicleClass, bool) {
	for _, v := range vehicleClasses {
		if v.Key == key {
			return v, true
		}
	}
	return VehicleClass{}, false
}

func LookupCondition(key string) (Condition, bool) {
	for _, c := range conditions {
		if c.Key == key {
			return c, true
		}
	}
	return Condition{}, false
}

func LookupAddon(key string) (Addon, bool) {
	for _, a := range addons {
		if a.Key == key {
			return a, true
		}
	}
	return Addon{}, false
}
