package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Date          time.Time // Дата бронирования (без времени)
	StartTime     string    // Метка слота, например "9:00 AM"
	ServiceKey    string    // Ключ услуги из каталога
	VehicleKey    string    // Класс автомобиля
	ConditionKey  string    // Состояние автомобиля
	AddonKeys     []string  // Дополнительные опции, повторы не схлопываются
	DurationHours *float64  // Длительность в часах; nil - длительность из расчета

	Customer Customer
	Vehicle  Vehicle
	Address  Address

	PaymentMethod *string
	Notes         *string
}

// Customer контактные данные клиента
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Vehicle данные автомобиля (необязательные)
type Vehicle struct {
	Make  *string
	Model *string
	Year  *string
}

// Address адрес выезда
type Address struct {
	Street string
	City   *string
	Zip    *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID     string
	Date          string
	StartTime     string
	SortKey       string
	ServiceType   string
	PackageName   string
	DurationHours float64
	TotalPrice    float64
	Status        string
	CreatedAt     time.Time
}
