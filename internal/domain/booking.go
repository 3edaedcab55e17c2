package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusNoShow     BookingStatus = "no_show"
)

// PaymentStatusPending статус оплаты новой записи; оплата проводится вне сервиса
const PaymentStatusPending = "pending"

// ParseBookingStatus проверяет, что строка - известный статус
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch status := BookingStatus(s); status {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusNoShow:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// BookingRecord запись о бронировании в хранилище
// Ключ записи - (Date, SortKey). Поля-указатели необязательны: старые или
// частично поврежденные записи могут их не содержать
type BookingRecord struct {
	Date    string // YYYY-MM-DD, ключ партиции
	SortKey string // HHMM#serviceType#bookingID

	BookingID        string
	StartTime        *string // компактный токен HHMM
	StartTimeDisplay *string // метка для отображения, например "9:00 AM"
	ServiceType      string  // ключ услуги из каталога
	PackageName      string  // название услуги на момент бронирования
	ServiceDuration  *string // длительность в часах как она сохранена; по умолчанию 2

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	VehicleMake  *string
	VehicleModel *string
	VehicleYear  *string
	VehicleClass *string
	Condition    *string

	AddressStreet string
	AddressCity   *string
	AddressZip    *string

	Addons []string

	PaymentMethod *string
	PaymentStatus *string
	TotalPrice    *float64

	Notes  *string
	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationHours длительность услуги в часах
// ok = false, если поле отсутствует или не является конечным числом; тогда возвращается DefaultDurationHours
func (r *BookingRecord) DurationHours() (hours float64, ok bool) {
	if r.ServiceDuration == nil {
		return DefaultDurationHours, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*r.ServiceDuration), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultDurationHours, false
	}
	return v, true
}

// BookingCreatedEvent уведомление о новом бронировании для внешних получателей
type BookingCreatedEvent struct {
	BookingID     string    `json:"bookingId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	ServiceType   string    `json:"serviceType"`
	PackageName   string    `json:"packageName"`
	DurationHours float64   `json:"durationHours"`
	TotalPrice    float64   `json:"totalPrice"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	AddressStreet string    `json:"addressStreet"`
	CreatedAt     time.Time `json:"createdAt"`
}
