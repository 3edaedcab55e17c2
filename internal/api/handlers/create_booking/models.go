package create_booking

import (
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DetailingBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string   `json:"date" validate:"required"`      // "2025-03-14"
	StartTime     string   `json:"startTime" validate:"required"` // "9:00 AM"
	ServiceKey    string   `json:"serviceKey" validate:"required"`
	VehicleKey    string   `json:"vehicleKey" validate:"required"`
	ConditionKey  string   `json:"conditionKey" validate:"required"`
	AddonKeys     []string `json:"addonKeys" validate:"omitempty,dive,required"`
	Duration      *float64 `json:"duration,omitempty" validate:"omitempty,gt=0"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	Notes         *string  `json:"notes,omitempty" validate:"omitempty,max=500"`

	Customer CustomerRequest `json:"customer"`
	Vehicle  VehicleRequest  `json:"vehicle"`
	Address  AddressRequest  `json:"address"`
}

type CustomerRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type VehicleRequest struct {
	Make  *string `json:"make,omitempty"`
	Model *string `json:"model,omitempty"`
	Year  *string `json:"year,omitempty"`
}

type AddressRequest struct {
	Street string  `json:"street" validate:"required"`
	City   *string `json:"city,omitempty"`
	Zip    *string `json:"zip,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID     string  `json:"bookingId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	ServiceType   string  `json:"serviceType"`
	PackageName   string  `json:"packageName"`
	DurationHours float64 `json:"durationHours"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:          date,
		StartTime:     r.StartTime,
		ServiceKey:    r.ServiceKey,
		VehicleKey:    r.VehicleKey,
		ConditionKey:  r.ConditionKey,
		AddonKeys:     r.AddonKeys,
		DurationHours: r.Duration,
		Customer: createBooking.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Vehicle: createBooking.Vehicle{
			Make:  r.Vehicle.Make,
			Model: r.Vehicle.Model,
			Year:  r.Vehicle.Year,
		},
		Address: createBooking.Address{
			Street: r.Address.Street,
			City:   r.Address.City,
			Zip:    r.Address.Zip,
		},
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:     resp.BookingID,
		Date:          resp.Date,
		StartTime:     resp.StartTime,
		ServiceType:   resp.ServiceType,
		PackageName:   resp.PackageName,
		DurationHours: resp.DurationHours,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
