package models

import (
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	BookingID     string  `json:"bookingId"`
	Date          string  `json:"date"`      // "2025-03-14"
	StartTime     string  `json:"startTime"` // "9:00 AM", пусто если запись не читается
	SortKey       string  `json:"sortKey"`
	ServiceType   string  `json:"serviceType"`
	PackageName   string  `json:"packageName"`
	DurationHours float64 `json:"durationHours"`
	Status        string  `json:"status"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	VehicleMake  *string `json:"vehicleMake,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	VehicleYear  *string `json:"vehicleYear,omitempty"`
	VehicleClass *string `json:"vehicleClass,omitempty"`
	Condition    *string `json:"condition,omitempty"`

	AddressStreet string  `json:"addressStreet"`
	AddressCity   *string `json:"addressCity,omitempty"`
	AddressZip    *string `json:"addressZip,omitempty"`

	Addons        []string `json:"addons"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	PaymentStatus *string  `json:"paymentStatus,omitempty"`
	TotalPrice    *float64 `json:"totalPrice,omitempty"`
	Notes         *string  `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует запись хранилища в DTO
func FromDomainBooking(r *domain.BookingRecord) *BookingResponse {
	if r == nil {
		return nil
	}

	duration, _ := r.DurationHours()

	addons := r.Addons
	if addons == nil {
		addons = []string{}
	}

	return &BookingResponse{
		BookingID:     r.BookingID,
		Date:          r.Date,
		StartTime:     startTime(r),
		SortKey:       r.SortKey,
		ServiceType:   r.ServiceType,
		PackageName:   r.PackageName,
		DurationHours: duration,
		Status:        string(r.Status),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		VehicleMake:   r.VehicleMake,
		VehicleModel:  r.VehicleModel,
		VehicleYear:   r.VehicleYear,
		VehicleClass:  r.VehicleClass,
		Condition:     r.Condition,
		AddressStreet: r.AddressStreet,
		AddressCity:   r.AddressCity,
		AddressZip:    r.AddressZip,
		Addons:        addons,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: r.PaymentStatus,
		TotalPrice:    r.TotalPrice,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список записей в DTO
func FromDomainBookingList(date string, records []*domain.BookingRecord) *BookingListResponse {
	resp := &BookingListResponse{
		Date:     date,
		Bookings: make([]BookingResponse, 0, len(records)),
	}

	for _, rec := range records {
		if b := FromDomainBooking(rec); b != nil {
			resp.Bookings = append(resp.Bookings, *b)
		}
	}

	return resp
}

// startTime метка начала: сохраненная метка отображения либо восстановленная из sort key
func startTime(r *domain.BookingRecord) string {
	if r.StartTimeDisplay != nil && *r.StartTimeDisplay != "" {
		return *r.StartTimeDisplay
	}
	key, err := domain.ParseSortKey(r.SortKey)
	if err != nil {
		return ""
	}
	label, err := key.DisplayTime()
	if err != nil {
		return ""
	}
	return label
}
