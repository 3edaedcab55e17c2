package create_booking

import (
	"fmt"
	"math"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса до обращения к хранилищу
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StartTime) == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Время начала должно точно совпадать с меткой из сетки
	if _, ok := domain.SlotIndex(req.StartTime); !ok {
		return fmt.Errorf("%w: %q is not a bookable start time", ErrInvalidTimeSlot, req.StartTime)
	}

	if strings.TrimSpace(req.ServiceKey) == "" {
		return fmt.Errorf("%w: serviceKey is required", ErrInvalidInput)
	}

	if req.DurationHours != nil {
		if d := *req.DurationHours; math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
			return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
		}
	}

	if err := validateCustomer(req.Customer); err != nil {
		return err
	}

	if strings.TrimSpace(req.Address.Street) == "" {
		return fmt.Errorf("%w: address street is required", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateCustomer проверяет обязательные контактные поля
func validateCustomer(c Customer) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: invalid customer email: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	return nil
}
