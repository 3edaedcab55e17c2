package get_availability

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-DetailingBooking/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string   `json:"date"`
	OccupiedSlots   []string `json:"occupiedSlots"`
	AvailableStarts []string `json:"availableStarts"`
	Degraded        bool     `json:"degraded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	occupied := resp.OccupiedSlots
	if occupied == nil {
		occupied = []string{}
	}
	starts := resp.AvailableStarts
	if starts == nil {
		starts = []string{}
	}

	return &AvailabilityResponse{
		Date:            resp.Date,
		OccupiedSlots:   occupied,
		AvailableStarts: starts,
		Degraded:        resp.Degraded,
	}
}

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidDuration = errors.New("invalid duration")
)

// parseDuration разбирает длительность в часах; знак не проверяется
func parseDuration(s string) (float64, error) {
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, fmt.Errorf("duration %q is not a finite number", s)
	}
	return hours, nil
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, durationStr string) (*getAvailability.Request, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	hours, err := parseDuration(durationStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDuration, err)
	}

	return &getAvailability.Request{
		Date:          date,
		DurationHours: hours,
	}, nil
}
