package get_availability

import (
	"context"

	"github.com/m04kA/SMC-DetailingBooking/internal/service/occupancy"
)

// OccupancyResolver интерфейс вычисления занятых слотов даты
type OccupancyResolver interface {
	Resolve(ctx context.Context, date string) *occupancy.Occupancy
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
