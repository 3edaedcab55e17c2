package get_availability

import (
	"context"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// UseCase use case расчета доступных времен начала
type UseCase struct {
	resolver OccupancyResolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver OccupancyResolver, logger Logger) *UseCase {
	return &UseCase{
		resolver: resolver,
		logger:   logger,
	}
}

// Execute выполняет use case получения доступности на дату
// Ошибка чтения хранилища не возвращается: ответ помечается Degraded и вся сетка считается свободной
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailability: date=%s, duration=%.2f", date, req.DurationHours)

	if req.DurationHours <= 0 {
		uc.logger.Warn("GetAvailability: non-positive duration=%.2f for date=%s", req.DurationHours, date)
	}

	occ := uc.resolver.Resolve(ctx, date)
	if occ.Degraded {
		uc.logger.Warn("GetAvailability: occupancy for date=%s is unknown, serving full grid", date)
	}

	starts := availableStarts(occ, req.DurationHours)

	uc.logger.Info("GetAvailability: date=%s, occupied=%d, available=%d", date, occ.Len(), len(starts))

	return &Response{
		Date:            date,
		OccupiedSlots:   occ.Labels(),
		AvailableStarts: starts,
		Degraded:        occ.Degraded,
	}, nil
}
