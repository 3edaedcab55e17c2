package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/occupancy"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/quote"
)

// RecordStore интерфейс хранилища записей о бронированиях
type RecordStore interface {
	Upsert(ctx context.Context, rec *domain.BookingRecord) error
}

// OccupancyResolver интерфейс вычисления занятости без fail-open (для строгой проверки)
type OccupancyResolver interface {
	ResolveStrict(ctx context.Context, date string) (*occupancy.Occupancy, error)
}

// QuoteCalculator интерфейс расчета цены и длительности
type QuoteCalculator interface {
	CalculateQuote(serviceKey, vehicleKey, conditionKey string, addonKeys []string) (*quote.Quote, error)
}

// Notifier интерфейс уведомления о новом бронировании
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, event domain.BookingCreatedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бронирований
type Metrics interface {
	RecordBookingCreated(serviceType string)
	RecordNotificationFailure()
}

// IDGenerator генератор id бронирований
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генератор id на основе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
