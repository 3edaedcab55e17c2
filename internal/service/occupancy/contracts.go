package occupancy

import (
	"context"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// RecordReader чтение записей партиции даты из хранилища
type RecordReader interface {
	GetByDate(ctx context.Context, date string) ([]*domain.BookingRecord, error)
}

// Metrics счетчики диагностики занятости
type Metrics interface {
	RecordMalformedRecord(reason string)
	RecordDegradedRead()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
