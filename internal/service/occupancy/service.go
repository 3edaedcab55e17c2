package occupancy

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Resolver вычисляет занятые слоты даты по сохраненным записям
// Кэша нет: каждый вызов перечитывает хранилище
type Resolver struct {
	reader  RecordReader
	metrics Metrics
	logger  Logger
}

// NewResolver создает новый экземпляр резолвера занятости
func NewResolver(reader RecordReader, metrics Metrics, logger Logger) *Resolver {
	return &Resolver{
		reader:  reader,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve занятость даты; при ошибке чтения возвращает пустое множество с Degraded = true
func (r *Resolver) Resolve(ctx context.Context, date string) *Occupancy {
	occ, err := r.ResolveStrict(ctx, date)
	if err != nil {
		r.logger.Error("Resolve: date=%s, serving empty occupancy: %v", date, err)
		r.metrics.RecordDegradedRead()

		occ = New(date)
		occ.Degraded = true
	}
	return occ
}

// ResolveStrict занятость даты; ошибка чтения возвращается вызывающему
func (r *Resolver) ResolveStrict(ctx context.Context, date string) (*Occupancy, error) {
	records, err := r.reader.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date=%s: %v", ErrStoreUnavailable, date, err)
	}

	occ := New(date)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		occ.add(r.recordSlots(rec)...)
	}

	return occ, nil
}

// recordSlots слоты, занятые одной записью
func (r *Resolver) recordSlots(rec *domain.BookingRecord) []string {
	start := r.startLabel(rec)
	idx, _ := domain.SlotIndex(start)

	hours, ok := rec.DurationHours()
	if !ok {
		r.logger.Warn("Resolve: record sort_key=%q has no numeric duration, assuming %.0f hours",
			rec.SortKey, domain.DefaultDurationHours)
		r.metrics.RecordMalformedRecord(reasonDuration)
	}

	return domain.SlotRun(idx, hours)
}

// startLabel слот начала записи: метка отображения, затем токен из sort key, затем первый слот дня
func (r *Resolver) startLabel(rec *domain.BookingRecord) string {
	if rec.StartTimeDisplay != nil {
		if _, ok := domain.SlotIndex(*rec.StartTimeDisplay); ok {
			return *rec.StartTimeDisplay
		}
	}

	if key, err := domain.ParseSortKey(rec.SortKey); err == nil {
		if label, err := key.DisplayTime(); err == nil {
			if _, ok := domain.SlotIndex(label); ok {
				return label
			}
		}
	}

	r.logger.Warn("Resolve: record sort_key=%q has no usable start time, assuming %s",
		rec.SortKey, domain.FirstSlot())
	r.metrics.RecordMalformedRecord(reasonStartTime)
	return domain.FirstSlot()
}
