package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/quote"
)

// Options параметры use case
type Options struct {
	// StrictSlotCheck перепроверяет занятость и границу закрытия в одной сериализуемой транзакции с записью.
	// По умолчанию выключено: запись не сверяется с занятостью, одновременные заявки на один слот возможны
	StrictSlotCheck bool
}

// UseCase use case для создания бронирования
type UseCase struct {
	store        RecordStore
	resolver     OccupancyResolver
	quotes       QuoteCalculator
	notifier     Notifier
	txManager    TransactionManager
	metrics      Metrics
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
	opts         Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store RecordStore,
	resolver OccupancyResolver,
	quotes QuoteCalculator,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
	opts Options,
) *UseCase {
	return &UseCase{
		store:        store,
		resolver:     resolver,
		quotes:       quotes,
		notifier:     notifier,
		txManager:    txManager,
		metrics:      metrics,
		idGenerator:  &UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		opts:         opts,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("CreateBooking: date=%s, time=%s, service=%s", date, req.StartTime, req.ServiceKey)

	// 2. Цена и длительность по каталогу
	q, err := uc.quotes.CalculateQuote(req.ServiceKey, req.VehicleKey, req.ConditionKey, req.AddonKeys)
	if err != nil {
		if errors.Is(err, quote.ErrInvalidCatalogKey) {
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnknownCatalogKey, err)
		}
		uc.logger.Error("CreateBooking: failed to calculate quote: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate quote: %v", ErrInternal, err)
	}

	service, _ := domain.LookupService(req.ServiceKey)

	duration := q.TotalDurationHours.InexactFloat64()
	if req.DurationHours != nil {
		duration = *req.DurationHours
	}

	// 3. Id и ключ записи
	bookingID := uc.idGenerator.NewID()
	sortKey, err := domain.NewSortKey(req.StartTime, req.ServiceKey, bookingID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to build sort key: %v", err)
		return nil, fmt.Errorf("%w: failed to build sort key: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now().In(domain.BusinessLocation())
	rec := buildRecord(req, date, sortKey, service, duration, q, now)

	// 4. Запись
	if uc.opts.StrictSlotCheck {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			if err := uc.checkSlots(txCtx, date, req.StartTime, duration); err != nil {
				return err
			}
			return uc.write(txCtx, rec)
		})
		if err != nil && !isWriterError(err) {
			uc.logger.Error("CreateBooking: serializable transaction failed for date=%s: %v", date, err)
			err = fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	} else {
		if fits, _ := domain.FitsBeforeClosing(req.StartTime, duration); !fits {
			uc.logger.Warn("CreateBooking: booking at %s %s for %.2f hours runs past closing", date, req.StartTime, duration)
		}
		err = uc.write(ctx, rec)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, sort_key=%s", bookingID, rec.SortKey)
	uc.metrics.RecordBookingCreated(req.ServiceKey)

	// 5. Уведомление не влияет на результат
	uc.notify(ctx, rec, duration)

	return &Response{
		BookingID:     bookingID,
		Date:          date,
		StartTime:     req.StartTime,
		SortKey:       rec.SortKey,
		ServiceType:   rec.ServiceType,
		PackageName:   rec.PackageName,
		DurationHours: duration,
		TotalPrice:    q.TotalPrice.InexactFloat64(),
		Status:        string(rec.Status),
		CreatedAt:     rec.CreatedAt,
	}, nil
}

// checkSlots перечитывает занятость даты внутри транзакции и проверяет, что слоты свободны
func (uc *UseCase) checkSlots(ctx context.Context, date, start string, duration float64) error {
	occ, err := uc.resolver.ResolveStrict(ctx, date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read occupancy for date=%s: %v", date, err)
		return fmt.Errorf("%w: failed to read occupancy: %v", ErrStoreUnavailable, err)
	}

	fits, err := domain.FitsBeforeClosing(start, duration)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if !fits {
		uc.logger.Warn("CreateBooking: %s %s for %.2f hours runs past closing", date, start, duration)
		return ErrExceedsClosing
	}

	idx, _ := domain.SlotIndex(start)
	if run := domain.SlotRun(idx, duration); occ.IntersectsAny(run) {
		uc.logger.Warn("CreateBooking: slots %v on %s are already taken", run, date)
		return ErrSlotNotAvailable
	}

	return nil
}

// isWriterError ошибки, уже классифицированные use case; остальные (begin, commit,
// serialization failure) считаются отказом хранилища
func isWriterError(err error) bool {
	for _, target := range []error{ErrSlotNotAvailable, ErrExceedsClosing, ErrStoreUnavailable, ErrInvalidTimeSlot, ErrInternal} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (uc *UseCase) write(ctx context.Context, rec *domain.BookingRecord) error {
	if err := uc.store.Upsert(ctx, rec); err != nil {
		uc.logger.Error("CreateBooking: failed to write record date=%s, sort_key=%s: %v", rec.Date, rec.SortKey, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (uc *UseCase) notify(ctx context.Context, rec *domain.BookingRecord, duration float64) {
	event := domain.BookingCreatedEvent{
		BookingID:     rec.BookingID,
		Date:          rec.Date,
		StartTime:     *rec.StartTimeDisplay,
		ServiceType:   rec.ServiceType,
		PackageName:   rec.PackageName,
		DurationHours: duration,
		CustomerName:  rec.CustomerName,
		CustomerEmail: rec.CustomerEmail,
		CustomerPhone: rec.CustomerPhone,
		AddressStreet: rec.AddressStreet,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.TotalPrice != nil {
		event.TotalPrice = *rec.TotalPrice
	}

	if err := uc.notifier.NotifyBookingCreated(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to notify about booking id=%s: %v", rec.BookingID, err)
		uc.metrics.RecordNotificationFailure()
	}
}

// buildRecord собирает запись хранилища; статус confirmed, created_at = updated_at
func buildRecord(
	req *Request,
	date string,
	sortKey domain.SortKey,
	service domain.Service,
	duration float64,
	q *quote.Quote,
	now time.Time,
) *domain.BookingRecord {
	token := sortKey.TimeToken
	display := req.StartTime
	durationStr := strconv.FormatFloat(duration, 'f', -1, 64)
	price := q.TotalPrice.InexactFloat64()
	paymentStatus := domain.PaymentStatusPending

	addons := make([]string, len(req.AddonKeys))
	copy(addons, req.AddonKeys)

	return &domain.BookingRecord{
		Date:             date,
		SortKey:          sortKey.String(),
		BookingID:        sortKey.BookingID,
		StartTime:        &token,
		StartTimeDisplay: &display,
		ServiceType:      req.ServiceKey,
		PackageName:      service.Name,
		ServiceDuration:  &durationStr,
		CustomerName:     strings.TrimSpace(req.Customer.Name),
		CustomerEmail:    strings.TrimSpace(req.Customer.Email),
		CustomerPhone:    strings.TrimSpace(req.Customer.Phone),
		VehicleMake:      req.Vehicle.Make,
		VehicleModel:     req.Vehicle.Model,
		VehicleYear:      req.Vehicle.Year,
		VehicleClass:     optional(req.VehicleKey),
		Condition:        optional(req.ConditionKey),
		AddressStreet:    strings.TrimSpace(req.Address.Street),
		AddressCity:      req.Address.City,
		AddressZip:       req.Address.Zip,
		Addons:           addons,
		PaymentMethod:    req.PaymentMethod,
		PaymentStatus:    &paymentStatus,
		TotalPrice:       &price,
		Notes:            req.Notes,
		Status:           domain.StatusConfirmed,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
