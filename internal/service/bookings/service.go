package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
)

// Service сервис чтения бронирований и смены статуса внешними системами
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", bookingID)

	if strings.TrimSpace(bookingID) == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	rec, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", bookingID)
	return models.FromDomainBooking(rec), nil
}

// ListByDate получает все бронирования даты в хронологическом порядке
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := date.Format(domain.DateFormat)
	s.logger.Info("ListByDate: fetching bookings for date=%s", day)

	records, err := s.bookingRepo.GetByDate(ctx, day)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: successfully fetched %d bookings for date=%s", len(records), day)
	return models.FromDomainBookingList(day, records), nil
}

// UpdateStatus обновляет статус бронирования
// Статус меняется внешними системами; отмена не поддерживается
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, bookingID)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	now := s.timeProvider.Now().In(domain.BusinessLocation())
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status, now); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, status)
	return nil
}
