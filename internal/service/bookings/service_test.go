package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	args := m.Called(ctx, bookingID)
	rec, _ := args.Get(0).(*domain.BookingRecord)
	return rec, args.Error(1)
}

func (m *mockRepo) GetByDate(ctx context.Context, date string) ([]*domain.BookingRecord, error) {
	args := m.Called(ctx, date)
	records, _ := args.Get(0).([]*domain.BookingRecord)
	return records, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, updatedAt time.Time) error {
	return m.Called(ctx, bookingID, status, updatedAt).Error(0)
}

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

func strPtr(s string) *string { return &s }

func TestService_GetByID(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, "b-1").Return(&domain.BookingRecord{
		Date:            "2025-03-14",
		SortKey:         "1300#interior#b-1",
		BookingID:       "b-1",
		ServiceType:     "interior",
		ServiceDuration: strPtr("2.5"),
		Status:          domain.StatusConfirmed,
	}, nil)

	resp, err := NewService(repo, logger.NewDiscard()).GetByID(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, "1:00 PM", resp.StartTime)
	assert.Equal(t, 2.5, resp.DurationHours)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, []string{}, resp.Addons)
}

func TestService_GetByID_Errors(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, bookingRepo.ErrBookingNotFound)
	repo.On("GetByID", mock.Anything, "broken").Return(nil, errors.New("db down"))
	svc := NewService(repo, logger.NewDiscard())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListByDate(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByDate", mock.Anything, "2025-03-14").Return([]*domain.BookingRecord{
		{Date: "2025-03-14", SortKey: "0900#full#a", BookingID: "a", StartTimeDisplay: strPtr("9:00 AM")},
		{Date: "2025-03-14", SortKey: "1400#express#b", BookingID: "b"},
	}, nil)

	resp, err := NewService(repo, logger.NewDiscard()).
		ListByDate(context.Background(), time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", resp.Date)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "9:00 AM", resp.Bookings[0].StartTime)
	assert.Equal(t, "2:00 PM", resp.Bookings[1].StartTime)
	assert.Equal(t, domain.DefaultDurationHours, resp.Bookings[1].DurationHours)
}

func TestService_ListByDate_Empty(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByDate", mock.Anything, "2025-03-15").Return([]*domain.BookingRecord{}, nil)

	resp, err := NewService(repo, logger.NewDiscard()).
		ListByDate(context.Background(), time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestService_UpdateStatus(t *testing.T) {
	now := time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)

	t.Run("valid status", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("UpdateStatus", mock.Anything, "b-1", domain.StatusCompleted, mock.MatchedBy(func(ts time.Time) bool {
			return ts.Equal(now)
		})).Return(nil)
		svc := NewService(repo, logger.NewDiscard())
		svc.timeProvider = fixedTime(now)

		err := svc.UpdateStatus(context.Background(), "b-1", &models.UpdateStatusRequest{Status: "completed"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, logger.NewDiscard())

		err := svc.UpdateStatus(context.Background(), "b-1", &models.UpdateStatusRequest{Status: "cancelled"})

		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("UpdateStatus", mock.Anything, "missing", domain.StatusNoShow, mock.Anything).
			Return(bookingRepo.ErrBookingNotFound)
		svc := NewService(repo, logger.NewDiscard())

		err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "no_show"})

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
