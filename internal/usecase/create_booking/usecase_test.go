package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/occupancy"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/quote"
	"github.com/m04kA/SMC-DetailingBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
	"github.com/m04kA/SMC-DetailingBooking/pkg/txmanager"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Upsert(ctx context.Context, rec *domain.BookingRecord) error {
	return m.Called(ctx, rec).Error(0)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) ResolveStrict(ctx context.Context, date string) (*occupancy.Occupancy, error) {
	args := m.Called(ctx, date)
	occ, _ := args.Get(0).(*occupancy.Occupancy)
	return occ, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyBookingCreated(ctx context.Context, event domain.BookingCreatedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	created       map[string]int
	notifyFailure int
}

func (f *fakeMetrics) RecordBookingCreated(serviceType string) { f.created[serviceType]++ }
func (f *fakeMetrics) RecordNotificationFailure()              { f.notifyFailure++ }

type fixedID string

func (f fixedID) NewID() string { return string(f) }

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

type fixture struct {
	uc       *UseCase
	store    *mockStore
	resolver *mockResolver
	notifier *mockNotifier
	tx       *fakeTxManager
	metrics  *fakeMetrics
	now      time.Time
}

func newFixture(strict bool) *fixture {
	f := &fixture{
		store:    new(mockStore),
		resolver: new(mockResolver),
		notifier: new(mockNotifier),
		tx:       &fakeTxManager{},
		metrics:  &fakeMetrics{created: make(map[string]int)},
		now:      time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC),
	}
	f.uc = NewUseCase(f.store, f.resolver, quote.NewService(), f.notifier, f.tx, f.metrics,
		logger.NewDiscard(), Options{StrictSlotCheck: strict})
	f.uc.idGenerator = fixedID("b-1")
	f.uc.timeProvider = fixedTime(f.now)
	return f
}

func validRequest() *Request {
	return &Request{
		Date:         time.Date(2025, 3, 14, 0, 0, 0, 0, domain.BusinessLocation()),
		StartTime:    "9:00 AM",
		ServiceKey:   "full",
		VehicleKey:   "suv",
		ConditionKey: "moderate",
		Customer: Customer{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "555-0100",
		},
		Address: Address{Street: "1 Main St"},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(false)
	req := validRequest()
	req.AddonKeys = []string{"pet_hair"}

	var saved *domain.BookingRecord
	f.store.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.BookingRecord")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.BookingRecord) }).
		Return(nil)
	f.notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, "0900#full#b-1", resp.SortKey)
	assert.Equal(t, "2025-03-14", resp.Date)
	assert.Equal(t, "confirmed", resp.Status)
	assert.InDelta(t, 303.0, resp.TotalPrice, 0.001) // 263 + 40
	assert.InDelta(t, 4.0, resp.DurationHours, 0.001)

	require.NotNil(t, saved)
	assert.Equal(t, "2025-03-14", saved.Date)
	assert.Equal(t, domain.StatusConfirmed, saved.Status)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	assert.Equal(t, domain.BusinessTimezone, saved.CreatedAt.Location().String())
	assert.True(t, f.now.Equal(saved.CreatedAt))
	require.NotNil(t, saved.StartTimeDisplay)
	assert.Equal(t, "9:00 AM", *saved.StartTimeDisplay)
	require.NotNil(t, saved.StartTime)
	assert.Equal(t, "0900", *saved.StartTime)
	require.NotNil(t, saved.ServiceDuration)
	assert.Equal(t, "4", *saved.ServiceDuration)
	assert.Equal(t, "Full Detail", saved.PackageName)
	assert.Equal(t, []string{"pet_hair"}, saved.Addons)

	assert.Equal(t, 1, f.metrics.created["full"])
	assert.Zero(t, f.tx.calls)
	f.resolver.AssertNotCalled(t, "ResolveStrict", mock.Anything, mock.Anything)
	f.notifier.AssertCalled(t, "NotifyBookingCreated", mock.Anything, mock.MatchedBy(func(e domain.BookingCreatedEvent) bool {
		return e.BookingID == "b-1" && e.StartTime == "9:00 AM" && e.TotalPrice == 303
	}))
}

func TestUseCase_Execute_RecordReadableByResolver(t *testing.T) {
	f := newFixture(false)
	req := validRequest()
	req.DurationHours = floatPtr(2)

	var saved *domain.BookingRecord
	f.store.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.BookingRecord) }).
		Return(nil)
	f.notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	key, err := domain.ParseSortKey(saved.SortKey)
	require.NoError(t, err)
	label, err := key.DisplayTime()
	require.NoError(t, err)
	assert.Equal(t, req.StartTime, label)

	hours, ok := saved.DurationHours()
	assert.True(t, ok)
	assert.Equal(t, 2.0, hours)
}

func TestUseCase_Execute_NoRecheckByDefault(t *testing.T) {
	f := newFixture(false)
	req := validRequest()
	req.StartTime = "4:00 PM"
	req.DurationHours = floatPtr(3)

	f.store.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	f.store.AssertNumberOfCalls(t, "Upsert", 1)
	f.resolver.AssertNotCalled(t, "ResolveStrict", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_StoreFailure(t *testing.T) {
	f := newFixture(false)
	f.store.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("write timeout"))

	resp, err := f.uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	f.notifier.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything)
	assert.Empty(t, f.metrics.created)
}

func TestUseCase_Execute_NotificationFailureIsIgnored(t *testing.T) {
	f := newFixture(false)
	f.store.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(errors.New("unreachable"))

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, 1, f.metrics.notifyFailure)
}

func TestUseCase_Execute_UnknownCatalogKey(t *testing.T) {
	for _, mutate := range []func(*Request){
		func(r *Request) { r.ServiceKey = "wax" },
		func(r *Request) { r.VehicleKey = "bus" },
		func(r *Request) { r.ConditionKey = "" },
		func(r *Request) { r.AddonKeys = []string{"ceramic"} },
	} {
		f := newFixture(false)
		req := validRequest()
		mutate(req)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrUnknownCatalogKey)
		f.store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"missing date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"missing start", func(r *Request) { r.StartTime = "" }, ErrInvalidInput},
		{"start outside grid", func(r *Request) { r.StartTime = "9:30 AM" }, ErrInvalidTimeSlot},
		{"start after last slot", func(r *Request) { r.StartTime = "6:00 PM" }, ErrInvalidTimeSlot},
		{"missing service", func(r *Request) { r.ServiceKey = " " }, ErrInvalidInput},
		{"zero duration", func(r *Request) { r.DurationHours = floatPtr(0) }, ErrInvalidInput},
		{"negative duration", func(r *Request) { r.DurationHours = floatPtr(-1) }, ErrInvalidInput},
		{"missing name", func(r *Request) { r.Customer.Name = "" }, ErrInvalidInput},
		{"bad email", func(r *Request) { r.Customer.Email = "not-an-email" }, ErrInvalidInput},
		{"missing phone", func(r *Request) { r.Customer.Phone = "" }, ErrInvalidInput},
		{"missing street", func(r *Request) { r.Address.Street = "" }, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(false)
			req := validRequest()
			tc.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tc.want)
			f.store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_Strict(t *testing.T) {
	t.Run("free slots are written inside transaction", func(t *testing.T) {
		f := newFixture(true)
		f.resolver.On("ResolveStrict", mock.Anything, "2025-03-14").
			Return(occupancy.New("2025-03-14", "1:00 PM"), nil)
		f.store.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		f.notifier.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(nil)

		_, err := f.uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, f.tx.calls)
		f.store.AssertNumberOfCalls(t, "Upsert", 1)
	})

	t.Run("overlap is rejected", func(t *testing.T) {
		f := newFixture(true)
		req := validRequest()
		req.DurationHours = floatPtr(2)
		f.resolver.On("ResolveStrict", mock.Anything, "2025-03-14").
			Return(occupancy.New("2025-03-14", "10:00 AM"), nil)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		f.store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("closing boundary is enforced", func(t *testing.T) {
		f := newFixture(true)
		req := validRequest()
		req.StartTime = "4:00 PM"
		req.DurationHours = floatPtr(3)
		f.resolver.On("ResolveStrict", mock.Anything, "2025-03-14").
			Return(occupancy.New("2025-03-14"), nil)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrExceedsClosing)
	})

	t.Run("occupancy read failure", func(t *testing.T) {
		f := newFixture(true)
		f.resolver.On("ResolveStrict", mock.Anything, "2025-03-14").
			Return(nil, occupancy.ErrStoreUnavailable)

		_, err := f.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrStoreUnavailable)
		f.store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestUseCase_Execute_StrictTransactionFailure(t *testing.T) {
	serializationFailure := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}

	cases := []struct {
		name   string
		expect func(m sqlmock.Sqlmock)
		writes bool
	}{
		{
			name: "begin fails",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
		},
		{
			name: "commit hits serialization failure",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectCommit().WillReturnError(serializationFailure)
			},
			writes: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, sqlMock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tc.expect(sqlMock)

			f := newFixture(true)
			f.uc.txManager = txmanager.NewTransactionManager(dbmetrics.Wrap(db, nil, "test"))
			f.resolver.On("ResolveStrict", mock.Anything, "2025-03-14").
				Return(occupancy.New("2025-03-14"), nil).Maybe()
			f.store.On("Upsert", mock.Anything, mock.Anything).Return(nil).Maybe()

			resp, err := f.uc.Execute(context.Background(), validRequest())

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrStoreUnavailable)
			if tc.writes {
				f.store.AssertNumberOfCalls(t, "Upsert", 1)
			} else {
				f.store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
			}
			f.notifier.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything)
			assert.Empty(t, f.metrics.created)
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})
	}
}
