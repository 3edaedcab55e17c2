package booking

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/dbmetrics"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func recordRow(created time.Time, values map[string]driver.Value) []driver.Value {
	row := map[string]driver.Value{
		"booking_date":       "2025-03-14",
		"sort_key":           "0900#full#b-1",
		"booking_id":         "b-1",
		"start_time":         "0900",
		"start_time_display": "9:00 AM",
		"service_type":       "full",
		"package_name":       "Full Detail",
		"service_duration":   "3",
		"customer_name":      "Jane Doe",
		"customer_email":     "jane@example.com",
		"customer_phone":     "555-0100",
		"vehicle_make":       nil,
		"vehicle_model":      nil,
		"vehicle_year":       nil,
		"vehicle_class":      "suv",
		"vehicle_condition":  "moderate",
		"address_street":     "1 Main St",
		"address_city":       nil,
		"address_zip":        nil,
		"addons":             "{pet_hair,odor}",
		"payment_method":     nil,
		"payment_status":     nil,
		"total_price":        263.0,
		"notes":              nil,
		"status":             "confirmed",
		"created_at":         created,
		"updated_at":         created,
	}
	for k, v := range values {
		row[k] = v
	}

	out := make([]driver.Value, 0, len(recordColumns))
	for _, col := range recordColumns {
		out = append(out, row[col])
	}
	return out
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_records")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &domain.BookingRecord{
		Date:          "2025-03-14",
		SortKey:       "0900#full#b-1",
		BookingID:     "b-1",
		ServiceType:   "full",
		PackageName:   "Full Detail",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "555-0100",
		AddressStreet: "1 Main St",
		Status:        domain.StatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_ExecError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_records")).
		WillReturnError(errors.New("connection refused"))

	err := repo.Upsert(context.Background(), &domain.BookingRecord{Date: "2025-03-14", SortKey: "0900#full#b-1"})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSuffix(t *testing.T) {
	suffix := upsertSuffix()

	assert.Contains(t, suffix, "ON CONFLICT (booking_date, sort_key) DO UPDATE SET")
	assert.Contains(t, suffix, "status = EXCLUDED.status")
	assert.NotContains(t, suffix, "created_at = EXCLUDED.created_at")
	assert.NotContains(t, suffix, "sort_key = EXCLUDED.sort_key")
}

func TestRepository_GetByDate(t *testing.T) {
	repo, mock := newMock(t)
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(recordColumns).
		AddRow(recordRow(created, nil)...).
		AddRow(recordRow(created, map[string]driver.Value{
			"sort_key":           "1300#express#b-2",
			"booking_id":         "b-2",
			"start_time_display": nil,
			"service_duration":   nil,
			"addons":             nil,
			"total_price":        nil,
		})...)

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_records WHERE booking_date = $1 ORDER BY sort_key ASC")).
		WithArgs("2025-03-14").
		WillReturnRows(rows)

	records, err := repo.GetByDate(context.Background(), "2025-03-14")
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "b-1", first.BookingID)
	require.NotNil(t, first.StartTimeDisplay)
	assert.Equal(t, "9:00 AM", *first.StartTimeDisplay)
	assert.Equal(t, []string{"pet_hair", "odor"}, first.Addons)
	require.NotNil(t, first.TotalPrice)
	assert.InDelta(t, 263.0, *first.TotalPrice, 0.001)
	assert.Nil(t, first.VehicleMake)
	assert.Equal(t, domain.StatusConfirmed, first.Status)

	second := records[1]
	assert.Nil(t, second.StartTimeDisplay)
	assert.Nil(t, second.ServiceDuration)
	assert.Empty(t, second.Addons)
	assert.Nil(t, second.TotalPrice)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDate_Empty(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_records WHERE booking_date = $1")).
		WithArgs("2025-03-15").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	records, err := repo.GetByDate(context.Background(), "2025-03-15")

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDate_LocksInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY sort_key ASC FOR UPDATE")).
		WithArgs("2025-03-14").
		WillReturnRows(sqlmock.NewRows(recordColumns))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	_, err = repo.GetByDate(ctx, "2025-03-14")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDate_QueryError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_records")).
		WillReturnError(errors.New("timeout"))

	_, err := repo.GetByDate(context.Background(), "2025-03-14")

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_records WHERE booking_id = $1")).
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(recordRow(created, nil)...))

	rec, err := repo.GetByID(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, "0900#full#b-1", rec.SortKey)
	assert.Equal(t, created, rec.CreatedAt)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_records WHERE booking_id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_UpdateStatus(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("updated", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE booking_records SET status = $1, updated_at = $2 WHERE booking_id = $3")).
			WithArgs("completed", now, "b-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), "b-1", domain.StatusCompleted, now)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE booking_records")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), "missing", domain.StatusCompleted, now)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
