package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingBooking/pkg/psqlbuilder"
)

const tableName = "booking_records"

// recordColumns порядок колонок для SELECT и сканирования
var recordColumns = []string{
	"booking_date",
	"sort_key",
	"booking_id",
	"start_time",
	"start_time_display",
	"service_type",
	"package_name",
	"service_duration",
	"customer_name",
	"customer_email",
	"customer_phone",
	"vehicle_make",
	"vehicle_model",
	"vehicle_year",
	"vehicle_class",
	"vehicle_condition",
	"address_street",
	"address_city",
	"address_zip",
	"addons",
	"payment_method",
	"payment_status",
	"total_price",
	"notes",
	"status",
	"created_at",
	"updated_at",
}

// Repository хранилище записей о бронированиях
// Записи партиционированы по дате и упорядочены по sort key внутри даты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert записывает одну запись по ключу (booking_date, sort_key)
// Запись одной строкой: при ошибке частичного состояния не остается
func (r *Repository) Upsert(ctx context.Context, rec *domain.BookingRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addons := rec.Addons
	if addons == nil {
		addons = []string{}
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(recordColumns...).
		Values(
			rec.Date,
			rec.SortKey,
			rec.BookingID,
			rec.StartTime,
			rec.StartTimeDisplay,
			rec.ServiceType,
			rec.PackageName,
			rec.ServiceDuration,
			rec.CustomerName,
			rec.CustomerEmail,
			rec.CustomerPhone,
			rec.VehicleMake,
			rec.VehicleModel,
			rec.VehicleYear,
			rec.VehicleClass,
			rec.Condition,
			rec.AddressStreet,
			rec.AddressCity,
			rec.AddressZip,
			pq.Array(addons),
			rec.PaymentMethod,
			rec.PaymentStatus,
			rec.TotalPrice,
			rec.Notes,
			rec.Status,
			rec.CreatedAt,
			rec.UpdatedAt,
		).
		Suffix(upsertSuffix()).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByDate получает все записи партиции даты в порядке sort key
// Внутри транзакции строки блокируются (FOR UPDATE) - используется строгой проверкой слотов
func (r *Repository) GetByDate(ctx context.Context, date string) ([]*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(recordColumns...).
		From(tableName).
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("sort_key ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// GetByID получает запись по id бронирования
func (r *Repository) GetByID(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recordColumns...).
		From(tableName).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rec, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan record: %v", ErrScanRow, err)
	}

	return rec, nil
}

// UpdateStatus обновляет статус бронирования (изменяется внешними системами)
func (r *Repository) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, updatedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*domain.BookingRecord, error) {
	var rec domain.BookingRecord
	var addons pq.StringArray

	err := row.Scan(
		&rec.Date,
		&rec.SortKey,
		&rec.BookingID,
		&rec.StartTime,
		&rec.StartTimeDisplay,
		&rec.ServiceType,
		&rec.PackageName,
		&rec.ServiceDuration,
		&rec.CustomerName,
		&rec.CustomerEmail,
		&rec.CustomerPhone,
		&rec.VehicleMake,
		&rec.VehicleModel,
		&rec.VehicleYear,
		&rec.VehicleClass,
		&rec.Condition,
		&rec.AddressStreet,
		&rec.AddressCity,
		&rec.AddressZip,
		&addons,
		&rec.PaymentMethod,
		&rec.PaymentStatus,
		&rec.TotalPrice,
		&rec.Notes,
		&rec.Status,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Addons = []string(addons)
	return &rec, nil
}

// scanRecords сканирует результаты запроса в слайс записей
func (r *Repository) scanRecords(rows *sql.Rows) ([]*domain.BookingRecord, error) {
	records := make([]*domain.BookingRecord, 0)

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// upsertSuffix ON CONFLICT по ключу записи; created_at при перезаписи не меняется
func upsertSuffix() string {
	updates := make([]string, 0, len(recordColumns))
	for _, col := range recordColumns {
		switch col {
		case "booking_date", "sort_key", "created_at":
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	return "ON CONFLICT (booking_date, sort_key) DO UPDATE SET " + strings.Join(updates, ", ")
}
