package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/partizan-booking/internal/domain"
	"github.com/m04kA/partizan-booking/pkg/dbmetrics"
	"github.com/m04kA/partizan-booking/pkg/pgerrors"
	"github.com/m04kA/partizan-booking/pkg/psqlbuilder"
)

const table = "full_orders"

// slotHallConstraint уникальный индекс (дата, слот, зал)
const slotHallConstraint = "full_orders_slot_hall_key"

var bookingColumns = []string{
	"fo.id",
	"fo.holiday_id",
	"fo.full_name",
	"fo.phone",
	"fo.email",
	"fo.children_count",
	"fo.age_of_children",
	"fo.notes",
	"fo.selected_date",
	"fo.selected_time",
	"fo.hall_number",
	"fo.processed",
	"fo.created_at",
	"h.title",
}

// Repository репозиторий полных заявок (реестр слотов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку с уже назначенным залом
// Должен вызываться в той же транзакции, в которой зал был выбран (см. GetHallsBySlot).
// Если уникальный индекс (дата, слот, зал) нарушен конкурентной заявкой, возвращает ErrHallTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"holiday_id",
			"full_name",
			"phone",
			"email",
			"children_count",
			"age_of_children",
			"notes",
			"selected_date",
			"selected_time",
			"hall_number",
		).
		Values(
			booking.HolidayID,
			booking.FullName,
			booking.Phone,
			booking.Email,
			booking.ChildrenCount,
			booking.AgeOfChildren,
			booking.Notes,
			booking.SelectedDate,
			string(booking.SelectedTime),
			int(booking.HallNumber),
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		switch {
		case pgerrors.IsUniqueViolation(err) && pgerrors.Constraint(err) == slotHallConstraint:
			return nil, ErrHallTaken
		case pgerrors.IsForeignKeyViolation(err):
			return nil, ErrHolidayNotFound
		case pgerrors.IsRetryable(err):
			// Ошибку сериализации отдаем как есть: транзакцию повторит менеджер
			return nil, err
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetHallsBySlot возвращает занятые залы для пары (дата, слот)
// Внутри транзакции строки блокируются (FOR UPDATE), вместе с SERIALIZABLE
// это закрывает гонку между подсчетом и вставкой.
func (r *Repository) GetHallsBySlot(ctx context.Context, date time.Time, slot domain.TimeSlot) ([]domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("hall_number").
		From(table).
		Where(squirrel.Eq{"selected_date": date, "selected_time": string(slot)}).
		OrderBy("hall_number ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHallsBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsRetryable(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: GetHallsBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	halls := make([]domain.Hall, 0, domain.HallsCount)
	for rows.Next() {
		var hall domain.Hall
		if err := rows.Scan(&hall); err != nil {
			return nil, fmt.Errorf("%w: GetHallsBySlot - scan hall: %v", ErrScanRow, err)
		}
		halls = append(halls, hall)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHallsBySlot - rows error: %v", ErrScanRow, err)
	}

	return halls, nil
}

// GetBookedSlots возвращает занятость слотов начиная с даты from (включительно)
// Отсортировано по дате; порядок слотов внутри даты задает вызывающий код
func (r *Repository) GetBookedSlots(ctx context.Context, from time.Time) ([]domain.BookedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("selected_date", "selected_time", "COUNT(*)").
		From(table).
		Where(squirrel.GtOrEq{"selected_date": from}).
		GroupBy("selected_date", "selected_time").
		OrderBy("selected_date ASC", "selected_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.BookedSlot, 0)
	for rows.Next() {
		var (
			date time.Time
			slot domain.BookedSlot
		)
		if err := rows.Scan(&date, &slot.Slot, &slot.Bookings); err != nil {
			return nil, fmt.Errorf("%w: GetBookedSlots - scan row: %v", ErrScanRow, err)
		}
		slot.Date = date.Format(domain.DateFormat)
		result = append(result, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(table + " fo").
		Join("holidays h ON h.id = fo.holiday_id").
		Where(squirrel.Eq{"fo.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает заявки для бэк-офиса
// Фильтры:
// - Processed: только обработанные / необработанные
// - StartDate, EndDate: диапазон по дате праздника (включительно)
// Сортировка: сначала свежие заявки
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(table + " fo").
		Join("holidays h ON h.id = fo.holiday_id").
		OrderBy("fo.created_at DESC", "fo.id DESC")

	if filter.Processed != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"fo.processed": *filter.Processed})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"fo.selected_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"fo.selected_date": *filter.EndDate})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// MarkProcessed помечает заявку обработанной (единственное изменяемое поле)
func (r *Repository) MarkProcessed(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("processed", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.HolidayID,
		&b.FullName,
		&b.Phone,
		&b.Email,
		&b.ChildrenCount,
		&b.AgeOfChildren,
		&b.Notes,
		&b.SelectedDate,
		&b.SelectedTime,
		&b.HallNumber,
		&b.Processed,
		&b.CreatedAt,
		&b.HolidayTitle,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
