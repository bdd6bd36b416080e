package leads

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/partizan-booking/internal/domain"
	"github.com/m04kA/partizan-booking/pkg/dbmetrics"
	"github.com/m04kA/partizan-booking/pkg/pgerrors"
	"github.com/m04kA/partizan-booking/pkg/psqlbuilder"
)

const (
	quickOrdersTable = "quick_orders"
	trainingsTable   = "training_registrations"
)

// Repository репозиторий лидов: быстрые заявки и записи на тренировки
// Лиды не занимают слотов и не проходят через реестр
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лидов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateQuickOrder сохраняет быструю заявку
func (r *Repository) CreateQuickOrder(ctx context.Context, order *domain.QuickOrder) (*domain.QuickOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(quickOrdersTable).
		Columns("holiday_id", "phone").
		Values(order.HolidayID, order.Phone).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateQuickOrder - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, ErrHolidayNotFound
		}
		return nil, fmt.Errorf("%w: CreateQuickOrder - execute insert: %v", ErrExecQuery, err)
	}

	return order, nil
}

// ListQuickOrders возвращает быстрые заявки, сначала свежие
func (r *Repository) ListQuickOrders(ctx context.Context, filter domain.LeadsFilter) ([]*domain.QuickOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("q.id", "q.holiday_id", "q.phone", "q.processed", "q.created_at", "h.title").
		From(quickOrdersTable + " q").
		Join("holidays h ON h.id = q.holiday_id").
		OrderBy("q.created_at DESC", "q.id DESC")
	selectBuilder = applyLeadsFilter(selectBuilder, "q", filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListQuickOrders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListQuickOrders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.QuickOrder, 0)
	for rows.Next() {
		var o domain.QuickOrder
		if err := rows.Scan(&o.ID, &o.HolidayID, &o.Phone, &o.Processed, &o.CreatedAt, &o.HolidayTitle); err != nil {
			return nil, fmt.Errorf("%w: ListQuickOrders - scan row: %v", ErrScanRow, err)
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListQuickOrders - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

// MarkQuickOrderProcessed помечает быструю заявку обработанной
func (r *Repository) MarkQuickOrderProcessed(ctx context.Context, id int64) error {
	return r.markProcessed(ctx, "MarkQuickOrderProcessed", quickOrdersTable, id)
}

// CreateTraining сохраняет запись на тренировку
func (r *Repository) CreateTraining(ctx context.Context, reg *domain.TrainingRegistration) (*domain.TrainingRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(trainingsTable).
		Columns("parent_name", "phone", "child_name", "child_age", "age_group", "visit_type").
		Values(reg.ParentName, reg.Phone, reg.ChildName, reg.ChildAge, string(reg.AgeGroup), string(reg.VisitType)).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTraining - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&reg.ID, &reg.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateTraining - execute insert: %v", ErrExecQuery, err)
	}

	return reg, nil
}

// ListTrainings возвращает записи на тренировки, сначала свежие
func (r *Repository) ListTrainings(ctx context.Context, filter domain.LeadsFilter) ([]*domain.TrainingRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"t.id", "t.parent_name", "t.phone", "t.child_name", "t.child_age",
		"t.age_group", "t.visit_type", "t.processed", "t.created_at",
	).
		From(trainingsTable + " t").
		OrderBy("t.created_at DESC", "t.id DESC")
	selectBuilder = applyLeadsFilter(selectBuilder, "t", filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTrainings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTrainings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	regs := make([]*domain.TrainingRegistration, 0)
	for rows.Next() {
		var reg domain.TrainingRegistration
		err := rows.Scan(
			&reg.ID,
			&reg.ParentName,
			&reg.Phone,
			&reg.ChildName,
			&reg.ChildAge,
			&reg.AgeGroup,
			&reg.VisitType,
			&reg.Processed,
			&reg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListTrainings - scan row: %v", ErrScanRow, err)
		}
		regs = append(regs, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTrainings - rows error: %v", ErrScanRow, err)
	}

	return regs, nil
}

// MarkTrainingProcessed помечает запись на тренировку обработанной
func (r *Repository) MarkTrainingProcessed(ctx context.Context, id int64) error {
	return r.markProcessed(ctx, "MarkTrainingProcessed", trainingsTable, id)
}

func (r *Repository) markProcessed(ctx context.Context, method, table string, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("processed", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

func applyLeadsFilter(b squirrel.SelectBuilder, alias string, filter domain.LeadsFilter) squirrel.SelectBuilder {
	if filter.Processed != nil {
		b = b.Where(squirrel.Eq{alias + ".processed": *filter.Processed})
	}
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}
	return b
}
