package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/partizan-booking/internal/domain"
	"github.com/m04kA/partizan-booking/pkg/dbmetrics"
	"github.com/m04kA/partizan-booking/pkg/pgerrors"
	"github.com/m04kA/partizan-booking/pkg/psqlbuilder"
)

var holidayColumns = []string{
	"h.id",
	"h.category_id",
	"h.title",
	"h.slug",
	"h.image",
	"h.duration",
	"h.description",
	"h.price",
	"h.min_age",
	"h.max_age",
	"h.max_children",
	"h.active",
	"h.created_at",
	"c.name",
	"c.slug",
}

// Repository репозиторий каталога: категории и праздники
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCategory создает категорию
func (r *Repository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("categories").
		Columns("name", "slug", "description").
		Values(category.Name, category.Slug, category.Description).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: CreateCategory - execute insert: %v", ErrExecQuery, err)
	}

	return category, nil
}

// ListCategories возвращает все категории по имени
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "slug", "description").
		From("categories").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetCategoryBySlug получает категорию по slug
func (r *Repository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "slug", "description").
		From("categories").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Category
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Slug, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - scan category: %v", ErrScanRow, err)
	}

	return &c, nil
}

// CreateHoliday создает праздник
func (r *Repository) CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holidays").
		Columns(
			"category_id",
			"title",
			"slug",
			"image",
			"duration",
			"description",
			"price",
			"min_age",
			"max_age",
			"max_children",
			"active",
		).
		Values(
			holiday.CategoryID,
			holiday.Title,
			holiday.Slug,
			holiday.Image,
			holiday.Duration,
			holiday.Description,
			holiday.Price,
			holiday.MinAge,
			holiday.MaxAge,
			holiday.MaxChildren,
			holiday.Active,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHoliday - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&holiday.ID, &holiday.CreatedAt)
	if err != nil {
		switch {
		case pgerrors.IsUniqueViolation(err):
			return nil, ErrDuplicateSlug
		case pgerrors.IsForeignKeyViolation(err):
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("%w: CreateHoliday - execute insert: %v", ErrExecQuery, err)
	}

	return holiday, nil
}

// GetHolidayByID получает праздник по ID (включая неактивные)
func (r *Repository) GetHolidayByID(ctx context.Context, id int64) (*domain.Holiday, error) {
	return r.getHoliday(ctx, "GetHolidayByID", squirrel.Eq{"h.id": id})
}

// GetHolidayBySlug получает праздник по slug (включая неактивные)
func (r *Repository) GetHolidayBySlug(ctx context.Context, slug string) (*domain.Holiday, error) {
	return r.getHoliday(ctx, "GetHolidayBySlug", squirrel.Eq{"h.slug": slug})
}

func (r *Repository) getHoliday(ctx context.Context, method string, where squirrel.Sqlizer) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := holidaysSelect().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	holiday, err := scanHoliday(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan holiday: %v", ErrScanRow, method, err)
	}

	return holiday, nil
}

// ListHolidays возвращает праздники по фильтру
// Age: min_age <= age <= max_age
// Сортировка: сначала новые
func (r *Repository) ListHolidays(ctx context.Context, filter domain.HolidaysFilter) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := holidaysSelect().OrderBy("h.created_at DESC", "h.id DESC")

	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"h.active": true})
	}
	if filter.CategoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"h.category_id": *filter.CategoryID})
	}
	if filter.Age != nil {
		selectBuilder = selectBuilder.Where(squirrel.And{
			squirrel.LtOrEq{"h.min_age": *filter.Age},
			squirrel.GtOrEq{"h.max_age": *filter.Age},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListHolidays - scan row: %v", ErrScanRow, err)
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// SetHolidayActive включает или скрывает праздник
func (r *Repository) SetHolidayActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holidays").
		Set("active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetHolidayActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetHolidayActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetHolidayActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHolidayNotFound
	}

	return nil
}

func holidaysSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(holidayColumns...).
		From("holidays h").
		Join("categories c ON c.id = h.category_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHoliday(row rowScanner) (*domain.Holiday, error) {
	var h domain.Holiday
	err := row.Scan(
		&h.ID,
		&h.CategoryID,
		&h.Title,
		&h.Slug,
		&h.Image,
		&h.Duration,
		&h.Description,
		&h.Price,
		&h.MinAge,
		&h.MaxAge,
		&h.MaxChildren,
		&h.Active,
		&h.CreatedAt,
		&h.CategoryName,
		&h.CategorySlug,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
