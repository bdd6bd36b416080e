package catalog

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// Repository интерфейс репозитория каталога
type Repository interface {
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error)
	GetHolidayBySlug(ctx context.Context, slug string) (*domain.Holiday, error)
	ListHolidays(ctx context.Context, filter domain.HolidaysFilter) ([]*domain.Holiday, error)
	SetHolidayActive(ctx context.Context, id int64, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
