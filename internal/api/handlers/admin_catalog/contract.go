package admin_catalog

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/service/catalog/models"
)

type CatalogService interface {
	ListAllHolidays(ctx context.Context) (*models.HolidayListResponse, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.CategoryResponse, error)
	CreateHoliday(ctx context.Context, req *models.CreateHolidayRequest) (*models.HolidayResponse, error)
	SetHolidayActive(ctx context.Context, id int64, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
