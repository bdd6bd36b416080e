package get_holidays

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/service/catalog/models"
)

type CatalogService interface {
	ListHolidays(ctx context.Context, req *models.ListHolidaysRequest) (*models.HolidayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
