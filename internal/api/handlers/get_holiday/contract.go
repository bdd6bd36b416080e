package get_holiday

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/service/catalog/models"
)

type CatalogService interface {
	GetHoliday(ctx context.Context, slug string) (*models.HolidayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
