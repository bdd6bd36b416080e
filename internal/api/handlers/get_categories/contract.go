package get_categories

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/service/catalog/models"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]*models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
