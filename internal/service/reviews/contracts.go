package reviews

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// Repository интерфейс репозитория отзывов
type Repository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	List(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error)
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
