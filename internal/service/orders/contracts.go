package orders

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// BookingRepository интерфейс репозитория полных заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	MarkProcessed(ctx context.Context, id int64) error
}

// LeadsRepository интерфейс репозитория лидов
type LeadsRepository interface {
	ListQuickOrders(ctx context.Context, filter domain.LeadsFilter) ([]*domain.QuickOrder, error)
	MarkQuickOrderProcessed(ctx context.Context, id int64) error
	ListTrainings(ctx context.Context, filter domain.LeadsFilter) ([]*domain.TrainingRegistration, error)
	MarkTrainingProcessed(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
