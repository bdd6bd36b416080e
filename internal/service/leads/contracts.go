package leads

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// LeadsRepository интерфейс репозитория лидов
type LeadsRepository interface {
	CreateQuickOrder(ctx context.Context, order *domain.QuickOrder) (*domain.QuickOrder, error)
	CreateTraining(ctx context.Context, reg *domain.TrainingRegistration) (*domain.TrainingRegistration, error)
}

// HolidayRepository интерфейс чтения каталога
type HolidayRepository interface {
	GetHolidayByID(ctx context.Context, id int64) (*domain.Holiday, error)
}

// Recorder счетчик созданных лидов (pkg/metrics)
type Recorder interface {
	LeadCreated(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopRecorder struct{}

func (nopRecorder) LeadCreated(string) {}
