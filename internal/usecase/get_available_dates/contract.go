package get_available_dates

import (
	"context"
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// BookingRepository интерфейс чтения реестра слотов
type BookingRepository interface {
	GetBookedSlots(ctx context.Context, from time.Time) ([]domain.BookedSlot, error)
}

// HolidayRepository интерфейс чтения каталога
type HolidayRepository interface {
	GetHolidayByID(ctx context.Context, id int64) (*domain.Holiday, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе площадки
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
