package create_full_order

import (
	"context"
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// BookingRepository интерфейс репозитория полных заявок
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// HolidayRepository интерфейс чтения каталога
type HolidayRepository interface {
	GetHolidayByID(ctx context.Context, id int64) (*domain.Holiday, error)
}

// SlotLedger реестр слотов
type SlotLedger interface {
	Admit(ctx context.Context, date time.Time, slot domain.TimeSlot) (domain.Hall, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Recorder счетчики бронирований (pkg/metrics)
type Recorder interface {
	BookingAdmitted(hall int)
	BookingRejected(reason string)
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

type nopRecorder struct{}

func (nopRecorder) BookingAdmitted(int) {}
func (nopRecorder) BookingRejected(string) {}
