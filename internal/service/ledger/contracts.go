package ledger

import (
	"context"
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// HallsRepository чтение занятых залов слота
// Внутри транзакции реализация должна блокировать прочитанные строки
type HallsRepository interface {
	GetHallsBySlot(ctx context.Context, date time.Time, slot domain.TimeSlot) ([]domain.Hall, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider текущее время в часовом поясе площадки
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
