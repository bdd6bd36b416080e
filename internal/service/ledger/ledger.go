package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
	"github.com/m04kA/partizan-booking/pkg/pgerrors"
)

// Ledger реестр слотов: решает, можно ли занять слот, и выдает номер зала
// Сам ничего не пишет: вызывающий код сохраняет заявку в той же транзакции
type Ledger struct {
	repo         HallsRepository
	timeProvider TimeProvider
}

// New создает реестр слотов
func New(repo HallsRepository, timeProvider TimeProvider) *Ledger {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Ledger{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Admit проверяет пару (дата, слот) и возвращает свободный зал
// Должен вызываться внутри сериализуемой транзакции (ctx несет транзакцию)
func (l *Ledger) Admit(ctx context.Context, date time.Time, slot domain.TimeSlot) (domain.Hall, error) {
	if !slot.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, slot)
	}
	if domain.IsDateInPast(date, l.timeProvider.Now()) {
		return 0, ErrDateInPast
	}

	occupied, err := l.repo.GetHallsBySlot(ctx, date, slot)
	if err != nil {
		if pgerrors.IsRetryable(err) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: Admit - read halls: %v", ErrInternal, err)
	}

	return AssignHall(occupied)
}

// AssignHall выбирает зал по уже занятым
// 0 занято -> зал 1, 1 занят -> другой зал, 2 и больше -> ErrSlotFull
func AssignHall(occupied []domain.Hall) (domain.Hall, error) {
	switch {
	case len(occupied) >= domain.HallsCount:
		return 0, ErrSlotFull
	case len(occupied) == 1:
		return occupied[0].Other(), nil
	default:
		return domain.HallFirst, nil
	}
}
