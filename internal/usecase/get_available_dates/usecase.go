package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
	catalogRepo "github.com/m04kA/partizan-booking/internal/infra/storage/catalog"
)

// UseCase use case занятости слотов для календаря
// Только чтение: повторный вызов без записей между ними дает тот же ответ
type UseCase struct {
	bookingRepo  BookingRepository
	holidayRepo  HolidayRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	holidayRepo HolidayRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		holidayRepo:  holidayRepo,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute выполняет use case получения занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Слоты праздника, если он указан
	var slots []domain.TimeSlot
	if req.HolidayID != nil {
		if *req.HolidayID <= 0 {
			return nil, fmt.Errorf("%w: holiday_id must be positive", ErrInvalidInput)
		}

		holiday, err := uc.holidayRepo.GetHolidayByID(ctx, *req.HolidayID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrHolidayNotFound) {
				uc.logger.Warn("GetAvailableDates: holiday id=%d not found", *req.HolidayID)
				return nil, ErrHolidayNotFound
			}
			uc.logger.Error("GetAvailableDates: failed to get holiday id=%d: %v", *req.HolidayID, err)
			return nil, fmt.Errorf("%w: failed to get holiday: %v", ErrInternal, err)
		}
		slots = holiday.TimeSlots()
	}

	// 2. Занятость начиная с сегодняшнего дня
	today := domain.StartOfDay(uc.timeProvider.Now())

	booked, err := uc.bookingRepo.GetBookedSlots(ctx, today)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 3. Группировка по датам
	bookedByDate, fullByDate := groupBookedSlots(booked)

	uc.logger.Info("GetAvailableDates: %d dates with bookings from %s", len(bookedByDate), today.Format(domain.DateFormat))

	if slots == nil {
		slots = []domain.TimeSlot{}
	}

	return &Response{
		Booked: bookedByDate,
		Full:   fullByDate,
		Slots:  slots,
	}, nil
}
