package create_full_order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
	bookingRepo "github.com/m04kA/partizan-booking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/partizan-booking/internal/infra/storage/catalog"
	"github.com/m04kA/partizan-booking/internal/service/ledger"
	"github.com/m04kA/partizan-booking/pkg/pgerrors"
	"github.com/m04kA/partizan-booking/pkg/txmanager"
)

// Причины отказа для метрик
const (
	reasonValidation = "validation"
	reasonPast       = "date_in_past"
	reasonHoliday    = "holiday_not_found"
	reasonHours      = "outside_business_hours"
	reasonFull       = "slot_full"
	reasonContention = "contention"
)

// UseCase use case создания полной заявки (бронирование зала в слоте)
type UseCase struct {
	bookingRepo  BookingRepository
	holidayRepo  HolidayRepository
	ledger       SlotLedger
	txManager    TransactionManager
	timeProvider TimeProvider
	recorder     Recorder
	cfg          Config
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	holidayRepo HolidayRepository,
	ledger SlotLedger,
	txManager TransactionManager,
	recorder Recorder,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.MaxAdmitAttempts <= 0 {
		cfg.MaxAdmitAttempts = DefaultMaxAdmitAttempts
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		holidayRepo:  holidayRepo,
		ledger:       ledger,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{Location: cfg.Location},
		recorder:     recorder,
		cfg:          cfg,
		logger:       logger,
	}
}

// Execute выполняет use case создания полной заявки
// Выбор зала и вставка идут в одной сериализуемой транзакции;
// если зал перехватила конкурентная заявка, выбор повторяется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateFullOrder: holiday=%s, date=%s, time=%s", req.HolidayID, req.SelectedDate, req.SelectedTime)

	// 1. Обязательные поля и формат
	b, err := parseRequest(req, uc.cfg.Location)
	if err != nil {
		uc.logger.Warn("CreateFullOrder: validation failed: %v", err)
		uc.recorder.BookingRejected(reasonValidation)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now().In(uc.cfg.Location)
	if domain.IsDateInPast(b.date, now) {
		uc.logger.Warn("CreateFullOrder: date %s is in the past", b.date.Format(domain.DateFormat))
		uc.recorder.BookingRejected(reasonPast)
		return nil, ErrDateInPast
	}

	// 3. Праздник существует и активен
	holiday, err := uc.holidayRepo.GetHolidayByID(ctx, b.holidayID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrHolidayNotFound) {
			uc.logger.Warn("CreateFullOrder: holiday id=%d not found", b.holidayID)
			uc.recorder.BookingRejected(reasonHoliday)
			return nil, ErrHolidayNotFound
		}
		uc.logger.Error("CreateFullOrder: failed to get holiday id=%d: %v", b.holidayID, err)
		return nil, fmt.Errorf("%w: failed to get holiday: %v", ErrInternal, err)
	}
	if !holiday.Active {
		uc.logger.Warn("CreateFullOrder: holiday id=%d is inactive", b.holidayID)
		uc.recorder.BookingRejected(reasonHoliday)
		return nil, ErrHolidayNotFound
	}

	// 4. Часы работы по часу начала слота
	if !uc.cfg.Hours.Contains(b.date, b.slot.StartHour()) {
		uc.logger.Warn("CreateFullOrder: slot %s on %s is outside business hours",
			b.slot, b.date.Format(domain.DateFormat))
		uc.recorder.BookingRejected(reasonHours)
		return nil, ErrOutsideBusinessHours
	}

	// 5. Выбор зала и сохранение
	var result *domain.Booking
	for attempt := 1; attempt <= uc.cfg.MaxAdmitAttempts; attempt++ {
		result, err = uc.admitAndSave(ctx, b)
		if err == nil {
			break
		}
		if !errors.Is(err, bookingRepo.ErrHallTaken) {
			return nil, uc.mapTxError(err)
		}
		uc.logger.Warn("CreateFullOrder: hall taken concurrently for %s %s, attempt %d/%d",
			b.date.Format(domain.DateFormat), b.slot, attempt, uc.cfg.MaxAdmitAttempts)
	}

	if result == nil {
		uc.logger.Warn("CreateFullOrder: gave up on %s %s after %d attempts",
			b.date.Format(domain.DateFormat), b.slot, uc.cfg.MaxAdmitAttempts)
		uc.recorder.BookingRejected(reasonContention)
		return nil, ErrSlotContention
	}

	uc.recorder.BookingAdmitted(int(result.HallNumber))
	uc.logger.Info("CreateFullOrder: created booking id=%d, hall=%d", result.ID, result.HallNumber)

	return &Response{
		ID:        result.ID,
		HolidayID: result.HolidayID,
		Date:      result.SelectedDate,
		Slot:      result.SelectedTime,
		Hall:      result.HallNumber,
		CreatedAt: result.CreatedAt,
	}, nil
}

// admitAndSave одна попытка: транзакция "прочитать залы -> вставить"
func (uc *UseCase) admitAndSave(ctx context.Context, b *booking) (*domain.Booking, error) {
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		hall, err := uc.ledger.Admit(txCtx, b.date, b.slot)
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrSlotFull):
				return ErrSlotFull
			case errors.Is(err, ledger.ErrDateInPast):
				return ErrDateInPast
			case errors.Is(err, ledger.ErrInvalidTimeSlot):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			case pgerrors.IsRetryable(err):
				return err
			}
			uc.logger.Error("CreateFullOrder: ledger admit failed: %v", err)
			return fmt.Errorf("%w: ledger admit: %v", ErrInternal, err)
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			HolidayID:     b.holidayID,
			FullName:      b.fullName,
			Phone:         b.phone,
			Email:         b.email,
			ChildrenCount: b.childrenCount,
			AgeOfChildren: b.ageOfChildren,
			Notes:         b.notes,
			SelectedDate:  b.date,
			SelectedTime:  b.slot,
			HallNumber:    hall,
		})
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrHallTaken), pgerrors.IsRetryable(err):
				return err
			case errors.Is(err, bookingRepo.ErrHolidayNotFound):
				return ErrHolidayNotFound
			}
			uc.logger.Error("CreateFullOrder: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	return result, err
}

// mapTxError переводит ошибки транзакции в ошибки use case
func (uc *UseCase) mapTxError(err error) error {
	switch {
	case errors.Is(err, ErrSlotFull):
		uc.recorder.BookingRejected(reasonFull)
		return err
	case errors.Is(err, ErrDateInPast):
		uc.recorder.BookingRejected(reasonPast)
		return err
	case errors.Is(err, ErrHolidayNotFound):
		uc.recorder.BookingRejected(reasonHoliday)
		return err
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInternal):
		return err
	case errors.Is(err, txmanager.ErrSerialization):
		uc.logger.Warn("CreateFullOrder: serialization retries exhausted: %v", err)
		uc.recorder.BookingRejected(reasonContention)
		return ErrSlotContention
	}
	uc.logger.Error("CreateFullOrder: transaction failed: %v", err)
	return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
}
