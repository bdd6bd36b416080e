package create_full_order

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	createFullOrder "github.com/m04kA/partizan-booking/internal/usecase/create_full_order"
)

const (
	msgSuccess         = "Заявка успешно отправлена! Мы свяжемся с вами для подтверждения."
	msgSlotTaken       = "К сожалению, это время уже занято. Выберите другое."
	msgMissingFields   = "Заполните обязательные поля: "
	msgInvalidInput    = "Проверьте правильность заполнения полей"
	msgInvalidDate     = "Некорректная дата, ожидается формат ГГГГ-ММ-ДД"
	msgDateInPast      = "Нельзя забронировать прошедшую дату"
	msgHolidayNotFound = "Праздник не найден"
	msgOutsideHours    = "Выбранное время вне часов работы"
	msgGeneric         = "Произошла ошибка при отправке заявки"
)

type Handler struct {
	useCase CreateFullOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateFullOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/create-full-order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := handlers.ParseForm(r); err != nil {
		h.logger.Warn("POST /create-full-order - Invalid form: %v", err)
		handlers.RespondFormFailure(w, msgGeneric)
		return
	}

	req := ToUseCaseRequest(r)

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		var missing *createFullOrder.MissingFieldsError

		switch {
		case errors.As(err, &missing):
			h.logger.Warn("POST /create-full-order - Missing fields: %v", missing.Fields)
			handlers.RespondFormFailure(w, msgMissingFields+strings.Join(missing.Fields, ", "))

		case errors.Is(err, createFullOrder.ErrSlotFull), errors.Is(err, createFullOrder.ErrSlotContention):
			h.logger.Warn("POST /create-full-order - Slot taken: date=%s, slot=%s", req.SelectedDate, req.SelectedTime)
			handlers.RespondFormFailure(w, msgSlotTaken)

		case errors.Is(err, createFullOrder.ErrInvalidDate):
			h.logger.Warn("POST /create-full-order - Invalid date: %q", req.SelectedDate)
			handlers.RespondFormFailure(w, msgInvalidDate)

		case errors.Is(err, createFullOrder.ErrDateInPast):
			h.logger.Warn("POST /create-full-order - Date in past: %s", req.SelectedDate)
			handlers.RespondFormFailure(w, msgDateInPast)

		case errors.Is(err, createFullOrder.ErrHolidayNotFound):
			h.logger.Warn("POST /create-full-order - Holiday not found: %q", req.HolidayID)
			handlers.RespondFormFailure(w, msgHolidayNotFound)

		case errors.Is(err, createFullOrder.ErrOutsideBusinessHours):
			h.logger.Warn("POST /create-full-order - Outside business hours: date=%s, slot=%s", req.SelectedDate, req.SelectedTime)
			handlers.RespondFormFailure(w, msgOutsideHours)

		case errors.Is(err, createFullOrder.ErrInvalidInput):
			h.logger.Warn("POST /create-full-order - Invalid input: %v", err)
			handlers.RespondFormFailure(w, msgInvalidInput)

		default:
			h.logger.Error("POST /create-full-order - Failed to create order: date=%s, slot=%s, error=%v",
				req.SelectedDate, req.SelectedTime, err)
			handlers.RespondFormFailure(w, msgGeneric)
		}
		return
	}

	h.logger.Info("POST /create-full-order - Order created: id=%d, date=%s, slot=%s, hall=%d",
		result.ID, req.SelectedDate, result.Slot, result.Hall)
	handlers.RespondJSON(w, http.StatusOK, FullOrderResponse{
		Success:    true,
		Message:    msgSuccess,
		ID:         result.ID,
		HallNumber: int(result.Hall),
	})
}
