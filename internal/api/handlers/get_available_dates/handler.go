package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	getAvailableDates "github.com/m04kA/partizan-booking/internal/usecase/get_available_dates"
)

const (
	msgInvalidHolidayID = "некорректный ID праздника"
	msgHolidayNotFound  = "праздник не найден"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/get-available-dates
// Query params: holiday_id (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holidayIDStr := r.URL.Query().Get("holiday_id")

	req, err := ToUseCaseRequest(holidayIDStr)
	if err != nil {
		h.logger.Warn("GET /get-available-dates - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /get-available-dates - Invalid input: holiday_id=%q", holidayIDStr)
			handlers.RespondBadRequest(w, msgInvalidHolidayID)

		case errors.Is(err, getAvailableDates.ErrHolidayNotFound):
			h.logger.Warn("GET /get-available-dates - Holiday not found: holiday_id=%q", holidayIDStr)
			handlers.RespondNotFound(w, msgHolidayNotFound)

		default:
			h.logger.Error("GET /get-available-dates - Failed to get available dates: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
