package create_quick_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/leads"
	"github.com/m04kA/partizan-booking/internal/service/leads/models"
)

const (
	msgSuccess         = "Заявка отправлена!"
	msgMissingFields   = "Укажите телефон и выберите праздник"
	msgHolidayNotFound = "Праздник не найден"
	msgFailed          = "Ошибка"
)

type Handler struct {
	service LeadsService
	logger  Logger
}

func NewHandler(service LeadsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/create-quick-order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := handlers.ParseForm(r); err != nil {
		h.logger.Warn("POST /create-quick-order - Invalid form: %v", err)
		handlers.RespondFormFailure(w, msgFailed)
		return
	}

	req := &models.QuickOrderRequest{
		Phone:     r.PostFormValue("phone"),
		HolidayID: r.PostFormValue("holiday_id"),
	}

	result, err := h.service.CreateQuickOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrMissingFields):
			h.logger.Warn("POST /create-quick-order - Missing fields")
			handlers.RespondFormFailure(w, msgMissingFields)

		case errors.Is(err, leads.ErrHolidayNotFound):
			h.logger.Warn("POST /create-quick-order - Holiday not found: %q", req.HolidayID)
			handlers.RespondFormFailure(w, msgHolidayNotFound)

		case errors.Is(err, leads.ErrInvalidInput):
			h.logger.Warn("POST /create-quick-order - Invalid input: %v", err)
			handlers.RespondFormFailure(w, msgFailed)

		default:
			h.logger.Error("POST /create-quick-order - Failed to create quick order: error=%v", err)
			handlers.RespondFormFailure(w, msgFailed)
		}
		return
	}

	h.logger.Info("POST /create-quick-order - Quick order created: id=%d", result.ID)
	handlers.RespondFormSuccess(w, msgSuccess)
}
