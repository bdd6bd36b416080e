package get_holiday

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/catalog"
)

const msgNotFound = "праздник не найден"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/holidays/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	result, err := h.service.GetHoliday(r.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrHolidayNotFound) {
			h.logger.Warn("GET /holidays/{slug} - Holiday not found: %q", slug)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /holidays/{slug} - Failed to get holiday: slug=%q, error=%v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
