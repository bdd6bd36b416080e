package get_holidays

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/catalog"
	"github.com/m04kA/partizan-booking/internal/service/catalog/models"
)

const (
	msgInvalidAge       = "некорректный возраст"
	msgCategoryNotFound = "категория не найдена"
)

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

// Handle GET /api/holidays
// Query params: category (slug), age (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListHolidaysRequest{CategorySlug: r.URL.Query().Get("category")}

	if ageStr := r.URL.Query().Get("age"); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil {
			h.logger.Warn("GET /holidays - Invalid age: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAge)
			return
		}
		req.Age = &age
	}

	result, err := h.service.ListHolidays(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("GET /holidays - Category not found: %q", req.CategorySlug)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /holidays - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAge)

		default:
			h.logger.Error("GET /holidays - Failed to list holidays: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
