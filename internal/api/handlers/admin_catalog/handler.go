package admin_catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/catalog"
	"github.com/m04kA/partizan-booking/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные"
	msgInvalidID          = "некорректный ID праздника"
	msgDuplicateSlug      = "slug уже занят"
	msgCategoryNotFound   = "категория не найдена"
	msgHolidayNotFound    = "праздник не найден"
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

// ListHolidays GET /api/admin/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAllHolidays(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/holidays - Failed to list holidays: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateCategory POST /api/admin/categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		h.respondCatalogError(w, "POST /admin/categories", err)
		return
	}

	h.logger.Info("POST /admin/categories - Category created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// CreateHoliday POST /api/admin/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateHoliday(r.Context(), &req)
	if err != nil {
		h.respondCatalogError(w, "POST /admin/holidays", err)
		return
	}

	h.logger.Info("POST /admin/holidays - Holiday created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// SetActive PATCH /api/admin/holidays/{id}/active
func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /admin/holidays/{id}/active - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Active == nil {
		h.logger.Warn("PATCH /admin/holidays/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetHolidayActive(r.Context(), id, *req.Active); err != nil {
		h.respondCatalogError(w, "PATCH /admin/holidays/{id}/active", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondCatalogError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, catalog.ErrDuplicateSlug):
		h.logger.Warn("%s - Duplicate slug", route)
		handlers.RespondConflict(w, msgDuplicateSlug)

	case errors.Is(err, catalog.ErrCategoryNotFound):
		h.logger.Warn("%s - Category not found", route)
		handlers.RespondNotFound(w, msgCategoryNotFound)

	case errors.Is(err, catalog.ErrHolidayNotFound):
		h.logger.Warn("%s - Holiday not found", route)
		handlers.RespondNotFound(w, msgHolidayNotFound)

	default:
		h.logger.Error("%s - Failed: error=%v", route, err)
		handlers.RespondInternalError(w)
	}
}
