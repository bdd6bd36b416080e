package admin_orders

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/orders"
	"github.com/m04kA/partizan-booking/internal/service/orders/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidID     = "некорректный ID заявки"
	msgNotFound      = "заявка не найдена"
	msgUnknownKind   = "неизвестный вид заявки"
)

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListFull GET /api/admin/orders/full
func (h *Handler) ListFull(w http.ResponseWriter, r *http.Request) {
	req, err := ToFullOrdersRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/orders/full - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListFullOrders(r.Context(), req)
	if err != nil {
		if errors.Is(err, orders.ErrInvalidInput) {
			h.logger.Warn("GET /admin/orders/full - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /admin/orders/full - Failed to list orders: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetFull GET /api/admin/orders/full/{id}
func (h *Handler) GetFull(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /admin/orders/full/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetFullOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			h.logger.Warn("GET /admin/orders/full/{id} - Order not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /admin/orders/full/{id} - Failed to get order: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListQuick GET /api/admin/orders/quick
func (h *Handler) ListQuick(w http.ResponseWriter, r *http.Request) {
	req, err := ToLeadsRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/orders/quick - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListQuickOrders(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/orders/quick - Failed to list quick orders: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListTrainings GET /api/admin/orders/training
func (h *Handler) ListTrainings(w http.ResponseWriter, r *http.Request) {
	req, err := ToLeadsRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/orders/training - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListTrainings(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/orders/training - Failed to list registrations: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// MarkProcessed PATCH /api/admin/orders/{kind}/{id}/processed
func (h *Handler) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	kind := models.Kind(mux.Vars(r)["kind"])

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /admin/orders/{kind}/{id}/processed - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.MarkProcessed(r.Context(), kind, id); err != nil {
		switch {
		case errors.Is(err, orders.ErrUnknownKind):
			h.logger.Warn("PATCH /admin/orders/{kind}/{id}/processed - Unknown kind: %q", kind)
			handlers.RespondBadRequest(w, msgUnknownKind)

		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PATCH /admin/orders/{kind}/{id}/processed - Not found: kind=%s, id=%d", kind, id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/orders/{kind}/{id}/processed - Failed: kind=%s, id=%d, error=%v", kind, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/orders/{kind}/{id}/processed - Marked: kind=%s, id=%d", kind, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
