package admin_reviews

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/reviews"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidID     = "некорректный ID отзыва"
	msgNotFound      = "отзыв не найден"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/admin/reviews
// Query params: approved (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	approved, err := handlers.QueryBool(r, "approved")
	if err != nil {
		h.logger.Warn("GET /admin/reviews - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListAll(r.Context(), approved)
	if err != nil {
		h.logger.Error("GET /admin/reviews - Failed to list reviews: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Approve PATCH /api/admin/reviews/{id}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, "PATCH /admin/reviews/{id}/approve", h.service.Approve)
}

// Delete DELETE /api/admin/reviews/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, "DELETE /admin/reviews/{id}", h.service.Delete)
}

func (h *Handler) byID(w http.ResponseWriter, r *http.Request, route string, action func(ctx context.Context, id int64) error) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := action(r.Context(), id); err != nil {
		if errors.Is(err, reviews.ErrReviewNotFound) {
			h.logger.Warn("%s - Review not found: id=%d", route, id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("%s - Failed: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Done: id=%d", route, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
