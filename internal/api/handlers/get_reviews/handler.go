package get_reviews

import (
	"net/http"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
)

const msgInvalidLimit = "некорректный limit"

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

// Handle GET /api/reviews
// Query params: limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, err := handlers.QueryUint(r, "limit")
	if err != nil {
		h.logger.Warn("GET /reviews - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}

	result, err := h.service.ListApproved(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /reviews - Failed to list reviews: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
