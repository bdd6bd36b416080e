package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/reviews"
	"github.com/m04kA/partizan-booking/internal/service/reviews/models"
)

const (
	msgSuccess = "Отзыв отправлен!"
	msgFailed  = "Ошибка"
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

// Handle POST /api/create-review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := handlers.ParseForm(r); err != nil {
		h.logger.Warn("POST /create-review - Invalid form: %v", err)
		handlers.RespondFormFailure(w, msgFailed)
		return
	}

	req := &models.CreateReviewRequest{
		Name:   r.PostFormValue("name"),
		Text:   r.PostFormValue("text"),
		Rating: r.PostFormValue("rating"),
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		var vErr *reviews.ValidationError
		if errors.As(err, &vErr) {
			h.logger.Warn("POST /create-review - Validation failed: %v", err)
			handlers.RespondFormErrors(w, vErr.Fields)
			return
		}

		h.logger.Error("POST /create-review - Failed to create review: error=%v", err)
		handlers.RespondFormFailure(w, msgFailed)
		return
	}

	h.logger.Info("POST /create-review - Review created: id=%d", result.ID)
	handlers.RespondFormSuccess(w, msgSuccess)
}
