package register_training

import (
	"errors"
	"net/http"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/leads"
	"github.com/m04kA/partizan-booking/internal/service/leads/models"
)

const (
	msgSuccess       = "Заявка отправлена!"
	msgMissingFields = "Заполните все поля"
	msgInvalidInput  = "Проверьте возраст, группу и тип посещения"
	msgFailed        = "Произошла ошибка при отправке заявки"
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

// Handle POST /api/register-training
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := handlers.ParseForm(r); err != nil {
		h.logger.Warn("POST /register-training - Invalid form: %v", err)
		handlers.RespondFormFailure(w, msgFailed)
		return
	}

	req := &models.TrainingRequest{
		ParentName: r.PostFormValue("parent_name"),
		Phone:      r.PostFormValue("phone"),
		ChildName:  r.PostFormValue("child_name"),
		Age:        r.PostFormValue("age"),
		AgeGroup:   r.PostFormValue("age_group"),
		VisitType:  r.PostFormValue("visit_type"),
	}

	result, err := h.service.RegisterTraining(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrMissingFields):
			h.logger.Warn("POST /register-training - Missing fields")
			handlers.RespondFormFailure(w, msgMissingFields)

		case errors.Is(err, leads.ErrInvalidInput):
			h.logger.Warn("POST /register-training - Invalid input: %v", err)
			handlers.RespondFormFailure(w, msgInvalidInput)

		default:
			h.logger.Error("POST /register-training - Failed to register: error=%v", err)
			handlers.RespondFormFailure(w, msgFailed)
		}
		return
	}

	h.logger.Info("POST /register-training - Registration created: id=%d", result.ID)
	handlers.RespondFormSuccess(w, msgSuccess)
}
