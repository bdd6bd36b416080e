package register_training

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/service/leads/models"
)

type LeadsService interface {
	RegisterTraining(ctx context.Context, req *models.TrainingRequest) (*models.LeadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
