package create_quick_order

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/service/leads/models"
)

type LeadsService interface {
	CreateQuickOrder(ctx context.Context, req *models.QuickOrderRequest) (*models.LeadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
