package admin_orders

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/service/orders/models"
)

type OrdersService interface {
	GetFullOrder(ctx context.Context, id int64) (*models.FullOrderResponse, error)
	ListFullOrders(ctx context.Context, req *models.ListFullOrdersRequest) (*models.FullOrderListResponse, error)
	ListQuickOrders(ctx context.Context, req *models.ListLeadsRequest) (*models.QuickOrderListResponse, error)
	ListTrainings(ctx context.Context, req *models.ListLeadsRequest) (*models.TrainingListResponse, error)
	MarkProcessed(ctx context.Context, kind models.Kind, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
