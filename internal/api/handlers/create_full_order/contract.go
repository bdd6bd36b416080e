package create_full_order

import (
	"context"

	createFullOrder "github.com/m04kA/partizan-booking/internal/usecase/create_full_order"
)

type CreateFullOrderUseCase interface {
	Execute(ctx context.Context, req *createFullOrder.Request) (*createFullOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
