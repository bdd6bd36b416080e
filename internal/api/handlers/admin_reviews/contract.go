package admin_reviews

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/service/reviews/models"
)

type ReviewService interface {
	ListAll(ctx context.Context, approved *bool) (*models.ReviewListResponse, error)
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
