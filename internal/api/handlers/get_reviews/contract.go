package get_reviews

import (
	"context"

	"github.com/m04kA/partizan-booking/internal/service/reviews/models"
)

type ReviewService interface {
	ListApproved(ctx context.Context, limit uint64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
