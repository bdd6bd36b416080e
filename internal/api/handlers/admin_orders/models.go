package admin_orders

import (
	"net/http"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/orders/models"
)

// ToFullOrdersRequest query: processed, start_date, end_date, limit
func ToFullOrdersRequest(r *http.Request) (*models.ListFullOrdersRequest, error) {
	processed, err := handlers.QueryBool(r, "processed")
	if err != nil {
		return nil, err
	}
	limit, err := handlers.QueryUint(r, "limit")
	if err != nil {
		return nil, err
	}

	req := &models.ListFullOrdersRequest{Processed: processed, Limit: limit}
	if v := r.URL.Query().Get("start_date"); v != "" {
		req.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		req.EndDate = &v
	}
	return req, nil
}

// ToLeadsRequest query: processed, limit
func ToLeadsRequest(r *http.Request) (*models.ListLeadsRequest, error) {
	processed, err := handlers.QueryBool(r, "processed")
	if err != nil {
		return nil, err
	}
	limit, err := handlers.QueryUint(r, "limit")
	if err != nil {
		return nil, err
	}
	return &models.ListLeadsRequest{Processed: processed, Limit: limit}, nil
}
