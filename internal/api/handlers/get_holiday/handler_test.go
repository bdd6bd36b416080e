package get_holiday

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/service/catalog"
	"github.com/m04kA/partizan-booking/internal/service/catalog/models"
	"github.com/m04kA/partizan-booking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetHoliday(ctx context.Context, slug string) (*models.HolidayResponse, error) {
	args := m.Called(ctx, slug)
	res, _ := args.Get(0).(*models.HolidayResponse)
	return res, args.Error(1)
}

func TestHandler(t *testing.T) {
	svc := &mockService{}
	svc.On("GetHoliday", mock.Anything, "pirates").Return(&models.HolidayResponse{ID: 3, Slug: "pirates"}, nil)
	svc.On("GetHoliday", mock.Anything, "hidden").Return(nil, catalog.ErrHolidayNotFound)

	router := mux.NewRouter()
	router.HandleFunc("/api/holidays/{slug}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/holidays/pirates", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body models.HolidayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.ID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/holidays/hidden", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
