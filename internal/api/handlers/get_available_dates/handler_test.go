package get_available_dates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/domain"
	getAvailableDates "github.com/m04kA/partizan-booking/internal/usecase/get_available_dates"
	"github.com/m04kA/partizan-booking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableDates.Request) (*getAvailableDates.Response, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*getAvailableDates.Response)
	return res, args.Error(1)
}

func TestHandler_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getAvailableDates.Request) bool {
		return r.HolidayID != nil && *r.HolidayID == 7
	})).Return(&getAvailableDates.Response{
		Booked: map[string][]domain.TimeSlot{"2025-06-01": {domain.Slot10To12, domain.Slot14To16}},
		Full:   map[string][]domain.TimeSlot{"2025-06-01": {domain.Slot10To12}},
		Slots:  domain.TwoHourSlots,
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/get-available-dates?holiday_id=7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"10:00-12:00", "14:00-16:00"}, body.Booked["2025-06-01"])
	assert.Equal(t, []string{"10:00-12:00"}, body.Full["2025-06-01"])
	assert.Len(t, body.Slots, len(domain.TwoHourSlots))
}

func TestHandler_WithoutHoliday(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableDates.Request{}).Return(&getAvailableDates.Response{
		Booked: map[string][]domain.TimeSlot{},
		Full:   map[string][]domain.TimeSlot{},
		Slots:  []domain.TimeSlot{},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/get-available-dates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"booked":{},"full":{},"slots":[]}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableDates.ErrHolidayNotFound)
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/get-available-dates?holiday_id=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/get-available-dates?holiday_id=404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
