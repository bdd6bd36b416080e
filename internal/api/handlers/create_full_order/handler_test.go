package create_full_order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/domain"
	createFullOrder "github.com/m04kA/partizan-booking/internal/usecase/create_full_order"
	"github.com/m04kA/partizan-booking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createFullOrder.Request) (*createFullOrder.Response, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*createFullOrder.Response)
	return res, args.Error(1)
}

func postForm(t *testing.T, h *Handler, form url.Values) FullOrderResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/create-full-order", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body FullOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func validForm() url.Values {
	return url.Values{
		fieldFullName:      {"Иванова Мария"},
		fieldPhone:         {"+79990001122"},
		fieldChildrenCount: {"8"},
		fieldAgeOfChildren: {"6-7"},
		fieldHolidayID:     {"1"},
		fieldSelectedDate:  {"2025-06-01"},
		fieldSelectedTime:  {"10:00-12:00"},
	}
}

func TestHandler_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createFullOrder.Request) bool {
		return r.FullName == "Иванова Мария" && r.SelectedTime == "10:00-12:00" && r.Email == ""
	})).Return(&createFullOrder.Response{ID: 42, Hall: domain.HallSecond, Slot: domain.Slot10To12}, nil)

	body := postForm(t, NewHandler(uc, logger.NewNop()), validForm())

	assert.True(t, body.Success)
	assert.Equal(t, msgSuccess, body.Message)
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, 2, body.HallNumber)
}

func TestHandler_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "missing fields enumerated",
			err:     &createFullOrder.MissingFieldsError{Fields: []string{"phone", "children_count", "selected_time"}},
			message: "Заполните обязательные поля: phone, children_count, selected_time",
		},
		{"slot full", fmt.Errorf("%w: all halls taken", createFullOrder.ErrSlotFull), msgSlotTaken},
		{"slot contention", createFullOrder.ErrSlotContention, msgSlotTaken},
		{"invalid date", createFullOrder.ErrInvalidDate, msgInvalidDate},
		{"date in past", createFullOrder.ErrDateInPast, msgDateInPast},
		{"holiday not found", createFullOrder.ErrHolidayNotFound, msgHolidayNotFound},
		{"outside hours", createFullOrder.ErrOutsideBusinessHours, msgOutsideHours},
		{"invalid input", fmt.Errorf("%w: children_count", createFullOrder.ErrInvalidInput), msgInvalidInput},
		{"internal error hidden", fmt.Errorf("%w: db down", createFullOrder.ErrInternal), msgGeneric},
		{"unknown error hidden", errors.New("boom"), msgGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			body := postForm(t, NewHandler(uc, logger.NewNop()), validForm())

			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
			assert.Zero(t, body.HallNumber)
		})
	}
}
