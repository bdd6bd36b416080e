package create_review

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/reviews"
	"github.com/m04kA/partizan-booking/internal/service/reviews/models"
	"github.com/m04kA/partizan-booking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.ReviewResponse)
	return res, args.Error(1)
}

func post(t *testing.T, svc ReviewService, form url.Values) handlers.FormResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/create-review", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handlers.FormResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandler_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, &models.CreateReviewRequest{Name: "Анна", Text: "Спасибо!", Rating: "5"}).
		Return(&models.ReviewResponse{ID: 1}, nil)

	body := post(t, svc, url.Values{"name": {"Анна"}, "text": {"Спасибо!"}, "rating": {"5"}})

	assert.True(t, body.Success)
	assert.Equal(t, msgSuccess, body.Message)
}

func TestHandler_FieldErrors(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, &reviews.ValidationError{Fields: map[string]string{"rating": "Оценка должна быть от 1 до 5"}})

	body := post(t, svc, url.Values{"name": {"Анна"}, "text": {"Спасибо!"}, "rating": {"9"}})

	assert.False(t, body.Success)
	assert.Equal(t, map[string]string{"rating": "Оценка должна быть от 1 до 5"}, body.Errors)
}

func TestHandler_InternalErrorHidden(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

	body := post(t, svc, url.Values{"name": {"Анна"}, "text": {"Спасибо!"}, "rating": {"4"}})

	assert.False(t, body.Success)
	assert.Equal(t, msgFailed, body.Message)
}
