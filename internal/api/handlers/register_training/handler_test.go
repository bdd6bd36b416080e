package register_training

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
	"github.com/m04kA/partizan-booking/internal/service/leads"
	"github.com/m04kA/partizan-booking/internal/service/leads/models"
	"github.com/m04kA/partizan-booking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) RegisterTraining(ctx context.Context, req *models.TrainingRequest) (*models.LeadResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.LeadResponse)
	return res, args.Error(1)
}

func TestHandler(t *testing.T) {
	form := url.Values{
		"parent_name": {"Ольга"},
		"phone":       {"+79990001122"},
		"child_name":  {"Петя"},
		"age":         {"9"},
		"age_group":   {"under_13"},
	}

	tests := []struct {
		name        string
		err         error
		wantSuccess bool
		wantMessage string
	}{
		{"registered", nil, true, msgSuccess},
		{"missing fields", leads.ErrMissingFields, false, msgMissingFields},
		{"bad age", fmt.Errorf("%w: age", leads.ErrInvalidInput), false, msgInvalidInput},
		{"internal", fmt.Errorf("%w: db", leads.ErrInternal), false, msgFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			call := svc.On("RegisterTraining", mock.Anything, mock.MatchedBy(func(r *models.TrainingRequest) bool {
				return r.ChildName == "Петя" && r.VisitType == ""
			}))
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&models.LeadResponse{ID: 1}, nil)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/register-training", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var body handlers.FormResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantSuccess, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			svc.AssertExpectations(t)
		})
	}
}
