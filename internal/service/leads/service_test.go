package leads

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/domain"
	catalogRepo "github.com/m04kA/partizan-booking/internal/infra/storage/catalog"
	"github.com/m04kA/partizan-booking/internal/service/leads/models"
	"github.com/m04kA/partizan-booking/pkg/logger"
)

type mockLeads struct {
	mock.Mock
}

func (m *mockLeads) CreateQuickOrder(ctx context.Context, o *domain.QuickOrder) (*domain.QuickOrder, error) {
	args := m.Called(ctx, o)
	res, _ := args.Get(0).(*domain.QuickOrder)
	return res, args.Error(1)
}

func (m *mockLeads) CreateTraining(ctx context.Context, r *domain.TrainingRegistration) (*domain.TrainingRegistration, error) {
	args := m.Called(ctx, r)
	res, _ := args.Get(0).(*domain.TrainingRegistration)
	return res, args.Error(1)
}

type mockHolidays struct {
	mock.Mock
}

func (m *mockHolidays) GetHolidayByID(ctx context.Context, id int64) (*domain.Holiday, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Holiday)
	return res, args.Error(1)
}

type countingRecorder map[string]int

func (c countingRecorder) LeadCreated(kind string) { c[kind]++ }

func TestService_CreateQuickOrder(t *testing.T) {
	leads := &mockLeads{}
	holidays := &mockHolidays{}
	rec := countingRecorder{}
	phone := gofakeit.Phone()

	holidays.On("GetHolidayByID", mock.Anything, int64(3)).Return(&domain.Holiday{ID: 3, Active: true}, nil)
	leads.On("CreateQuickOrder", mock.Anything, &domain.QuickOrder{HolidayID: 3, Phone: phone}).
		Return(&domain.QuickOrder{ID: 11, CreatedAt: time.Now()}, nil)

	resp, err := NewService(leads, holidays, rec, logger.NewNop()).
		CreateQuickOrder(context.Background(), &models.QuickOrderRequest{Phone: " " + phone + " ", HolidayID: "3"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, 1, rec[kindQuickOrder])
}

func TestService_CreateQuickOrder_Errors(t *testing.T) {
	holidays := &mockHolidays{}
	holidays.On("GetHolidayByID", mock.Anything, int64(404)).Return(nil, catalogRepo.ErrHolidayNotFound)
	holidays.On("GetHolidayByID", mock.Anything, int64(5)).Return(&domain.Holiday{ID: 5, Active: false}, nil)
	svc := NewService(&mockLeads{}, holidays, nil, logger.NewNop())

	tests := []struct {
		name    string
		req     models.QuickOrderRequest
		wantErr error
	}{
		{"no phone", models.QuickOrderRequest{HolidayID: "1"}, ErrMissingFields},
		{"no holiday", models.QuickOrderRequest{Phone: "+7"}, ErrMissingFields},
		{"bad holiday id", models.QuickOrderRequest{Phone: "+7", HolidayID: "x"}, ErrInvalidInput},
		{"unknown holiday", models.QuickOrderRequest{Phone: "+7", HolidayID: "404"}, ErrHolidayNotFound},
		{"inactive holiday", models.QuickOrderRequest{Phone: "+7", HolidayID: "5"}, ErrHolidayNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateQuickOrder(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_RegisterTraining_DefaultsToTrial(t *testing.T) {
	leads := &mockLeads{}
	leads.On("CreateTraining", mock.Anything, mock.MatchedBy(func(r *domain.TrainingRegistration) bool {
		return r.VisitType == domain.VisitTrial && r.AgeGroup == domain.AgeGroup13To16 && r.ChildAge == 14
	})).Return(&domain.TrainingRegistration{ID: 2, AgeGroup: domain.AgeGroup13To16, VisitType: domain.VisitTrial}, nil)

	resp, err := NewService(leads, &mockHolidays{}, nil, logger.NewNop()).RegisterTraining(context.Background(),
		&models.TrainingRequest{
			ParentName: gofakeit.Name(),
			Phone:      "+79990001122",
			ChildName:  gofakeit.FirstName(),
			Age:        "14",
			AgeGroup:   "13_16",
		})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
	leads.AssertExpectations(t)
}

func TestService_RegisterTraining_Validation(t *testing.T) {
	svc := NewService(&mockLeads{}, &mockHolidays{}, nil, logger.NewNop())
	valid := func() *models.TrainingRequest {
		return &models.TrainingRequest{ParentName: "Ольга", Phone: "+7", ChildName: "Петя", Age: "9", AgeGroup: "under_13"}
	}

	tests := []struct {
		name    string
		mutate  func(r *models.TrainingRequest)
		wantErr error
	}{
		{"no child name", func(r *models.TrainingRequest) { r.ChildName = " " }, ErrMissingFields},
		{"no age group", func(r *models.TrainingRequest) { r.AgeGroup = "" }, ErrMissingFields},
		{"age not a number", func(r *models.TrainingRequest) { r.Age = "девять" }, ErrInvalidInput},
		{"unknown group", func(r *models.TrainingRequest) { r.AgeGroup = "toddlers" }, ErrInvalidInput},
		{"unknown visit type", func(r *models.TrainingRequest) { r.VisitType = "yearly" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := svc.RegisterTraining(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
