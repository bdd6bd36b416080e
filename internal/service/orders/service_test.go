package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/domain"
	bookingRepo "github.com/m04kA/partizan-booking/internal/infra/storage/booking"
	leadsRepo "github.com/m04kA/partizan-booking/internal/infra/storage/leads"
	"github.com/m04kA/partizan-booking/internal/service/orders/models"
	"github.com/m04kA/partizan-booking/pkg/logger"
	"github.com/m04kA/partizan-booking/pkg/ptr"
)

type mockBookings struct {
	mock.Mock
}

func (m *mockBookings) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookings) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Booking)
	return list, args.Error(1)
}

func (m *mockBookings) MarkProcessed(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockLeads struct {
	mock.Mock
}

func (m *mockLeads) ListQuickOrders(ctx context.Context, filter domain.LeadsFilter) ([]*domain.QuickOrder, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.QuickOrder)
	return list, args.Error(1)
}

func (m *mockLeads) MarkQuickOrderProcessed(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockLeads) ListTrainings(ctx context.Context, filter domain.LeadsFilter) ([]*domain.TrainingRegistration, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.TrainingRegistration)
	return list, args.Error(1)
}

func (m *mockLeads) MarkTrainingProcessed(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_ListFullOrders(t *testing.T) {
	bookings := &mockBookings{}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	bookings.On("List", mock.Anything, domain.BookingsFilter{
		Processed: ptr.Ptr(false),
		StartDate: &start,
		EndDate:   &end,
	}).Return([]*domain.Booking{{
		ID:           1,
		SelectedDate: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
		SelectedTime: domain.Slot10To14,
		HallNumber:   domain.HallSecond,
	}}, nil)

	svc := NewService(bookings, &mockLeads{}, logger.NewNop())
	resp, err := svc.ListFullOrders(context.Background(), &models.ListFullOrdersRequest{
		Processed: ptr.Ptr(false),
		StartDate: ptr.Ptr("2025-06-01"),
		EndDate:   ptr.Ptr("2025-06-30"),
	})

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "2025-06-07", resp.Orders[0].SelectedDate)
	assert.Equal(t, "10:00-14:00", resp.Orders[0].SelectedTime)
	assert.Equal(t, 2, resp.Orders[0].HallNumber)
}

func TestService_ListFullOrders_InvalidFilter(t *testing.T) {
	svc := NewService(&mockBookings{}, &mockLeads{}, logger.NewNop())

	_, err := svc.ListFullOrders(context.Background(), &models.ListFullOrdersRequest{StartDate: ptr.Ptr("01.06.2025")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListFullOrders(context.Background(), &models.ListFullOrdersRequest{
		StartDate: ptr.Ptr("2025-07-01"),
		EndDate:   ptr.Ptr("2025-06-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_MarkProcessed(t *testing.T) {
	bookings := &mockBookings{}
	leads := &mockLeads{}
	bookings.On("MarkProcessed", mock.Anything, int64(1)).Return(nil)
	bookings.On("MarkProcessed", mock.Anything, int64(2)).Return(bookingRepo.ErrBookingNotFound)
	leads.On("MarkQuickOrderProcessed", mock.Anything, int64(3)).Return(leadsRepo.ErrLeadNotFound)
	leads.On("MarkTrainingProcessed", mock.Anything, int64(4)).Return(errors.New("db down"))

	svc := NewService(bookings, leads, logger.NewNop())
	ctx := context.Background()

	assert.NoError(t, svc.MarkProcessed(ctx, models.KindFull, 1))
	assert.ErrorIs(t, svc.MarkProcessed(ctx, models.KindFull, 2), ErrOrderNotFound)
	assert.ErrorIs(t, svc.MarkProcessed(ctx, models.KindQuick, 3), ErrOrderNotFound)
	assert.ErrorIs(t, svc.MarkProcessed(ctx, models.KindTraining, 4), ErrInternal)
	assert.ErrorIs(t, svc.MarkProcessed(ctx, models.Kind("review"), 5), ErrUnknownKind)
}

func TestService_ListTrainings_Titles(t *testing.T) {
	leads := &mockLeads{}
	leads.On("ListTrainings", mock.Anything, domain.LeadsFilter{Limit: 50}).
		Return([]*domain.TrainingRegistration{{
			ID:        1,
			AgeGroup:  domain.AgeGroupAdult,
			VisitType: domain.VisitSingle,
		}}, nil)

	svc := NewService(&mockBookings{}, leads, logger.NewNop())
	resp, err := svc.ListTrainings(context.Background(), &models.ListLeadsRequest{Limit: 50})

	require.NoError(t, err)
	assert.Equal(t, "Взрослые 17+", resp.Registrations[0].AgeGroupTitle)
	assert.Equal(t, "single", resp.Registrations[0].VisitType)
}

func TestService_GetFullOrder_NotFound(t *testing.T) {
	bookings := &mockBookings{}
	bookings.On("GetByID", mock.Anything, int64(9)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := NewService(bookings, &mockLeads{}, logger.NewNop()).GetFullOrder(context.Background(), 9)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}
