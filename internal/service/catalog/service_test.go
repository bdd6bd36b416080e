package catalog

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/domain"
	catalogRepo "github.com/m04kA/partizan-booking/internal/infra/storage/catalog"
	"github.com/m04kA/partizan-booking/internal/service/catalog/models"
	"github.com/m04kA/partizan-booking/pkg/logger"
	"github.com/m04kA/partizan-booking/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, c)
	res, _ := args.Get(0).(*domain.Category)
	return res, args.Error(1)
}

func (m *mockRepo) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*domain.Category)
	return res, args.Error(1)
}

func (m *mockRepo) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	res, _ := args.Get(0).(*domain.Category)
	return res, args.Error(1)
}

func (m *mockRepo) CreateHoliday(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	args := m.Called(ctx, h)
	res, _ := args.Get(0).(*domain.Holiday)
	return res, args.Error(1)
}

func (m *mockRepo) GetHolidayBySlug(ctx context.Context, slug string) (*domain.Holiday, error) {
	args := m.Called(ctx, slug)
	res, _ := args.Get(0).(*domain.Holiday)
	return res, args.Error(1)
}

func (m *mockRepo) ListHolidays(ctx context.Context, filter domain.HolidaysFilter) ([]*domain.Holiday, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]*domain.Holiday)
	return res, args.Error(1)
}

func (m *mockRepo) SetHolidayActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func TestService_ListHolidays_CategoryAndAge(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetCategoryBySlug", mock.Anything, "quests").Return(&domain.Category{ID: 2, Slug: "quests"}, nil)
	repo.On("ListHolidays", mock.Anything, domain.HolidaysFilter{
		CategoryID: ptr.Ptr(int64(2)),
		Age:        ptr.Ptr(7),
		OnlyActive: true,
	}).Return([]*domain.Holiday{{ID: 1, Title: "Квест", Duration: "2 часа", Active: true}}, nil)

	resp, err := NewService(repo, logger.NewNop()).ListHolidays(context.Background(),
		&models.ListHolidaysRequest{CategorySlug: "quests", Age: ptr.Ptr(7)})

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Holidays[0].TimeSlots, len(domain.TwoHourSlots))
	repo.AssertExpectations(t)
}

func TestService_ListHolidays_Errors(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetCategoryBySlug", mock.Anything, "nope").Return(nil, catalogRepo.ErrCategoryNotFound)
	svc := NewService(repo, logger.NewNop())

	_, err := svc.ListHolidays(context.Background(), &models.ListHolidaysRequest{CategorySlug: "nope"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = svc.ListHolidays(context.Background(), &models.ListHolidaysRequest{Age: ptr.Ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetHoliday_HidesInactive(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetHolidayBySlug", mock.Anything, "old").Return(&domain.Holiday{ID: 1, Active: false}, nil)
	repo.On("GetHolidayBySlug", mock.Anything, "live").Return(&domain.Holiday{ID: 2, Active: true, Duration: "5 часов"}, nil)
	svc := NewService(repo, logger.NewNop())

	_, err := svc.GetHoliday(context.Background(), "old")
	assert.ErrorIs(t, err, ErrHolidayNotFound)

	h, err := svc.GetHoliday(context.Background(), "live")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00-14:00", "14:00-18:00", "18:00-22:00"}, h.TimeSlots)
}

func TestService_CreateHoliday_Defaults(t *testing.T) {
	repo := &mockRepo{}
	repo.On("CreateHoliday", mock.Anything, mock.MatchedBy(func(h *domain.Holiday) bool {
		return h.MinAge == domain.DefaultMinAge &&
			h.MaxAge == domain.DefaultMaxAge &&
			h.MaxChildren == domain.DefaultMaxChildren &&
			h.Active
	})).Return(&domain.Holiday{ID: 10, Slug: "pirates"}, nil)

	resp, err := NewService(repo, logger.NewNop()).CreateHoliday(context.Background(), &models.CreateHolidayRequest{
		CategoryID: 1,
		Title:      gofakeit.Sentence(3),
		Slug:       "pirates",
		Duration:   "2 часа",
		Price:      12000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestService_CreateHoliday_Validation(t *testing.T) {
	svc := NewService(&mockRepo{}, logger.NewNop())

	tests := []struct {
		name string
		req  models.CreateHolidayRequest
	}{
		{"no title", models.CreateHolidayRequest{CategoryID: 1, Slug: "a", Duration: "2 часа"}},
		{"bad slug", models.CreateHolidayRequest{CategoryID: 1, Title: "A", Slug: "Пираты!", Duration: "2 часа"}},
		{"negative price", models.CreateHolidayRequest{CategoryID: 1, Title: "A", Slug: "a", Duration: "2 часа", Price: -1}},
		{"ages swapped", models.CreateHolidayRequest{CategoryID: 1, Title: "A", Slug: "a", Duration: "2 часа", MinAge: 10, MaxAge: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateHoliday(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_CreateCategory_DuplicateSlug(t *testing.T) {
	repo := &mockRepo{}
	repo.On("CreateCategory", mock.Anything, mock.Anything).Return(nil, catalogRepo.ErrDuplicateSlug)

	_, err := NewService(repo, logger.NewNop()).CreateCategory(context.Background(),
		&models.CreateCategoryRequest{Name: "Квесты", Slug: "quests"})

	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestService_SetHolidayActive_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("SetHolidayActive", mock.Anything, int64(4), false).Return(catalogRepo.ErrHolidayNotFound)

	err := NewService(repo, logger.NewNop()).SetHolidayActive(context.Background(), 4, false)

	assert.ErrorIs(t, err, ErrHolidayNotFound)
}

func TestNewService_RegistersSlugValidation(t *testing.T) {
	var svc *Service
	require.NotPanics(t, func() { svc = NewService(&mockRepo{}, logger.NewNop()) })

	assert.NoError(t, svc.validate.Var("pirate-party-2", "slug"))
	assert.Error(t, svc.validate.Var("Pirate Party", "slug"))
}
