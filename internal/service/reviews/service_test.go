package reviews

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/domain"
	reviewRepo "github.com/m04kA/partizan-booking/internal/infra/storage/review"
	"github.com/m04kA/partizan-booking/internal/service/reviews/models"
	"github.com/m04kA/partizan-booking/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, r *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, r)
	res, _ := args.Get(0).(*domain.Review)
	return res, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]*domain.Review)
	return res, args.Error(1)
}

func (m *mockRepo) Approve(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_Create(t *testing.T) {
	repo := &mockRepo{}
	name := gofakeit.Name()
	text := gofakeit.Sentence(12)

	repo.On("Create", mock.Anything, &domain.Review{Name: name, Text: text, Rating: 5}).
		Return(&domain.Review{ID: 1, Name: name, Text: text, Rating: 5, CreatedAt: time.Now()}, nil)

	resp, err := NewService(repo, logger.NewNop()).Create(context.Background(),
		&models.CreateReviewRequest{Name: name, Text: text, Rating: " 5 "})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.False(t, resp.Approved)
}

func TestService_Create_CollectsFieldErrors(t *testing.T) {
	svc := NewService(&mockRepo{}, logger.NewNop())

	_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		Name:   "  ",
		Text:   strings.Repeat("а", domain.MaxReviewTextLength+1),
		Rating: "6",
	})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, map[string]string{
		"name":   msgNameRequired,
		"text":   msgTextTooLong,
		"rating": msgRatingRange,
	}, vErr.Fields)
}

func TestService_Create_RatingNotANumber(t *testing.T) {
	_, err := NewService(&mockRepo{}, logger.NewNop()).Create(context.Background(),
		&models.CreateReviewRequest{Name: "Анна", Text: "Все понравилось", Rating: "five"})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "rating")
	assert.Len(t, vErr.Fields, 1)
}

func TestService_ListApproved_DefaultLimit(t *testing.T) {
	repo := &mockRepo{}
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ReviewsFilter) bool {
		return f.Approved != nil && *f.Approved && f.Limit == DefaultPublicLimit
	})).Return([]*domain.Review{{ID: 2, Approved: true}, {ID: 1, Approved: true}}, nil)

	resp, err := NewService(repo, logger.NewNop()).ListApproved(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(2), resp.Reviews[0].ID)
}

func TestService_ApproveAndDelete_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Approve", mock.Anything, int64(9)).Return(reviewRepo.ErrReviewNotFound)
	repo.On("Delete", mock.Anything, int64(9)).Return(errors.New("connection reset"))
	svc := NewService(repo, logger.NewNop())

	assert.ErrorIs(t, svc.Approve(context.Background(), 9), ErrReviewNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrInternal)
}
