package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/partizan-booking/internal/domain"
	reviewRepo "github.com/m04kA/partizan-booking/internal/infra/storage/review"
	"github.com/m04kA/partizan-booking/internal/service/reviews/models"
	"github.com/m04kA/partizan-booking/pkg/ptr"
)

// DefaultPublicLimit сколько одобренных отзывов отдается на сайт
const DefaultPublicLimit = 20

// Service сервис отзывов
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create сохраняет отзыв; на сайте он появится после одобрения
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	review, err := validateReview(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, review)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: review id=%d, rating=%d saved for moderation", created.ID, created.Rating)
	return models.FromDomainReview(created), nil
}

// ListApproved опубликованные отзывы, сначала свежие
func (s *Service) ListApproved(ctx context.Context, limit uint64) (*models.ReviewListResponse, error) {
	if limit == 0 {
		limit = DefaultPublicLimit
	}
	list, err := s.repo.List(ctx, domain.ReviewsFilter{Approved: ptr.Ptr(true), Limit: limit})
	if err != nil {
		s.logger.Error("ListApproved: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListApproved - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviewList(list), nil
}

// ListAll отзывы для модерации; approved == nil - все
func (s *Service) ListAll(ctx context.Context, approved *bool) (*models.ReviewListResponse, error) {
	list, err := s.repo.List(ctx, domain.ReviewsFilter{Approved: approved})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviewList(list), nil
}

// Approve публикует отзыв
func (s *Service) Approve(ctx context.Context, id int64) error {
	if err := s.repo.Approve(ctx, id); err != nil {
		return s.mapRepoError("Approve", id, err)
	}
	s.logger.Info("Approve: review id=%d approved", id)
	return nil
}

// Delete удаляет отзыв
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}
	s.logger.Info("Delete: review id=%d deleted", id)
	return nil
}

func (s *Service) mapRepoError(method string, id int64, err error) error {
	if errors.Is(err, reviewRepo.ErrReviewNotFound) {
		s.logger.Warn("%s: review id=%d not found", method, id)
		return ErrReviewNotFound
	}
	s.logger.Error("%s: repository error for id=%d: %v", method, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
}

