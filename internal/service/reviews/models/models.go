package models

import (
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// Request модели

// CreateReviewRequest форма отзыва, поля в сыром виде
type CreateReviewRequest struct {
	Name   string
	Text   string
	Rating string
}

// Response модели

// ReviewResponse отзыв
type ReviewResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewListResponse список отзывов
type ReviewListResponse struct {
	Reviews []*ReviewResponse `json:"reviews"`
	Total   int               `json:"total"`
}

// FromDomainReview конвертирует domain.Review
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		Name:      r.Name,
		Text:      r.Text,
		Rating:    r.Rating,
		Approved:  r.Approved,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список отзывов
func FromDomainReviewList(list []*domain.Review) *ReviewListResponse {
	reviews := make([]*ReviewResponse, 0, len(list))
	for _, r := range list {
		reviews = append(reviews, FromDomainReview(r))
	}
	return &ReviewListResponse{Reviews: reviews, Total: len(reviews)}
}
