package domain

import "time"

// Review отзыв, публикуется только после одобрения
type Review struct {
	ID        int64
	Name      string
	Text      string
	Rating    int
	Approved  bool
	CreatedAt time.Time
}

// ReviewsFilter фильтр отзывов
type ReviewsFilter struct {
	Approved *bool
	Limit    uint64
}
