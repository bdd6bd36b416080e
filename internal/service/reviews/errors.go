package reviews

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidInput возвращается при ошибках валидации отзыва
	ErrInvalidInput = errors.New("reviews: invalid input data")

	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("reviews: review not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews: internal error")
)

// ValidationError ошибки по полям формы: поле -> сообщение
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "reviews: invalid fields: " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
