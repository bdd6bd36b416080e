package catalog

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("catalog: category not found")

	// ErrHolidayNotFound возвращается, когда праздник не найден (или скрыт для публичной части)
	ErrHolidayNotFound = errors.New("catalog: holiday not found")

	// ErrDuplicateSlug возвращается, когда slug уже занят
	ErrDuplicateSlug = errors.New("catalog: slug already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
