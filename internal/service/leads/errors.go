package leads

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля
	ErrMissingFields = errors.New("leads: required fields are missing")

	// ErrInvalidInput возвращается при некорректных значениях полей
	ErrInvalidInput = errors.New("leads: invalid input data")

	// ErrHolidayNotFound возвращается, когда праздник не найден или скрыт
	ErrHolidayNotFound = errors.New("leads: holiday not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("leads: internal error")
)
