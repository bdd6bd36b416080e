package create_full_order

import (
	"errors"
	"strings"
)

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля (см. MissingFieldsError)
	ErrMissingFields = errors.New("create_full_order: required fields are missing")

	// ErrInvalidInput возвращается при некорректных значениях полей
	ErrInvalidInput = errors.New("create_full_order: invalid input data")

	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("create_full_order: invalid date")

	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("create_full_order: date is in the past")

	// ErrHolidayNotFound возвращается, когда праздник не найден или скрыт
	ErrHolidayNotFound = errors.New("create_full_order: holiday not found")

	// ErrOutsideBusinessHours возвращается, когда слот вне часов работы
	ErrOutsideBusinessHours = errors.New("create_full_order: outside business hours")

	// ErrSlotFull возвращается, когда оба зала в слоте заняты
	ErrSlotFull = errors.New("create_full_order: slot is full")

	// ErrSlotContention возвращается, когда зал так и не удалось закрепить за отведенные попытки
	ErrSlotContention = errors.New("create_full_order: slot is contended")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_full_order: internal error")
)

// MissingFieldsError перечисляет все незаполненные поля разом
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}
