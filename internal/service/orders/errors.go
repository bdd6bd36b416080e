package orders

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заявка не найдена
	ErrOrderNotFound = errors.New("orders: order not found")

	// ErrUnknownKind возвращается для неизвестного вида заявки
	ErrUnknownKind = errors.New("orders: unknown order kind")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("orders: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("orders: internal error")
)
