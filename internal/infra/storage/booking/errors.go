package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrHallTaken возвращается, когда зал в слоте уже занят (нарушен уникальный индекс)
	ErrHallTaken = errors.New("booking.repository: hall already taken for slot")

	// ErrHolidayNotFound возвращается при нарушении внешнего ключа на праздник
	ErrHolidayNotFound = errors.New("booking.repository: holiday not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
