package leads

import "errors"

var (
	// ErrLeadNotFound возвращается, когда заявка не найдена
	ErrLeadNotFound = errors.New("leads.repository: lead not found")

	// ErrHolidayNotFound возвращается при нарушении внешнего ключа на праздник
	ErrHolidayNotFound = errors.New("leads.repository: holiday not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("leads.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("leads.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("leads.repository: failed to scan row")
)
