package get_available_dates

import "github.com/m04kA/partizan-booking/internal/domain"

// Request модель запроса занятости
type Request struct {
	HolidayID *int64 // опционально: добавить в ответ слоты праздника
}

// Response занятость слотов начиная с сегодняшнего дня
type Response struct {
	Booked map[string][]domain.TimeSlot // дата -> слоты с хотя бы одной заявкой
	Full   map[string][]domain.TimeSlot // дата -> слоты, где заняты оба зала
	Slots  []domain.TimeSlot            // слоты, которые предлагает праздник (если задан)
}
