package domain

import "time"

// Booking полная заявка на праздник: занимает один зал в одном слоте
// Сама строка бронирования и есть запись реестра слотов
type Booking struct {
	ID            int64
	HolidayID     int64
	FullName      string
	Phone         string
	Email         *string
	ChildrenCount int
	AgeOfChildren string
	Notes         *string
	SelectedDate  time.Time
	SelectedTime  TimeSlot
	HallNumber    Hall
	Processed     bool
	CreatedAt     time.Time

	// Денормализовано при чтении для бэк-офиса
	HolidayTitle string
}

// BookingsFilter фильтр списка заявок для бэк-офиса
type BookingsFilter struct {
	Processed *bool      // nil - все
	StartDate *time.Time // selected_date >= StartDate
	EndDate   *time.Time // selected_date <= EndDate
	Limit     uint64     // 0 - без ограничения
}
