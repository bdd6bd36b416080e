package domain

import "time"

// Category категория праздников
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
}

// Holiday праздник (предложение), который можно забронировать
type Holiday struct {
	ID          int64
	CategoryID  int64
	Title       string
	Slug        string
	Image       string
	Duration    string // "2 часа", "4 часа", ...
	Description string
	Price       int // рубли
	MinAge      int
	MaxAge      int
	MaxChildren int
	Active      bool
	CreatedAt   time.Time

	// Денормализовано при чтении
	CategoryName string
	CategorySlug string
}

// AcceptsAge true, если возраст попадает в [MinAge, MaxAge]
func (h *Holiday) AcceptsAge(age int) bool {
	return age >= h.MinAge && age <= h.MaxAge
}

// TimeSlots слоты, которые предлагаются для праздника
func (h *Holiday) TimeSlots() []TimeSlot {
	return SlotsForDuration(h.Duration)
}

// HolidaysFilter фильтр каталога
type HolidaysFilter struct {
	CategoryID *int64
	Age        *int
	OnlyActive bool
}
