package models

import (
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// Request модели

// ListHolidaysRequest фильтр публичного каталога
type ListHolidaysRequest struct {
	CategorySlug string `json:"category,omitempty"`
	Age          *int   `json:"age,omitempty"`
}

// CreateCategoryRequest создание категории
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100,slug"`
	Description string `json:"description"`
}

// CreateHolidayRequest создание праздника
// Нулевые возрасты и количество детей заменяются значениями по умолчанию
type CreateHolidayRequest struct {
	CategoryID  int64  `json:"categoryId" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"required,max=200,slug"`
	Image       string `json:"image" validate:"max=255"`
	Duration    string `json:"duration" validate:"required,max=50"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"gte=0"`
	MinAge      int    `json:"minAge" validate:"gte=0,lte=99"`
	MaxAge      int    `json:"maxAge" validate:"gte=0,lte=99"`
	MaxChildren int    `json:"maxChildren" validate:"gte=0"`
	Active      *bool  `json:"active,omitempty"`
}

// ToDomain конвертирует request в domain.Holiday
func (r *CreateHolidayRequest) ToDomain() *domain.Holiday {
	h := &domain.Holiday{
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Slug:        r.Slug,
		Image:       r.Image,
		Duration:    r.Duration,
		Description: r.Description,
		Price:       r.Price,
		MinAge:      r.MinAge,
		MaxAge:      r.MaxAge,
		MaxChildren: r.MaxChildren,
		Active:      true,
	}
	if h.MinAge == 0 {
		h.MinAge = domain.DefaultMinAge
	}
	if h.MaxAge == 0 {
		h.MaxAge = domain.DefaultMaxAge
	}
	if h.MaxChildren == 0 {
		h.MaxChildren = domain.DefaultMaxChildren
	}
	if r.Active != nil {
		h.Active = *r.Active
	}
	return h
}

// Response модели

// CategoryResponse категория
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// HolidayResponse праздник
type HolidayResponse struct {
	ID           int64     `json:"id"`
	CategoryID   int64     `json:"categoryId"`
	CategoryName string    `json:"categoryName,omitempty"`
	CategorySlug string    `json:"categorySlug,omitempty"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Image        string    `json:"image,omitempty"`
	Duration     string    `json:"duration"`
	Description  string    `json:"description,omitempty"`
	Price        int       `json:"price"`
	MinAge       int       `json:"minAge"`
	MaxAge       int       `json:"maxAge"`
	MaxChildren  int       `json:"maxChildren"`
	Active       bool      `json:"active"`
	TimeSlots    []string  `json:"timeSlots"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HolidayListResponse список праздников
type HolidayListResponse struct {
	Holidays []*HolidayResponse `json:"holidays"`
	Total    int                `json:"total"`
}

// Converters

// FromDomainCategory конвертирует domain.Category
func FromDomainCategory(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

// FromDomainHoliday конвертирует domain.Holiday
func FromDomainHoliday(h *domain.Holiday) *HolidayResponse {
	slots := h.TimeSlots()
	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.String())
	}

	return &HolidayResponse{
		ID:           h.ID,
		CategoryID:   h.CategoryID,
		CategoryName: h.CategoryName,
		CategorySlug: h.CategorySlug,
		Title:        h.Title,
		Slug:         h.Slug,
		Image:        h.Image,
		Duration:     h.Duration,
		Description:  h.Description,
		Price:        h.Price,
		MinAge:       h.MinAge,
		MaxAge:       h.MaxAge,
		MaxChildren:  h.MaxChildren,
		Active:       h.Active,
		TimeSlots:    labels,
		CreatedAt:    h.CreatedAt,
	}
}

// FromDomainHolidayList конвертирует список праздников
func FromDomainHolidayList(list []*domain.Holiday) *HolidayListResponse {
	holidays := make([]*HolidayResponse, 0, len(list))
	for _, h := range list {
		holidays = append(holidays, FromDomainHoliday(h))
	}
	return &HolidayListResponse{Holidays: holidays, Total: len(holidays)}
}
