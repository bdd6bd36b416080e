package models

import (
	"errors"
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
)

var (
	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("start date is after end date")
)

// Kind вид заявки в бэк-офисе
type Kind string

const (
	KindFull     Kind = "full"
	KindQuick    Kind = "quick"
	KindTraining Kind = "training"
)

// Request модели

// ListFullOrdersRequest фильтр полных заявок
type ListFullOrdersRequest struct {
	Processed *bool   `json:"processed,omitempty"`
	StartDate *string `json:"startDate,omitempty"` // "2025-06-01"
	EndDate   *string `json:"endDate,omitempty"`   // "2025-06-30"
	Limit     uint64  `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListFullOrdersRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Processed: r.Processed,
		Limit:     r.Limit,
	}

	if r.StartDate != nil {
		d, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &d
	}
	if r.EndDate != nil {
		d, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.EndDate = &d
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return filter, ErrInvalidPeriod
	}

	return filter, nil
}

// ListLeadsRequest фильтр быстрых заявок и записей на тренировки
type ListLeadsRequest struct {
	Processed *bool  `json:"processed,omitempty"`
	Limit     uint64 `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListLeadsRequest) ToDomainFilter() domain.LeadsFilter {
	return domain.LeadsFilter{Processed: r.Processed, Limit: r.Limit}
}

// Response модели

// FullOrderResponse полная заявка
type FullOrderResponse struct {
	ID            int64     `json:"id"`
	HolidayID     int64     `json:"holidayId"`
	HolidayTitle  string    `json:"holidayTitle"`
	FullName      string    `json:"fullName"`
	Phone         string    `json:"phone"`
	Email         *string   `json:"email,omitempty"`
	ChildrenCount int       `json:"childrenCount"`
	AgeOfChildren string    `json:"ageOfChildren"`
	Notes         *string   `json:"notes,omitempty"`
	SelectedDate  string    `json:"selectedDate"` // "2025-06-07"
	SelectedTime  string    `json:"selectedTime"` // "10:00-12:00"
	HallNumber    int       `json:"hallNumber"`
	Processed     bool      `json:"processed"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FullOrderListResponse список полных заявок
type FullOrderListResponse struct {
	Orders []*FullOrderResponse `json:"orders"`
	Total  int                  `json:"total"`
}

// QuickOrderResponse быстрая заявка
type QuickOrderResponse struct {
	ID           int64     `json:"id"`
	HolidayID    int64     `json:"holidayId"`
	HolidayTitle string    `json:"holidayTitle"`
	Phone        string    `json:"phone"`
	Processed    bool      `json:"processed"`
	CreatedAt    time.Time `json:"createdAt"`
}

// QuickOrderListResponse список быстрых заявок
type QuickOrderListResponse struct {
	Orders []*QuickOrderResponse `json:"orders"`
	Total  int                   `json:"total"`
}

// TrainingResponse запись на тренировку
type TrainingResponse struct {
	ID             int64     `json:"id"`
	ParentName     string    `json:"parentName"`
	Phone          string    `json:"phone"`
	ChildName      string    `json:"childName"`
	ChildAge       int       `json:"childAge"`
	AgeGroup       string    `json:"ageGroup"`
	AgeGroupTitle  string    `json:"ageGroupTitle"`
	VisitType      string    `json:"visitType"`
	VisitTypeTitle string    `json:"visitTypeTitle"`
	Processed      bool      `json:"processed"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TrainingListResponse список записей на тренировки
type TrainingListResponse struct {
	Registrations []*TrainingResponse `json:"registrations"`
	Total         int                 `json:"total"`
}

// Converters

// FromDomainBooking конвертирует domain.Booking в FullOrderResponse
func FromDomainBooking(b *domain.Booking) *FullOrderResponse {
	return &FullOrderResponse{
		ID:            b.ID,
		HolidayID:     b.HolidayID,
		HolidayTitle:  b.HolidayTitle,
		FullName:      b.FullName,
		Phone:         b.Phone,
		Email:         b.Email,
		ChildrenCount: b.ChildrenCount,
		AgeOfChildren: b.AgeOfChildren,
		Notes:         b.Notes,
		SelectedDate:  b.SelectedDate.Format(domain.DateFormat),
		SelectedTime:  b.SelectedTime.String(),
		HallNumber:    int(b.HallNumber),
		Processed:     b.Processed,
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список заявок
func FromDomainBookingList(bookings []*domain.Booking) *FullOrderListResponse {
	orders := make([]*FullOrderResponse, 0, len(bookings))
	for _, b := range bookings {
		orders = append(orders, FromDomainBooking(b))
	}
	return &FullOrderListResponse{Orders: orders, Total: len(orders)}
}

// FromDomainQuickOrderList конвертирует список быстрых заявок
func FromDomainQuickOrderList(list []*domain.QuickOrder) *QuickOrderListResponse {
	orders := make([]*QuickOrderResponse, 0, len(list))
	for _, o := range list {
		orders = append(orders, &QuickOrderResponse{
			ID:           o.ID,
			HolidayID:    o.HolidayID,
			HolidayTitle: o.HolidayTitle,
			Phone:        o.Phone,
			Processed:    o.Processed,
			CreatedAt:    o.CreatedAt,
		})
	}
	return &QuickOrderListResponse{Orders: orders, Total: len(orders)}
}

// FromDomainTrainingList конвертирует список записей на тренировки
func FromDomainTrainingList(list []*domain.TrainingRegistration) *TrainingListResponse {
	regs := make([]*TrainingResponse, 0, len(list))
	for _, r := range list {
		regs = append(regs, &TrainingResponse{
			ID:             r.ID,
			ParentName:     r.ParentName,
			Phone:          r.Phone,
			ChildName:      r.ChildName,
			ChildAge:       r.ChildAge,
			AgeGroup:       string(r.AgeGroup),
			AgeGroupTitle:  r.AgeGroup.Title(),
			VisitType:      string(r.VisitType),
			VisitTypeTitle: r.VisitType.Title(),
			Processed:      r.Processed,
			CreatedAt:      r.CreatedAt,
		})
	}
	return &TrainingListResponse{Registrations: regs, Total: len(regs)}
}
