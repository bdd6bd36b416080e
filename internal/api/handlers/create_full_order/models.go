package create_full_order

import (
	"net/http"

	createFullOrder "github.com/m04kA/partizan-booking/internal/usecase/create_full_order"
)

// Поля формы
const (
	fieldFullName      = "full_name"
	fieldPhone         = "phone"
	fieldEmail         = "email"
	fieldChildrenCount = "children_count"
	fieldAgeOfChildren = "age_of_children"
	fieldHolidayID     = "holiday_id"
	fieldSelectedDate  = "selected_date"
	fieldSelectedTime  = "selected_time"
	fieldNotes         = "notes"
)

// FullOrderResponse HTTP response model
type FullOrderResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ID         int64  `json:"id,omitempty"`
	HallNumber int    `json:"hall_number,omitempty"`
}

// ToUseCaseRequest собирает запрос use case из разобранной формы
func ToUseCaseRequest(r *http.Request) *createFullOrder.Request {
	return &createFullOrder.Request{
		FullName:      r.PostFormValue(fieldFullName),
		Phone:         r.PostFormValue(fieldPhone),
		Email:         r.PostFormValue(fieldEmail),
		ChildrenCount: r.PostFormValue(fieldChildrenCount),
		AgeOfChildren: r.PostFormValue(fieldAgeOfChildren),
		HolidayID:     r.PostFormValue(fieldHolidayID),
		SelectedDate:  r.PostFormValue(fieldSelectedDate),
		SelectedTime:  r.PostFormValue(fieldSelectedTime),
		Notes:         r.PostFormValue(fieldNotes),
	}
}
