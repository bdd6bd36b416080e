package get_available_dates

import (
	"strconv"

	"github.com/m04kA/partizan-booking/internal/domain"
	getAvailableDates "github.com/m04kA/partizan-booking/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Booked map[string][]string `json:"booked"`
	Full   map[string][]string `json:"full"`
	Slots  []string            `json:"slots"`
}

// ToUseCaseRequest holiday_id необязателен
func ToUseCaseRequest(holidayIDStr string) (*getAvailableDates.Request, error) {
	req := &getAvailableDates.Request{}
	if holidayIDStr == "" {
		return req, nil
	}

	holidayID, err := strconv.ParseInt(holidayIDStr, 10, 64)
	if err != nil {
		return nil, err
	}
	req.HolidayID = &holidayID
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	return &AvailableDatesResponse{
		Booked: labelsByDate(resp.Booked),
		Full:   labelsByDate(resp.Full),
		Slots:  labels(resp.Slots),
	}
}

func labelsByDate(in map[string][]domain.TimeSlot) map[string][]string {
	out := make(map[string][]string, len(in))
	for date, slots := range in {
		out[date] = labels(slots)
	}
	return out
}

func labels(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}
