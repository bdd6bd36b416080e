package create_full_order

import (
	"time"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// Request сырые поля формы полной заявки
type Request struct {
	FullName      string
	Phone         string
	Email         string // опционально
	ChildrenCount string
	AgeOfChildren string
	HolidayID     string
	SelectedDate  string // YYYY-MM-DD
	SelectedTime  string // метка слота
	Notes         string // опционально
}

// Response созданная заявка с назначенным залом
type Response struct {
	ID        int64
	HolidayID int64
	Date      time.Time
	Slot      domain.TimeSlot
	Hall      domain.Hall
	CreatedAt time.Time
}

// Config параметры бронирования
type Config struct {
	Hours            domain.BusinessHours
	Location         *time.Location // часовой пояс площадки
	MaxAdmitAttempts int            // повторы при гонке за зал
}

// DefaultMaxAdmitAttempts количество попыток закрепить зал по умолчанию
const DefaultMaxAdmitAttempts = 3

// booking разобранный запрос
type booking struct {
	fullName      string
	phone         string
	email         *string
	childrenCount int
	ageOfChildren string
	holidayID     int64
	date          time.Time
	slot          domain.TimeSlot
	notes         *string
}
