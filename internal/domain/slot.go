package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TimeSlot метка временного слота праздника ("10:00-12:00")
// Набор меток закрытый: любые другие значения не принимаются
type TimeSlot string

const (
	Slot10To12 TimeSlot = "10:00-12:00"
	Slot12To14 TimeSlot = "12:00-14:00"
	Slot14To16 TimeSlot = "14:00-16:00"
	Slot16To18 TimeSlot = "16:00-18:00"
	Slot18To20 TimeSlot = "18:00-20:00"

	Slot10To14 TimeSlot = "10:00-14:00"
	Slot14To18 TimeSlot = "14:00-18:00"
	Slot18To22 TimeSlot = "18:00-22:00"
)

// ErrUnknownTimeSlot возвращается для метки не из списка
var ErrUnknownTimeSlot = errors.New("domain: unknown time slot")

// TwoHourSlots слоты для двухчасовых праздников
var TwoHourSlots = []TimeSlot{Slot10To12, Slot12To14, Slot14To16, Slot16To18, Slot18To20}

// FourHourSlots слоты для длинных (4-5 часов) праздников
var FourHourSlots = []TimeSlot{Slot10To14, Slot14To18, Slot18To22}

// AllTimeSlots все допустимые метки в порядке отображения
func AllTimeSlots() []TimeSlot {
	all := make([]TimeSlot, 0, len(TwoHourSlots)+len(FourHourSlots))
	all = append(all, TwoHourSlots...)
	return append(all, FourHourSlots...)
}

// ParseTimeSlot проверяет метку и возвращает слот
func ParseTimeSlot(s string) (TimeSlot, error) {
	slot := TimeSlot(strings.TrimSpace(s))
	if !slot.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTimeSlot, s)
	}
	return slot, nil
}

// IsValid true для меток из закрытого списка
func (s TimeSlot) IsValid() bool {
	return s.Order() >= 0
}

// Order позиция слота в AllTimeSlots, -1 для неизвестной метки
func (s TimeSlot) Order() int {
	switch s {
	case Slot10To12:
		return 0
	case Slot12To14:
		return 1
	case Slot14To16:
		return 2
	case Slot16To18:
		return 3
	case Slot18To20:
		return 4
	case Slot10To14:
		return 5
	case Slot14To18:
		return 6
	case Slot18To22:
		return 7
	default:
		return -1
	}
}

// StartHour час начала слота, -1 для неизвестной метки
func (s TimeSlot) StartHour() int {
	switch s {
	case Slot10To12, Slot10To14:
		return 10
	case Slot12To14:
		return 12
	case Slot14To16, Slot14To18:
		return 14
	case Slot16To18:
		return 16
	case Slot18To20, Slot18To22:
		return 18
	default:
		return -1
	}
}

// DurationHours длительность слота в часах, 0 для неизвестной метки
func (s TimeSlot) DurationHours() int {
	switch s {
	case Slot10To12, Slot12To14, Slot14To16, Slot16To18, Slot18To20:
		return 2
	case Slot10To14, Slot14To18, Slot18To22:
		return 4
	default:
		return 0
	}
}

func (s TimeSlot) String() string {
	return string(s)
}

// longHolidayMarkers признаки длинного праздника в описании длительности
var longHolidayMarkers = []string{"4 часа", "4.5 часа", "4,5 часа", "5 часов"}

// SlotsForDuration подбирает набор слотов по описанию длительности праздника
// "4 часа", "4.5 часа", "5 часов" -> четырехчасовые слоты, всё остальное -> двухчасовые
func SlotsForDuration(duration string) []TimeSlot {
	d := strings.ToLower(duration)
	for _, marker := range longHolidayMarkers {
		if strings.Contains(d, marker) {
			return FourHourSlots
		}
	}
	return TwoHourSlots
}

// Hall номер зала
type Hall int

const (
	HallFirst  Hall = 1
	HallSecond Hall = 2
)

// IsValid true для 1 и 2
func (h Hall) IsValid() bool {
	return h == HallFirst || h == HallSecond
}

// Other второй зал из пары
func (h Hall) Other() Hall {
	if h == HallFirst {
		return HallSecond
	}
	return HallFirst
}

// BookedSlot занятость одного слота на дату
type BookedSlot struct {
	Date     string // YYYY-MM-DD
	Slot     TimeSlot
	Bookings int
}

// IsFull true, если заняты оба зала
func (b BookedSlot) IsFull() bool {
	return b.Bookings >= HallsCount
}
