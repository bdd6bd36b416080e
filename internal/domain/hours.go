package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBusinessHours некорректная настройка часов работы
var ErrInvalidBusinessHours = errors.New("domain: invalid business hours")

// BusinessHours часы работы площадки: отдельно будни и выходные
// Интервалы полуоткрытые: [Open, Close)
type BusinessHours struct {
	WeekdayOpen  int
	WeekdayClose int
	WeekendOpen  int
	WeekendClose int
}

// DefaultBusinessHours будни 9-21, выходные 10-22
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		WeekdayOpen:  DefaultWeekdayOpenHour,
		WeekdayClose: DefaultWeekdayCloseHour,
		WeekendOpen:  DefaultWeekendOpenHour,
		WeekendClose: DefaultWeekendCloseHour,
	}
}

// Contains true, если слот, начинающийся в hour, попадает в часы работы на дату
func (h BusinessHours) Contains(date time.Time, hour int) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	open, closing := h.WeekdayOpen, h.WeekdayClose
	if IsWeekend(date) {
		open, closing = h.WeekendOpen, h.WeekendClose
	}
	return hour >= open && hour < closing
}

// Validate проверяет, что интервалы непустые и лежат в пределах суток
func (h BusinessHours) Validate() error {
	check := func(name string, open, closing int) error {
		if open < 0 || closing > 24 || open >= closing {
			return fmt.Errorf("%w: %s [%d, %d)", ErrInvalidBusinessHours, name, open, closing)
		}
		return nil
	}
	if err := check("weekday", h.WeekdayOpen, h.WeekdayClose); err != nil {
		return err
	}
	return check("weekend", h.WeekendOpen, h.WeekendClose)
}

// IsWeekend суббота или воскресенье
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsDateInPast true, если дата раньше сегодняшнего дня в часовом поясе now
func IsDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// StartOfDay полночь дня now в его часовом поясе
func StartOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
