package get_available_dates

import (
	"sort"

	"github.com/m04kA/partizan-booking/internal/domain"
)

// groupBookedSlots раскладывает занятость по датам
// Метки внутри даты без повторов и в порядке domain.AllTimeSlots
func groupBookedSlots(booked []domain.BookedSlot) (map[string][]domain.TimeSlot, map[string][]domain.TimeSlot) {
	bookedByDate := make(map[string][]domain.TimeSlot)
	fullByDate := make(map[string][]domain.TimeSlot)
	seen := make(map[string]map[domain.TimeSlot]bool)

	for _, b := range booked {
		if b.Bookings <= 0 || !b.Slot.IsValid() {
			continue
		}
		if seen[b.Date] == nil {
			seen[b.Date] = make(map[domain.TimeSlot]bool)
		}
		if seen[b.Date][b.Slot] {
			continue
		}
		seen[b.Date][b.Slot] = true

		bookedByDate[b.Date] = append(bookedByDate[b.Date], b.Slot)
		if b.IsFull() {
			fullByDate[b.Date] = append(fullByDate[b.Date], b.Slot)
		}
	}

	for _, m := range []map[string][]domain.TimeSlot{bookedByDate, fullByDate} {
		for _, slots := range m {
			sort.Slice(slots, func(i, j int) bool { return slots[i].Order() < slots[j].Order() })
		}
	}

	return bookedByDate, fullByDate
}
