package ledger

import "errors"

var (
	// ErrSlotFull возвращается, когда оба зала в слоте заняты
	ErrSlotFull = errors.New("ledger: slot is full")

	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("ledger: date is in the past")

	// ErrInvalidTimeSlot возвращается для неизвестной метки слота
	ErrInvalidTimeSlot = errors.New("ledger: invalid time slot")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("ledger: internal error")
)
