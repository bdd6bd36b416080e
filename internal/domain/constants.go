package domain

// HallsCount количество залов: емкость любого слота
const HallsCount = 2

// Часы работы по умолчанию, [open, close)
const (
	DefaultWeekdayOpenHour  = 9
	DefaultWeekdayCloseHour = 21
	DefaultWeekendOpenHour  = 10
	DefaultWeekendCloseHour = 22
)

// Ограничения полей
const (
	MaxFullNameLength      = 200
	MaxPhoneLength         = 20
	MaxAgeOfChildrenLength = 200
	MaxNotesLength         = 1000
	MaxPersonNameLength    = 200
	MaxReviewNameLength    = 100
	MaxReviewTextLength    = 2000
	MinRating              = 1
	MaxRating              = 5
	MaxChildAge            = 99
)

// Значения праздника по умолчанию
const (
	DefaultMinAge      = 3
	DefaultMaxAge      = 12
	DefaultMaxChildren = 10
)

const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
