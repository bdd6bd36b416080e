package domain

import (
	"errors"
	"time"
)

var (
	// ErrUnknownAgeGroup неизвестная возрастная группа
	ErrUnknownAgeGroup = errors.New("domain: unknown age group")

	// ErrUnknownVisitType неизвестный тип посещения
	ErrUnknownVisitType = errors.New("domain: unknown visit type")
)

// QuickOrder быстрая заявка: только телефон, без слота и без емкости
type QuickOrder struct {
	ID        int64
	HolidayID int64
	Phone     string
	Processed bool
	CreatedAt time.Time

	HolidayTitle string
}

// AgeGroup группа тренировок
type AgeGroup string

const (
	AgeGroupUnder13 AgeGroup = "under_13"
	AgeGroup13To16  AgeGroup = "13_16"
	AgeGroupAdult   AgeGroup = "adult"
)

// ParseAgeGroup проверяет значение группы
func ParseAgeGroup(s string) (AgeGroup, error) {
	switch g := AgeGroup(s); g {
	case AgeGroupUnder13, AgeGroup13To16, AgeGroupAdult:
		return g, nil
	default:
		return "", ErrUnknownAgeGroup
	}
}

// Title название группы для бэк-офиса
func (g AgeGroup) Title() string {
	switch g {
	case AgeGroupUnder13:
		return "Дети до 13 лет"
	case AgeGroup13To16:
		return "Подростки 13-16 лет"
	case AgeGroupAdult:
		return "Взрослые 17+"
	default:
		return string(g)
	}
}

// VisitType тип посещения тренировки
type VisitType string

const (
	VisitTrial        VisitType = "trial"
	VisitSingle       VisitType = "single"
	VisitSubscription VisitType = "subscription"
)

// DefaultVisitType если тип не передан
const DefaultVisitType = VisitTrial

// ParseVisitType проверяет тип посещения, пустая строка - пробное занятие
func ParseVisitType(s string) (VisitType, error) {
	if s == "" {
		return DefaultVisitType, nil
	}
	switch v := VisitType(s); v {
	case VisitTrial, VisitSingle, VisitSubscription:
		return v, nil
	default:
		return "", ErrUnknownVisitType
	}
}

// Title название типа посещения для бэк-офиса
func (v VisitType) Title() string {
	switch v {
	case VisitTrial:
		return "Пробное занятие (бесплатно)"
	case VisitSingle:
		return "Разовое посещение (700 ₽)"
	case VisitSubscription:
		return "Абонемент 8 занятий (4 000 ₽)"
	default:
		return string(v)
	}
}

// TrainingRegistration заявка на тренировку
type TrainingRegistration struct {
	ID         int64
	ParentName string
	Phone      string
	ChildName  string
	ChildAge   int
	AgeGroup   AgeGroup
	VisitType  VisitType
	Processed  bool
	CreatedAt  time.Time
}

// LeadsFilter фильтр списков лидов
type LeadsFilter struct {
	Processed *bool
	Limit     uint64
}
