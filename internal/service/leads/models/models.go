package models

import "time"

// Request модели (сырые поля форм)

// QuickOrderRequest быстрая заявка: телефон и праздник
type QuickOrderRequest struct {
	Phone     string
	HolidayID string
}

// TrainingRequest запись на тренировку
type TrainingRequest struct {
	ParentName string
	Phone      string
	ChildName  string
	Age        string
	AgeGroup   string
	VisitType  string // пусто - пробное занятие
}

// Response модели

// LeadResponse созданный лид
type LeadResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
