package leads

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/partizan-booking/internal/domain"
	"github.com/m04kA/partizan-booking/internal/service/leads/models"
)

var validate = validator.New()

// Теги max повторяют domain.MaxPhoneLength и domain.MaxPersonNameLength (колонки VARCHAR в схеме),
// TestValidationLimitsMatchDomain следит, чтобы они не разошлись

// quickOrderForm поля быстрой заявки после trim
type quickOrderForm struct {
	Phone     string `validate:"required,max=20"`
	HolidayID string `validate:"required"`
}

// trainingForm поля записи на тренировку после trim
type trainingForm struct {
	ParentName string `validate:"required,max=200"`
	Phone      string `validate:"required,max=20"`
	ChildName  string `validate:"required,max=200"`
	Age        string `validate:"required"`
	AgeGroup   string `validate:"required,oneof=under_13 13_16 adult"`
	VisitType  string `validate:"omitempty,oneof=trial single subscription"`
}

// checkForm переводит ошибки валидатора в ошибки сервиса:
// любое пустое обязательное поле -> ErrMissingFields, остальное -> ErrInvalidInput
func checkForm(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return ErrMissingFields
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// parseQuickOrder проверяет форму быстрой заявки
func parseQuickOrder(req *models.QuickOrderRequest) (*domain.QuickOrder, error) {
	form := quickOrderForm{
		Phone:     strings.TrimSpace(req.Phone),
		HolidayID: strings.TrimSpace(req.HolidayID),
	}
	if err := checkForm(form); err != nil {
		return nil, err
	}

	holidayID, err := strconv.ParseInt(form.HolidayID, 10, 64)
	if err != nil || holidayID <= 0 {
		return nil, fmt.Errorf("%w: holiday_id must be a positive integer", ErrInvalidInput)
	}

	return &domain.QuickOrder{HolidayID: holidayID, Phone: form.Phone}, nil
}

// parseTraining проверяет форму записи на тренировку
func parseTraining(req *models.TrainingRequest) (*domain.TrainingRegistration, error) {
	form := trainingForm{
		ParentName: strings.TrimSpace(req.ParentName),
		Phone:      strings.TrimSpace(req.Phone),
		ChildName:  strings.TrimSpace(req.ChildName),
		Age:        strings.TrimSpace(req.Age),
		AgeGroup:   strings.TrimSpace(req.AgeGroup),
		VisitType:  strings.TrimSpace(req.VisitType),
	}
	if err := checkForm(form); err != nil {
		return nil, err
	}

	age, err := strconv.Atoi(form.Age)
	if err != nil {
		return nil, fmt.Errorf("%w: age must be an integer", ErrInvalidInput)
	}
	if err := validate.Var(age, fmt.Sprintf("min=0,max=%d", domain.MaxChildAge)); err != nil {
		return nil, fmt.Errorf("%w: age must be in 0..%d", ErrInvalidInput, domain.MaxChildAge)
	}

	reg := &domain.TrainingRegistration{
		ParentName: form.ParentName,
		Phone:      form.Phone,
		ChildName:  form.ChildName,
		ChildAge:   age,
	}
	if reg.AgeGroup, err = domain.ParseAgeGroup(form.AgeGroup); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if reg.VisitType, err = domain.ParseVisitType(form.VisitType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return reg, nil
}
