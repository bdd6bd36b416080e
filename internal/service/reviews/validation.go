package reviews

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/partizan-booking/internal/domain"
	"github.com/m04kA/partizan-booking/internal/service/reviews/models"
)

// Сообщения ошибок полей формы
const (
	msgNameRequired = "Укажите имя"
	msgNameTooLong  = "Имя слишком длинное"
	msgTextRequired = "Напишите отзыв"
	msgTextTooLong  = "Отзыв слишком длинный"
	msgRatingRange  = "Оценка должна быть от 1 до 5"
)

// fieldMessages поле формы -> тег валидатора -> сообщение
var fieldMessages = map[string]map[string]string{
	"name":   {"required": msgNameRequired, "max": msgNameTooLong},
	"text":   {"required": msgTextRequired, "max": msgTextTooLong},
	"rating": {"min": msgRatingRange, "max": msgRatingRange},
}

var validate = newValidator()

// newValidator называет поля по тегу form, чтобы ключи ошибок совпадали с полями формы
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

// reviewForm поля отзыва после trim
// max повторяют domain.MaxReviewNameLength, domain.MaxReviewTextLength и диапазон оценки
type reviewForm struct {
	Name   string `form:"name" validate:"required,max=100"`
	Text   string `form:"text" validate:"required,max=2000"`
	Rating int    `form:"rating" validate:"min=1,max=5"`
}

// validateReview собирает ошибки по всем полям сразу
func validateReview(req *models.CreateReviewRequest) (*domain.Review, error) {
	form := reviewForm{
		Name: strings.TrimSpace(req.Name),
		Text: strings.TrimSpace(req.Text),
	}
	// нечисловая оценка остается 0 и не проходит min
	form.Rating, _ = strconv.Atoi(strings.TrimSpace(req.Rating))

	if err := validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, &ValidationError{Fields: map[string]string{"form": err.Error()}}
		}

		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			msg, ok := fieldMessages[fe.Field()][fe.Tag()]
			if !ok {
				msg = fe.Error()
			}
			fields[fe.Field()] = msg
		}
		return nil, &ValidationError{Fields: fields}
	}

	return &domain.Review{Name: form.Name, Text: form.Text, Rating: form.Rating}, nil
}
