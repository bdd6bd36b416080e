package create_full_order

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/partizan-booking/internal/domain"
)

var validate = validator.New()

// limits ограничения длины полей (как в схеме БД)
// max повторяют domain.MaxFullNameLength, MaxPhoneLength, MaxAgeOfChildrenLength и MaxNotesLength,
// совпадение проверяет TestLimits_MatchDomain
type limits struct {
	FullName      string `validate:"max=200"`
	Phone         string `validate:"max=20"`
	Email         string `validate:"omitempty,email,max=254"`
	AgeOfChildren string `validate:"max=200"`
	Notes         string `validate:"max=1000"`
}

// checkRequired возвращает MissingFieldsError со всеми пустыми полями в порядке формы
func checkRequired(req *Request) error {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", req.FullName},
		{"phone", req.Phone},
		{"children_count", req.ChildrenCount},
		{"age_of_children", req.AgeOfChildren},
		{"holiday_id", req.HolidayID},
		{"selected_date", req.SelectedDate},
		{"selected_time", req.SelectedTime},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// parseRequest проверяет формат полей и разбирает их
func parseRequest(req *Request, loc *time.Location) (*booking, error) {
	if err := checkRequired(req); err != nil {
		return nil, err
	}

	b := &booking{
		fullName:      strings.TrimSpace(req.FullName),
		phone:         strings.TrimSpace(req.Phone),
		ageOfChildren: strings.TrimSpace(req.AgeOfChildren),
	}

	err := validate.Struct(limits{
		FullName:      b.fullName,
		Phone:         b.phone,
		Email:         strings.TrimSpace(req.Email),
		AgeOfChildren: b.ageOfChildren,
		Notes:         strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	count, err := strconv.Atoi(strings.TrimSpace(req.ChildrenCount))
	if err != nil || count <= 0 {
		return nil, fmt.Errorf("%w: children_count must be a positive integer", ErrInvalidInput)
	}
	b.childrenCount = count

	holidayID, err := strconv.ParseInt(strings.TrimSpace(req.HolidayID), 10, 64)
	if err != nil || holidayID <= 0 {
		return nil, fmt.Errorf("%w: holiday_id must be a positive integer", ErrInvalidInput)
	}
	b.holidayID = holidayID

	b.date, err = time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.SelectedDate), loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.SelectedDate)
	}

	b.slot, err = domain.ParseTimeSlot(req.SelectedTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if email := strings.TrimSpace(req.Email); email != "" {
		b.email = &email
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		b.notes = &notes
	}

	return b, nil
}
