package reviews

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/domain"
	"github.com/m04kA/partizan-booking/internal/service/reviews/models"
)

func TestValidateReview_LimitsMatchDomain(t *testing.T) {
	review, err := validateReview(&models.CreateReviewRequest{
		Name:   strings.Repeat("Я", domain.MaxReviewNameLength),
		Text:   strings.Repeat("ы", domain.MaxReviewTextLength),
		Rating: strconv.Itoa(domain.MinRating),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MinRating, review.Rating)

	_, err = validateReview(&models.CreateReviewRequest{
		Name:   strings.Repeat("Я", domain.MaxReviewNameLength+1),
		Text:   "Отлично",
		Rating: strconv.Itoa(domain.MaxRating + 1),
	})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, map[string]string{"name": msgNameTooLong, "rating": msgRatingRange}, vErr.Fields)
}

func TestValidateReview_MissingEverything(t *testing.T) {
	_, err := validateReview(&models.CreateReviewRequest{})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, map[string]string{
		"name":   msgNameRequired,
		"text":   msgTextRequired,
		"rating": msgRatingRange,
	}, vErr.Fields)
}
