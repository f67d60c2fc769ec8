package validation

import (
	"testing"

	"github.com/Zharokiecoder/GITEX2/errors"
	"github.com/Zharokiecoder/GITEX2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() *types.RegistrationCreate {
	return &types.RegistrationCreate{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+971501234567",
		Location:  "Dubai",
		Gender:    "female",
		Channel:   "linkedin",
		Interests: []string{"ai", "cloud"},
	}
}

func TestValidateRegistration_Valid(t *testing.T) {
	assert.Nil(t, ValidateRegistration(validRegistration()))
}

func TestValidateRegistration_MissingFields(t *testing.T) {
	req := validRegistration()
	req.Email = ""
	req.Phone = "   "
	req.Channel = ""

	err := ValidateRegistration(req)
	require.NotNil(t, err)
	assert.Equal(t, errors.ValidationError, err.Type)
	// Exactly the missing fields, no more
	assert.Equal(t, "email,phone,channel", err.Detail)
}

func TestValidateRegistration_EachMandatoryField(t *testing.T) {
	cases := []struct {
		field string
		mut   func(*types.RegistrationCreate)
	}{
		{"firstName", func(r *types.RegistrationCreate) { r.FirstName = "" }},
		{"lastName", func(r *types.RegistrationCreate) { r.LastName = "" }},
		{"email", func(r *types.RegistrationCreate) { r.Email = "" }},
		{"phone", func(r *types.RegistrationCreate) { r.Phone = "" }},
		{"location", func(r *types.RegistrationCreate) { r.Location = "" }},
		{"gender", func(r *types.RegistrationCreate) { r.Gender = "" }},
		{"channel", func(r *types.RegistrationCreate) { r.Channel = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validRegistration()
			tc.mut(req)
			err := ValidateRegistration(req)
			require.NotNil(t, err)
			assert.Equal(t, tc.field, err.Detail)
		})
	}
}

func TestValidateRegistration_TooManyInterests(t *testing.T) {
	req := validRegistration()
	req.Interests = []string{"ai", "cloud", "iot"}

	err := ValidateRegistration(req)
	require.NotNil(t, err)
	assert.Equal(t, "too many interests", err.Message)
}

func TestValidateRegistration_NoFormatChecks(t *testing.T) {
	req := validRegistration()
	req.Email = "not-an-email"
	req.Phone = "not-a-phone"

	assert.Nil(t, ValidateRegistration(req))
}

func TestValidateFeedback_EmptyFeedback(t *testing.T) {
	_, err := ValidateFeedback(&types.FeedbackCreate{Feedback1: "  ", Feedback2: ""})
	require.NotNil(t, err)
	assert.Equal(t, "empty feedback", err.Message)
}

func TestValidateFeedback_OneSideSuffices(t *testing.T) {
	rating, err := ValidateFeedback(&types.FeedbackCreate{Feedback2: "Loved the demos"})
	require.Nil(t, err)
	assert.Nil(t, rating)
}

func TestValidateFeedback_RatingBounds(t *testing.T) {
	for _, ok := range []float64{1, 5} {
		rating, err := ValidateFeedback(&types.FeedbackCreate{Feedback1: "x", Rating: ok})
		require.Nil(t, err)
		require.NotNil(t, rating)
		assert.Equal(t, int(ok), *rating)
	}

	for _, bad := range []float64{0, 6, -1} {
		_, err := ValidateFeedback(&types.FeedbackCreate{Feedback1: "x", Rating: bad})
		require.NotNil(t, err)
		assert.Equal(t, "rating out of range", err.Message)
	}
}

func TestCoerceRating_NumericString(t *testing.T) {
	rating, err := CoerceRating("4")
	require.Nil(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 4, *rating)
}

func TestCoerceRating_NonNumericString(t *testing.T) {
	_, err := CoerceRating("great")
	require.NotNil(t, err)
	assert.Equal(t, errors.ValidationError, err.Type)
}

func TestCoerceRating_Fractional(t *testing.T) {
	_, err := CoerceRating(4.5)
	require.NotNil(t, err)
}

func TestCoerceRating_AbsentForms(t *testing.T) {
	for _, v := range []any{nil, ""} {
		rating, err := CoerceRating(v)
		require.Nil(t, err)
		assert.Nil(t, rating)
	}
}

func TestCoerceConsent(t *testing.T) {
	assert.True(t, CoerceConsent(true))
	assert.True(t, CoerceConsent("true"))
	assert.False(t, CoerceConsent("maybe"))
	assert.False(t, CoerceConsent(nil))
	assert.False(t, CoerceConsent(42))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
}
