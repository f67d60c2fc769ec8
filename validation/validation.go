// Package validation holds the stateless field-presence, cardinality and
// range checks applied to inbound submissions before any record is built.
package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Zharokiecoder/GITEX2/errors"
	"github.com/Zharokiecoder/GITEX2/types"
)

// ValidateRegistration checks the seven mandatory fields and the interest
// cardinality cap. It reports every missing field at once rather than the
// first one found. Email and phone formats are deliberately not checked
// beyond presence.
func ValidateRegistration(req *types.RegistrationCreate) *errors.AppError {
	var missing []string

	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("firstName", req.FirstName)
	check("lastName", req.LastName)
	check("email", req.Email)
	check("phone", req.Phone)
	check("location", req.Location)
	check("gender", req.Gender)
	check("channel", req.Channel)

	if len(missing) > 0 {
		return errors.MissingFields(missing)
	}

	if len(req.Interests) > types.MaxInterests {
		return errors.ValidationFailed(
			"too many interests",
			fmt.Sprintf("at most %d interests allowed, got %d", types.MaxInterests, len(req.Interests)),
		)
	}

	return nil
}

// ValidateFeedback checks that at least one feedback text survives trimming
// and coerces the rating to an integer in [1,5]. A nil rating is returned
// when the payload carries none.
func ValidateFeedback(req *types.FeedbackCreate) (*int, *errors.AppError) {
	f1 := strings.TrimSpace(req.Feedback1)
	f2 := strings.TrimSpace(req.Feedback2)

	if f1 == "" && f2 == "" {
		return nil, errors.ValidationFailed(
			"empty feedback",
			"at least one of feedback1 or feedback2 must be provided",
		)
	}

	rating, err := CoerceRating(req.Rating)
	if err != nil {
		return nil, err
	}

	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, errors.ValidationFailed(
			"rating out of range",
			fmt.Sprintf("rating must be between 1 and 5, got %d", *rating),
		)
	}

	return rating, nil
}

// CoerceRating turns the loosely typed rating value from the form frontend
// into an integer. JSON numbers and numeric strings are accepted; anything
// else is a validation failure rather than a silently malformed value.
func CoerceRating(v any) (*int, *errors.AppError) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case float64:
		// encoding/json decodes all JSON numbers as float64
		if val != float64(int(val)) {
			return nil, errors.ValidationFailed("invalid rating", "rating must be a whole number")
		}
		n := int(val)
		return &n, nil
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return nil, errors.ValidationFailed("invalid rating", "rating must be a whole number")
		}
		i := int(n)
		return &i, nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.ValidationFailed("invalid rating", fmt.Sprintf("rating %q is not a number", s))
		}
		return &n, nil
	default:
		return nil, errors.ValidationFailed("invalid rating", "rating must be a number")
	}
}

// CoerceConsent turns the loosely typed consent value into a boolean,
// defaulting to false for anything absent or unparseable.
func CoerceConsent(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return false
		}
		return b
	default:
		return false
	}
}

// NormalizeEmail lower-cases and trims an email for comparison purposes.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
