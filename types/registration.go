package types

import "time"

// MaxInterests is the cardinality cap on a registration's interest list.
const MaxInterests = 2

// Registration represents a stored event sign-up record.
type Registration struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Location      string    `json:"location"`
	Gender        string    `json:"gender"`
	Channel       string    `json:"channel"`
	Interests     []string  `json:"interests"`
	OtherInterest string    `json:"otherInterest,omitempty"`
	Consent       bool      `json:"consent"`
	Timestamp     time.Time `json:"timestamp"`
}

// RegistrationCreate represents the request body for submitting a
// registration. Consent is declared as any because the form frontend sends
// it either as a boolean or as a string; anything unparseable defaults to
// false.
type RegistrationCreate struct {
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Location      string   `json:"location"`
	Gender        string   `json:"gender"`
	Channel       string   `json:"channel"`
	Interests     []string `json:"interests"`
	OtherInterest string   `json:"otherInterest"`
	Consent       any      `json:"consent"`
}
