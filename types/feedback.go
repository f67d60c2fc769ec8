package types

import "time"

// RedactedName is the fixed placeholder shown in place of a submitter
// identity on the admin feedback view. No identity is collected at the
// feedback stage, so there is nothing real to show.
const RedactedName = "Anonymous"

// Feedback represents a stored post-event comment/rating record.
type Feedback struct {
	ID        string    `json:"id"`
	Feedback1 string    `json:"feedback1,omitempty"`
	Feedback2 string    `json:"feedback2,omitempty"`
	Rating    *int      `json:"rating,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// FeedbackCreate represents the request body for submitting feedback.
// Rating is declared as any because the form frontend sends it either as a
// JSON number or as a numeric string; validation coerces it to an integer.
type FeedbackCreate struct {
	Feedback1 string `json:"feedback1"`
	Feedback2 string `json:"feedback2"`
	Rating    any    `json:"rating"`
}

// FeedbackView is the redacted, display-ready projection of a Feedback
// record served to admins. The original fields stay retrievable alongside a
// combined display text.
type FeedbackView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Feedback1   string    `json:"feedback1,omitempty"`
	Feedback2   string    `json:"feedback2,omitempty"`
	DisplayText string    `json:"displayText"`
	Rating      *int      `json:"rating,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
