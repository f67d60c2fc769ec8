package types

// SubmissionResponse is the success envelope returned for accepted
// submissions.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}

// ErrorResponse is the failure envelope returned for rejected requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StatsResponse carries the admin dashboard tallies. Admins is a constant
// placeholder rather than a real tenant count.
type StatsResponse struct {
	Registrations int `json:"registrations"`
	Feedbacks     int `json:"feedbacks"`
	Admins        int `json:"admins"`
}

// LoginResponse carries the static admin token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
