package types

type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "UP"
	HealthStatusDown     HealthStatus = "DOWN"
	HealthStatusDegraded HealthStatus = "DEGRADED"
)

type HealthComponent struct {
	Status  HealthStatus `json:"status"`
	Details string       `json:"details,omitempty"`
}

type HealthCheck struct {
	Status        HealthStatus               `json:"status"`
	Components    map[string]HealthComponent `json:"components"`
	Registrations int                        `json:"registrations"`
	Feedbacks     int                        `json:"feedbacks"`
	Version       string                     `json:"version"`
	Timestamp     string                     `json:"timestamp"`
}
