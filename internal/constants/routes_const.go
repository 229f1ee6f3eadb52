package constants

// Service Routes are mounted below the configured base URL.
const (
	ProcessPath     = "/process"
	StatusPath      = "/status"
	HealthCheckPath = "/status/health_check"
)
