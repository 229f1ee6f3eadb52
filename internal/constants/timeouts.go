package constants

import "time"

// Server Timeouts
const (
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
)

// Annotator Timeouts
const (
	DefaultStartupTimeout = 5 * time.Minute
	HealthCheckTimeout    = 5 * time.Second
)
