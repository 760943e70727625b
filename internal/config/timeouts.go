package config

import (
	"os"
	"time"
)

// Timeouts bounds the skill server transport. Provider calls have no
// timeout of their own; a turn is bounded by Request.
type Timeouts struct {
	Request  time.Duration // Maximum duration of one skill request
	Read     time.Duration // HTTP read timeout
	Shutdown time.Duration // Grace period for in-flight requests on shutdown
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - CLOUDLAUNCH_REQUEST_TIMEOUT (default: 8s)
//   - CLOUDLAUNCH_READ_TIMEOUT (default: 5s)
//   - CLOUDLAUNCH_SHUTDOWN_TIMEOUT (default: 10s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Request:  parseDuration("CLOUDLAUNCH_REQUEST_TIMEOUT", 8*time.Second),
		Read:     parseDuration("CLOUDLAUNCH_READ_TIMEOUT", 5*time.Second),
		Shutdown: parseDuration("CLOUDLAUNCH_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// parseDuration parses a positive duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
