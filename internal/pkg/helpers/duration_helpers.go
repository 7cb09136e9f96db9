package helpers

import "time"

// ParseDuration parses a duration string, falling back to a default on error
func ParseDuration(value string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
