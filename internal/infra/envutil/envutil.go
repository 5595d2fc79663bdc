// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strconv"
	"strings"
)

// First returns the first non-blank value among the given variables.
// Example: First("SWS_LOG_LEVEL", "LOG_LEVEL").
func First(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

// Bool parses a boolean variable. ok is false when it is unset or invalid.
func Bool(key string) (value bool, ok bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return parsed, true
}
