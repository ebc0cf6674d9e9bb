package errutil

import "github.com/go-logr/logr"

// LogError logs non-critical errors with context.
func LogError(log logr.Logger, context string, err error) {
	if err != nil {
		log.Error(err, context)
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
