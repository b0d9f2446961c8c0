// Package domain defines domain-level errors for the markets feature.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidLimit indicates that a non-positive page size was requested.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// FetchError is the single failure kind of the market data boundary.
// It covers non-2xx responses, transport failures, timeouts and undecodable bodies.
type FetchError struct {
	StatusCode int    // HTTP status code; 0 when no response was received
	Status     string // HTTP status text (e.g., "Service Unavailable")
	Timeout    bool   // true when the request deadline expired
	Err        error  // underlying cause, if any
}

// Error formats the failure the way the dashboard shows it as detail text.
func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("failed to fetch markets: %d %s", e.StatusCode, e.Status)
	case e.Timeout:
		return "failed to fetch markets: request timed out"
	case e.Err != nil:
		return fmt.Sprintf("failed to fetch markets: %v", e.Err)
	default:
		return "failed to fetch markets"
	}
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reports whether err is (or wraps) a FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
