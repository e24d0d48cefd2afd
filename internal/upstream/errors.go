// Package upstream holds what the external service clients share: the
// normalized failure taxonomy and the response helpers that produce it.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lookout/pkg/platform/sentinel"
)

// ErrorCategory defines the normalized failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout indicates the upstream took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the upstream returned invalid/malformed data
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates the session cookie or token was refused
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorOutage indicates the upstream is unreachable or failing (5xx)
	ErrorOutage ErrorCategory = "outage"

	// ErrorRateLimited indicates too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorRejected indicates the upstream answered with an error payload
	ErrorRejected ErrorCategory = "rejected"

	// ErrorNotFound indicates the requested record doesn't exist
	ErrorNotFound ErrorCategory = "not_found"
)

// Error wraps upstream failures with normalized categorization. Messages
// carries the upstream's own error strings when it sent any.
type Error struct {
	Category   ErrorCategory
	Source     string
	Endpoint   string
	Status     int
	Messages   []string
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("upstream %s [%s]", e.Source, e.Category)
	if e.Status != 0 {
		msg += fmt.Sprintf(" status %d", e.Status)
	}
	if len(e.Messages) > 0 {
		msg += ": " + strings.Join(e.Messages, "; ")
	}
	if e.Underlying != nil {
		msg += ": " + e.Underlying.Error()
	}
	return msg
}

// Unwrap supports error unwrapping
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is maps categories onto the shared sentinel errors.
func (e *Error) Is(target error) bool {
	switch target {
	case sentinel.ErrNotFound:
		return e.Category == ErrorNotFound
	case sentinel.ErrTimeout:
		return e.Category == ErrorTimeout
	case sentinel.ErrUnavailable:
		return e.Category == ErrorOutage
	case sentinel.ErrRateLimited:
		return e.Category == ErrorRateLimited
	}
	return false
}

// NewError creates a new normalized upstream error
func NewError(category ErrorCategory, source, endpoint string, underlying error) *Error {
	return &Error{
		Category:   category,
		Source:     source,
		Endpoint:   endpoint,
		Underlying: underlying,
	}
}

// GetCategory extracts the error category from an error. Context deadline
// errors are reported as timeouts even when they were not wrapped.
func GetCategory(err error) ErrorCategory {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Category
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTimeout
	}
	return ErrorOutage
}

// Messages returns the upstream error strings carried by err, if any.
func Messages(err error) []string {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Messages
	}
	return nil
}

// IsAnswered reports whether the upstream produced a definitive answer
// (an error payload or a not-found) rather than failing to respond usefully.
func IsAnswered(err error) bool {
	switch GetCategory(err) {
	case ErrorRejected, ErrorNotFound:
		return true
	}
	return false
}

// CategoryForStatus maps an HTTP status code onto the taxonomy.
func CategoryForStatus(status int) ErrorCategory {
	switch {
	case status == http.StatusNotFound:
		return ErrorNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrorAuthentication
	case status == http.StatusTooManyRequests:
		return ErrorRateLimited
	case status >= 500:
		return ErrorOutage
	case status >= 400:
		return ErrorRejected
	}
	return ErrorBadData
}

// TransportError classifies a failed round trip.
func TransportError(ctx context.Context, source, endpoint string, err error) *Error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return NewError(ErrorTimeout, source, endpoint, err)
	}
	return NewError(ErrorOutage, source, endpoint, err)
}
