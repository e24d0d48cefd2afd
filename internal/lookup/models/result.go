package models

import (
	"lookout/internal/upstream"
)

// ResultStatus tags the outcome of one upstream fetch.
type ResultStatus string

const (
	// ResultOK carries a usable value.
	ResultOK ResultStatus = "ok"
	// ResultDegraded means the call failed to produce a meaningful answer:
	// transport failure, timeout, server error, malformed body or an open circuit.
	ResultDegraded ResultStatus = "degraded"
	// ResultUnavailable means the upstream answered that the resource is absent.
	ResultUnavailable ResultStatus = "unavailable"
)

// Result is a tagged upstream outcome. Value is only meaningful when Status
// is ResultOK; the other states never carry data shaped like a real value.
type Result[T any] struct {
	Status   ResultStatus
	Value    T
	Reason   string
	Messages []string
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] {
	return Result[T]{Status: ResultOK, Value: v}
}

// Degraded records a failed fetch.
func Degraded[T any](reason string) Result[T] {
	return Result[T]{Status: ResultDegraded, Reason: reason}
}

// Unavailable records an upstream answer that the resource is absent.
func Unavailable[T any](reason string, messages []string) Result[T] {
	return Result[T]{Status: ResultUnavailable, Reason: reason, Messages: messages}
}

// FromError classifies err into Degraded or Unavailable.
func FromError[T any](err error) Result[T] {
	if upstream.IsAnswered(err) {
		return Unavailable[T](err.Error(), upstream.Messages(err))
	}
	return Degraded[T](err.Error())
}

// Get returns the value and whether it is usable.
func (r Result[T]) Get() (T, bool) {
	return r.Value, r.Status == ResultOK
}

// IsOK reports whether a value is present.
func (r Result[T]) IsOK() bool { return r.Status == ResultOK }

// IsDegraded reports whether the fetch failed.
func (r Result[T]) IsDegraded() bool { return r.Status == ResultDegraded }

// IsUnavailable reports whether the upstream answered "absent".
func (r Result[T]) IsUnavailable() bool { return r.Status == ResultUnavailable }

// Answered reports whether the upstream gave a definitive answer either way.
func (r Result[T]) Answered() bool {
	return r.Status == ResultOK || r.Status == ResultUnavailable
}
