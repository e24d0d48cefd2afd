package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Upstream clients and stores return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: the account or record does not exist
// - ErrUnavailable: service or resource temporarily unavailable
// - ErrTimeout: the call exceeded its deadline
// - ErrBadInput: the caller supplied input that cannot be used
// - ErrRateLimited: the caller is over its allowance
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrTimeout     = errors.New("timeout")
	ErrBadInput    = errors.New("bad input")
	ErrRateLimited = errors.New("rate limited")
)
