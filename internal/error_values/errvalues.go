package errorvalues

import "errors"

var (
	ErrGoalNotFound        = errors.New("goal doesn't exist")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("coaching service unavailable")
)
