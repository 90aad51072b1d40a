package service

import "errors"

// Common service errors
var (
	// ErrUnprocessable marks a well-formed request that fails semantic validation
	ErrUnprocessable = errors.New("unprocessable")
)
