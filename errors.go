package pprimes

import "errors"

// Common errors returned by Find. All of them are reported before any
// buffer is allocated or any worker is started.
var (
	ErrMaxValueTooSmall   = errors.New("max value must be >= 2")
	ErrMaxValueTooLarge   = errors.New("max value exceeds the result buffer limit")
	ErrInvalidWorkerCount = errors.New("worker count must be >= 1")
)
