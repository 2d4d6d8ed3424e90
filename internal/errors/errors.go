// Package errors defines sentinel errors used across multiple packages.
package errors

import "errors"

// ErrCancelled is returned when the user declines to proceed at a confirmation gate.
var ErrCancelled = errors.New("cancelled by user")

// ErrInputClosed is returned when interactive input ends before a valid answer is read.
var ErrInputClosed = errors.New("input closed")
