// Package errs holds the error taxonomy shared by every gnuplot package.
// Callers detect conditions with errors.Is; messages carry the details.
package errs

import "errors"

var (
	// ErrInvalidArgument is returned for empty or mismatched sample
	// collections, out-of-range modes and malformed settings.
	ErrInvalidArgument = errors.New("gnuplot: invalid argument")

	// ErrNotFound is returned when the executable or a referenced file is
	// missing or unreadable.
	ErrNotFound = errors.New("gnuplot: not found")

	// ErrSetup is returned when the pipe to the external program cannot be
	// opened or written, or the session is no longer valid.
	ErrSetup = errors.New("gnuplot: setup failure")

	// ErrResourceLimit is returned when a session created too many
	// temporary files.
	ErrResourceLimit = errors.New("gnuplot: resource limit")
)
