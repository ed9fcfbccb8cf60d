package gnuplot

import "github.com/viant/gnuplot/errs"

// Error taxonomy; see package errs. Every error returned by this module wraps
// one of these, so callers branch with errors.Is.
var (
	ErrInvalidArgument = errs.ErrInvalidArgument
	ErrNotFound        = errs.ErrNotFound
	ErrSetup           = errs.ErrSetup
	ErrResourceLimit   = errs.ErrResourceLimit
)
