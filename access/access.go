package access

import (
	"fmt"

	"github.com/viant/gnuplot/errs"
)

// Mode bits accepted by Check.
const (
	Exists  = 0
	Execute = 1
	Write   = 2
	Read    = 4
)

// Check reports whether name is accessible in mode. Modes outside 0..7 are
// rejected with errs.ErrInvalidArgument.
func Check(name string, mode int) (bool, error) {
	if mode < 0 || mode > 7 {
		return false, fmt.Errorf("%w: mode %d has to be an integer between 0 and 7", errs.ErrInvalidArgument, mode)
	}
	return check(name, uint32(mode)), nil
}

// Available returns nil when name exists and is readable, otherwise an error
// wrapping errs.ErrNotFound.
func Available(name string) error {
	if ok, _ := Check(name, Exists); !ok {
		return fmt.Errorf("%w: file %q does not exist", errs.ErrNotFound, name)
	}
	if ok, _ := Check(name, Read); !ok {
		return fmt.Errorf("%w: no read permission for file %q", errs.ErrNotFound, name)
	}
	return nil
}
