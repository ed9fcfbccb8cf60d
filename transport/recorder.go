package transport

import (
	"context"
	"fmt"

	"github.com/viant/gnuplot/errs"
)

// Recorder keeps commands in memory instead of sending them anywhere. It
// backs dry runs and tests.
type Recorder struct {
	Commands []string
	Closed   bool
	// CloseErr, when set, is returned by Close.
	CloseErr error
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Write(command string) error {
	if r.Closed {
		return fmt.Errorf("%w: pipe is closed", errs.ErrSetup)
	}
	r.Commands = append(r.Commands, command)
	return nil
}

func (r *Recorder) Close(ctx context.Context) error {
	if r.Closed {
		return nil
	}
	r.Closed = true
	return r.CloseErr
}

// Last returns the most recent command or an empty string.
func (r *Recorder) Last() string {
	if len(r.Commands) == 0 {
		return ""
	}
	return r.Commands[len(r.Commands)-1]
}
