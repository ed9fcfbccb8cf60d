// Package transport carries newline-terminated gnuplot commands to the
// external program. A Pipe is written to by exactly one session.
package transport

import "context"

// Pipe is the one-directional channel to gnuplot.
type Pipe interface {
	// Write sends one command; the pipe appends the line terminator.
	Write(command string) error
	// Close releases the channel. Closing twice is a no-op.
	Close(ctx context.Context) error
}

var (
	_ Pipe = (*Process)(nil)
	_ Pipe = (*Script)(nil)
	_ Pipe = (*Recorder)(nil)
)
