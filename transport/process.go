package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/viant/gnuplot/errs"
)

// PersistFlag keeps plot windows open after gnuplot's input is closed.
const PersistFlag = "-persist"

// Process writes commands to the standard input of a running gnuplot.
type Process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	closed bool
}

// ProcessOption customises the spawned command before it starts.
type ProcessOption func(cmd *exec.Cmd)

// WithOutput redirects gnuplot's stdout and stderr.
func WithOutput(stdout, stderr io.Writer) ProcessOption {
	return func(cmd *exec.Cmd) {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
	}
}

// WithEnv appends environment variables in KEY=VALUE form.
func WithEnv(env ...string) ProcessOption {
	return func(cmd *exec.Cmd) {
		cmd.Env = append(os.Environ(), env...)
	}
}

// StartProcess spawns executable with args and connects its standard input.
func StartProcess(executable string, args []string, options ...ProcessOption) (*Process, error) {
	cmd := exec.Command(executable, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	for _, option := range options {
		option(cmd)
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't open connection to %s: %v", errs.ErrSetup, executable, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: couldn't open connection to %s: %v", errs.ErrSetup, executable, err)
	}
	return &Process{cmd: cmd, stdin: stdin}, nil
}

// Write sends command followed by a newline; the write is unbuffered.
func (p *Process) Write(command string) error {
	if p.closed {
		return fmt.Errorf("%w: pipe is closed", errs.ErrSetup)
	}
	_, err := io.WriteString(p.stdin, command+"\n")
	return err
}

// Close closes gnuplot's input and waits for it to exit.
func (p *Process) Close(ctx context.Context) error {
	if p.closed {
		return nil
	}
	p.closed = true
	closeErr := p.stdin.Close()
	waitErr := p.cmd.Wait()
	if closeErr != nil || waitErr != nil {
		return fmt.Errorf("problem closing communication to gnuplot: %w", errors.Join(closeErr, waitErr))
	}
	return nil
}
