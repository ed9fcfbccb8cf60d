package transport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/gnuplot/errs"
	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
)

// DefaultScriptTimeout bounds one batch run.
const DefaultScriptTimeout = time.Minute

// Script buffers commands and runs them as one gnuplot script on Close. It
// suits headless rendering where every plot ends in "set output".
type Script struct {
	fs         afs.Service
	executable string
	location   string
	timeout    time.Duration
	keep       bool
	env        map[string]string
	commands   []string
	closed     bool
	output     string
}

// ScriptOption customises a Script.
type ScriptOption func(s *Script)

// WithTimeout bounds the gnuplot run.
func WithTimeout(timeout time.Duration) ScriptOption {
	return func(s *Script) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithKeepScript leaves the script file in place after the run.
func WithKeepScript(keep bool) ScriptOption {
	return func(s *Script) { s.keep = keep }
}

// WithScriptEnv sets environment variables for the shell running gnuplot.
func WithScriptEnv(env map[string]string) ScriptOption {
	return func(s *Script) { s.env = env }
}

// WithFileSystem sets the storage the script is written to.
func WithFileSystem(fs afs.Service) ScriptOption {
	return func(s *Script) { s.fs = fs }
}

// NewScript creates a batch pipe writing its script to location.
func NewScript(executable, location string, options ...ScriptOption) *Script {
	ret := &Script{executable: executable, location: location, timeout: DefaultScriptTimeout}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

func (s *Script) Write(command string) error {
	if s.closed {
		return fmt.Errorf("%w: pipe is closed", errs.ErrSetup)
	}
	s.commands = append(s.commands, command)
	return nil
}

// Text returns the script accumulated so far.
func (s *Script) Text() string {
	if len(s.commands) == 0 {
		return ""
	}
	return strings.Join(s.commands, "\n") + "\n"
}

// Output returns what gnuplot printed during the run.
func (s *Script) Output() string {
	return s.output
}

// Close writes the script and runs gnuplot on it through a local shell.
func (s *Script) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	if len(s.commands) == 0 {
		return nil
	}
	if err := s.fs.Upload(ctx, s.location, file.DefaultFileOsMode, strings.NewReader(s.Text())); err != nil {
		return fmt.Errorf("%w: cannot write script %q: %v", errs.ErrSetup, s.location, err)
	}
	if !s.keep {
		defer func() { _ = s.fs.Delete(ctx, s.location) }()
	}

	var options []runner.Option
	if len(s.env) > 0 {
		options = append(options, runner.WithEnvironment(s.env))
	}
	shell, err := gosh.New(ctx, local.New(options...))
	if err != nil {
		return fmt.Errorf("%w: cannot start shell: %v", errs.ErrSetup, err)
	}
	defer shell.Close()

	command := shellEscape(s.executable) + " " + shellEscape(s.location)
	output, status, err := shell.Run(ctx, command, runner.WithTimeout(int(s.timeout.Milliseconds())))
	s.output = output
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", command, err)
	}
	if status != 0 {
		return fmt.Errorf("%s exited with status %d: %s", s.executable, status, strings.TrimSpace(output))
	}
	return nil
}

func shellEscape(value string) string {
	if value == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}
