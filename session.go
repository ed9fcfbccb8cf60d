package gnuplot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/gnuplot/command"
	"github.com/viant/gnuplot/locator"
	"github.com/viant/gnuplot/tmpfile"
	"github.com/viant/gnuplot/tracing"
	"github.com/viant/gnuplot/transport"
)

// DefaultStyle is the line style of a new or reset session.
const DefaultStyle = "points"

// Session is one connection to gnuplot. It is not safe for concurrent use.
type Session struct {
	config         *Config
	fs             afs.Service
	logger         zerolog.Logger
	pipe           transport.Pipe
	processOptions []transport.ProcessOption
	tmpFiles       *tmpfile.Store
	labels         []string

	terminal string
	valid    bool
	closed   bool
	twoDim   bool
	plots    int
	style    string
	smooth   string
}

// New opens a session: it locates gnuplot (unless a transport is injected),
// starts it and switches it to the on-screen terminal. GNUPLOT_* environment
// variables override the defaults but not the options.
func New(ctx context.Context, options ...Option) (*Session, error) {
	s := &Session{config: DefaultConfig(), logger: zerolog.Nop()}
	s.config.ApplyEnv()
	for _, option := range options {
		option(s)
	}
	s.config.Init()
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	s.tmpFiles = tmpfile.New(s.fs, s.config.TmpDir, tmpfile.WithLimit(s.config.MaxTmpFiles))
	s.terminal = s.config.Terminal
	if s.pipe == nil {
		pipe, err := s.open()
		if err != nil {
			return nil, err
		}
		s.pipe = pipe
	}
	s.valid = true
	s.twoDim = true
	s.SetStyle(s.config.Style)
	if err := s.init(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, err
	}
	s.logger.Debug().Str("terminal", s.terminal).Str("style", s.style).Msg("gnuplot session opened")
	return s, nil
}

func (s *Session) init(ctx context.Context) error {
	if s.config.Batch == nil {
		if err := s.showOnScreen(ctx); err != nil {
			return err
		}
	}
	if len(s.labels) == 3 {
		if err := s.setLabel(ctx, "x", s.labels[0]); err != nil {
			return err
		}
		if err := s.setLabel(ctx, "y", s.labels[1]); err != nil {
			return err
		}
		return s.setLabel(ctx, "z", s.labels[2])
	}
	return nil
}

func (s *Session) open() (transport.Pipe, error) {
	if s.config.Path != "" {
		if err := locator.CheckDir(s.config.Path, s.config.Executable); err != nil {
			return nil, err
		}
	}
	executable, err := locator.Find(s.config.Executable, s.config.Path, s.config.SearchDirs...)
	if err != nil {
		return nil, err
	}
	if batch := s.config.Batch; batch != nil {
		options := []transport.ScriptOption{
			transport.WithFileSystem(s.fs),
			transport.WithKeepScript(batch.KeepScript),
		}
		if batch.TimeoutMs > 0 {
			options = append(options, transport.WithTimeout(time.Duration(batch.TimeoutMs)*time.Millisecond))
		}
		s.logger.Debug().Str("executable", executable).Str("script", batch.ScriptURL).Msg("batch mode")
		return transport.NewScript(executable, batch.ScriptURL, options...), nil
	}
	if err := checkDisplay(s.terminal); err != nil {
		return nil, err
	}
	var args []string
	if s.config.Persist {
		args = append(args, transport.PersistFlag)
	}
	s.logger.Debug().Str("executable", executable).Strs("args", args).Msg("starting gnuplot")
	return transport.StartProcess(executable, args, s.processOptions...)
}

// checkDisplay fails for X11 terminals when no display is reachable.
func checkDisplay(terminal string) error {
	if strings.Contains(terminal, "x11") && os.Getenv("DISPLAY") == "" {
		return fmt.Errorf("%w: can't find DISPLAY variable", ErrSetup)
	}
	return nil
}

// Cmd sends a raw gnuplot command.
func (s *Session) Cmd(line string) error {
	return s.cmd(context.Background(), line)
}

func (s *Session) cmd(ctx context.Context, line string) (err error) {
	if !s.valid {
		return fmt.Errorf("%w: session is not valid", ErrSetup)
	}
	_, span := tracing.StartSpan(ctx, "gnuplot.cmd", "CLIENT")
	span.WithAttributes(map[string]string{"gnuplot.command": line})
	defer func() { tracing.EndSpan(span, err) }()
	if err = s.pipe.Write(line); err != nil {
		return fmt.Errorf("%w: failed to send %q: %v", ErrSetup, line, err)
	}
	s.logger.Debug().Str("command", line).Msg("sent")
	for _, kind := range command.Scan(line) {
		switch kind {
		case command.Plot:
			s.twoDim = true
			s.plots++
		case command.Splot:
			s.twoDim = false
			s.plots++
		}
	}
	return nil
}

// Valid reports whether the session can still accept commands.
func (s *Session) Valid() bool { return s.valid }

// Plots returns the number of plots on the current graph.
func (s *Session) Plots() int { return s.plots }

// TwoDim reports whether the current graph is two dimensional.
func (s *Session) TwoDim() bool { return s.twoDim }

// Style returns the current line style.
func (s *Session) Style() string { return s.style }

// Smooth returns the current smoothing mode, empty when disabled.
func (s *Session) Smooth() string { return s.smooth }

// Terminal returns the on-screen terminal type.
func (s *Session) Terminal() string { return s.terminal }

// TmpFiles returns the temporary files the session still owns.
func (s *Session) TmpFiles() []string { return s.tmpFiles.Names() }

// Replot repeats the last plot; it does nothing before the first plot.
func (s *Session) Replot() error {
	if s.plots == 0 {
		return nil
	}
	return s.Cmd("replot")
}

// ResetPlot makes the next plot start a new graph.
func (s *Session) ResetPlot() {
	s.plots = 0
}

// ResetAll resets every gnuplot setting and, outside batch mode, returns to
// the on-screen terminal.
func (s *Session) ResetAll() error {
	ctx := context.Background()
	s.plots = 0
	if err := s.cmd(ctx, "reset"); err != nil {
		return err
	}
	if err := s.cmd(ctx, "clear"); err != nil {
		return err
	}
	s.style = DefaultStyle
	s.smooth = ""
	if s.config.Batch != nil {
		return nil
	}
	return s.showOnScreen(ctx)
}

// RemoveTmpFiles deletes the temporary data files created so far.
func (s *Session) RemoveTmpFiles(ctx context.Context) error {
	return s.tmpFiles.RemoveAll(ctx)
}

// Close closes the pipe and, when configured, removes temporary files. The
// session is invalid afterwards even if closing the pipe failed.
func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.valid = false
	var result []error
	if err := s.pipe.Close(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("problem closing communication to gnuplot")
		result = append(result, err)
	}
	if s.config.RemoveOnClose {
		if err := s.tmpFiles.RemoveAll(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to remove temporary files")
			result = append(result, err)
		}
	}
	return errors.Join(result...)
}
