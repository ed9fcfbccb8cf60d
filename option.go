package gnuplot

import (
	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/gnuplot/tracing"
	"github.com/viant/gnuplot/transport"
)

// Option customises a Session.
type Option func(s *Session)

// WithConfig replaces the session config; pass it before finer options.
func WithConfig(config *Config) Option {
	return func(s *Session) {
		if config != nil {
			s.config = config
		}
	}
}

// WithPath sets the gnuplot installation directory, searched before PATH.
func WithPath(dir string) Option {
	return func(s *Session) { s.config.Path = dir }
}

// WithExecutable sets the executable name.
func WithExecutable(name string) Option {
	return func(s *Session) { s.config.Executable = name }
}

// WithStyle sets the initial line style.
func WithStyle(style string) Option {
	return func(s *Session) { s.config.Style = style }
}

// WithTerminal sets the on-screen terminal used by ShowOnScreen.
func WithTerminal(terminal string) Option {
	return func(s *Session) { s.config.Terminal = terminal }
}

// WithTmpDir sets the directory for temporary data files.
func WithTmpDir(dir string) Option {
	return func(s *Session) { s.config.TmpDir = dir }
}

// WithMaxTmpFiles caps the temporary files one session may hold.
func WithMaxTmpFiles(limit int) Option {
	return func(s *Session) { s.config.MaxTmpFiles = limit }
}

// WithRemoveOnClose controls whether Close deletes temporary files.
func WithRemoveOnClose(remove bool) Option {
	return func(s *Session) { s.config.RemoveOnClose = remove }
}

// WithPersist controls whether plot windows outlive the session.
func WithPersist(persist bool) Option {
	return func(s *Session) { s.config.Persist = persist }
}

// WithBatch collects commands into scriptURL and runs gnuplot once on Close.
func WithBatch(scriptURL string) Option {
	return func(s *Session) {
		if s.config.Batch == nil {
			s.config.Batch = &BatchConfig{}
		}
		s.config.Batch.ScriptURL = scriptURL
	}
}

// WithLabels sets axis labels right after the session opens.
func WithLabels(x, y, z string) Option {
	return func(s *Session) { s.labels = []string{x, y, z} }
}

// WithTransport injects the pipe; no executable lookup happens.
func WithTransport(pipe transport.Pipe) Option {
	return func(s *Session) { s.pipe = pipe }
}

// WithProcessOptions customises the spawned gnuplot process.
func WithProcessOptions(options ...transport.ProcessOption) Option {
	return func(s *Session) { s.processOptions = append(s.processOptions, options...) }
}

// WithFileSystem sets the storage used for temporary files and scripts.
func WithFileSystem(fs afs.Service) Option {
	return func(s *Session) { s.fs = fs }
}

// WithLogger sets the session logger; sessions are silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithTracing installs the stdout span exporter. If outputFile is empty spans
// go to stdout. Only the first initialisation in a process wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Session) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}
