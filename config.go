package gnuplot

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/gnuplot/locator"
	"github.com/viant/gnuplot/logging"
	"github.com/viant/gnuplot/tmpfile"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding Config fields.
const (
	EnvPath        = "GNUPLOT_PATH"
	EnvTerminal    = "GNUPLOT_TERMINAL"
	EnvTmpDir      = "GNUPLOT_TMPDIR"
	EnvMaxTmpFiles = "GNUPLOT_MAX_TMPFILES"
)

// Config is a serialisable representation of session defaults. It can be
// populated from YAML or JSON. Init fills empty string, slice and numeric
// fields with defaults; bool fields are taken as given, so start from
// DefaultConfig to keep RemoveOnClose and Persist enabled.
type Config struct {
	Executable    string         `json:"executable,omitempty" yaml:"executable,omitempty"`
	Path          string         `json:"path,omitempty" yaml:"path,omitempty"` // installation directory override
	SearchDirs    []string       `json:"searchDirs,omitempty" yaml:"searchDirs,omitempty"`
	Terminal      string         `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	Style         string         `json:"style,omitempty" yaml:"style,omitempty"`
	TmpDir        string         `json:"tmpDir,omitempty" yaml:"tmpDir,omitempty"`
	MaxTmpFiles   int            `json:"maxTmpFiles,omitempty" yaml:"maxTmpFiles,omitempty"`
	RemoveOnClose bool           `json:"removeOnClose,omitempty" yaml:"removeOnClose,omitempty"`
	Persist       bool           `json:"persist,omitempty" yaml:"persist,omitempty"`
	Batch         *BatchConfig   `json:"batch,omitempty" yaml:"batch,omitempty"`
	Log           logging.Config `json:"log,omitempty" yaml:"log,omitempty"`
}

// BatchConfig switches the session to script mode: commands are collected
// and run by one gnuplot invocation when the session closes.
type BatchConfig struct {
	ScriptURL  string `json:"scriptURL,omitempty" yaml:"scriptURL,omitempty"`
	TimeoutMs  int    `json:"timeoutMs,omitempty" yaml:"timeoutMs,omitempty"`
	KeepScript bool   `json:"keepScript,omitempty" yaml:"keepScript,omitempty"`
}

// DefaultTerminal returns the on-screen terminal for the running platform.
func DefaultTerminal() string {
	switch runtime.GOOS {
	case "windows":
		return "windows"
	case "darwin":
		return "aqua"
	default:
		return "x11"
	}
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() *Config {
	return &Config{
		Executable:    locator.DefaultName(),
		SearchDirs:    append([]string(nil), locator.DefaultDirs...),
		Terminal:      DefaultTerminal(),
		Style:         DefaultStyle,
		TmpDir:        os.TempDir(),
		MaxTmpFiles:   tmpfile.DefaultLimit,
		RemoveOnClose: true,
		Persist:       true,
		Log:           logging.Config{Level: "info", Format: "console"},
	}
}

// Init fills unset fields with defaults.
func (c *Config) Init() {
	defaults := DefaultConfig()
	if c.Executable == "" {
		c.Executable = defaults.Executable
	}
	if c.SearchDirs == nil {
		c.SearchDirs = defaults.SearchDirs
	}
	if c.Terminal == "" {
		c.Terminal = defaults.Terminal
	}
	if c.Style == "" {
		c.Style = defaults.Style
	}
	if c.TmpDir == "" {
		c.TmpDir = defaults.TmpDir
	}
	if c.MaxTmpFiles == 0 {
		c.MaxTmpFiles = defaults.MaxTmpFiles
	}
}

// ApplyEnv overrides fields from GNUPLOT_* environment variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvPath)); v != "" {
		c.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTerminal)); v != "" {
		c.Terminal = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTmpDir)); v != "" {
		c.TmpDir = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(EnvMaxTmpFiles))); err == nil {
		c.MaxTmpFiles = v
	}
}

// Validate returns an error describing the first invalid setting, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if strings.TrimSpace(c.Executable) == "" {
		return fmt.Errorf("%w: executable must not be empty", ErrInvalidArgument)
	}
	if c.MaxTmpFiles < 0 {
		return fmt.Errorf("%w: maxTmpFiles must be >= 0", ErrInvalidArgument)
	}
	if c.Batch != nil {
		if c.Batch.ScriptURL == "" {
			return fmt.Errorf("%w: batch.scriptURL must not be empty", ErrInvalidArgument)
		}
		if c.Batch.TimeoutMs < 0 {
			return fmt.Errorf("%w: batch.timeoutMs must be >= 0", ErrInvalidArgument)
		}
	}
	return nil
}

// LoadConfig reads a YAML (or JSON) config from URL over the defaults, applies
// environment overrides and validates the result.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	config.Init()
	config.ApplyEnv()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
