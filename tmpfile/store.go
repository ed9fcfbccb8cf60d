// Package tmpfile keeps the scratch files a session uses to hand numeric
// samples to gnuplot. A Store only ever deletes files it created itself.
package tmpfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/gnuplot/errs"
	"github.com/viant/gnuplot/internal/idgen"
)

const (
	// DefaultLimit caps the number of live temporary files per store.
	DefaultLimit = 64
	// DefaultPrefix starts every temporary file name.
	DefaultPrefix = "gnuplot-"
	// Extension ends every temporary file name.
	Extension = ".dat"
)

// Store creates and removes temporary data files.
type Store struct {
	fs     afs.Service
	dir    string
	prefix string
	limit  int
	names  []string
}

// Option customises a Store.
type Option func(s *Store)

// WithLimit sets the maximum number of live files; zero or less means
// DefaultLimit.
func WithLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithPrefix sets the file name prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New creates a store writing into dir (os.TempDir() when empty).
func New(fs afs.Service, dir string, options ...Option) *Store {
	if fs == nil {
		fs = afs.New()
	}
	if dir == "" {
		dir = os.TempDir()
	}
	ret := &Store{fs: fs, dir: dir, prefix: DefaultPrefix, limit: DefaultLimit}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Create writes data to a fresh file and returns its path.
func (s *Store) Create(ctx context.Context, data []byte) (string, error) {
	if len(s.names) >= s.limit {
		return "", fmt.Errorf("%w: maximum number of temporary files reached (%d): cannot open more files", errs.ErrResourceLimit, s.limit)
	}
	name := filepath.Join(s.dir, s.prefix+idgen.New()+Extension)
	if err := s.fs.Upload(ctx, name, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: cannot create temporary file %q: %v", errs.ErrSetup, name, err)
	}
	s.names = append(s.names, name)
	return name, nil
}

// Names returns the paths of the live files in creation order.
func (s *Store) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of live files.
func (s *Store) Len() int {
	return len(s.names)
}

// RemoveAll deletes every live file and empties the list, so calling it
// again never repeats work. Files that disappeared behind the store's back are
// reported with errs.ErrNotFound after the remaining files are deleted.
func (s *Store) RemoveAll(ctx context.Context) error {
	names := s.names
	s.names = nil
	var result []error
	for _, name := range names {
		exists, err := s.fs.Exists(ctx, name)
		if err != nil {
			result = append(result, fmt.Errorf("failed to check temporary file %q: %w", name, err))
			continue
		}
		if !exists {
			result = append(result, fmt.Errorf("%w: cannot remove temporary file %q", errs.ErrNotFound, name))
			continue
		}
		if err := s.fs.Delete(ctx, name); err != nil {
			result = append(result, fmt.Errorf("cannot remove temporary file %q: %w", name, err))
		}
	}
	return errors.Join(result...)
}
