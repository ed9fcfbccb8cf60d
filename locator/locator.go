// Package locator resolves the gnuplot executable. The lookup order is an
// explicit installation directory, then every PATH entry, then the usual
// package-manager install locations that are often missing from PATH.
package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/viant/gnuplot/access"
	"github.com/viant/gnuplot/errs"
)

// DefaultDirs are searched after PATH.
var DefaultDirs = []string{
	"/usr/local/bin",
	"/usr/bin",
	"/opt/homebrew/bin",
	"/opt/local/bin",
}

// DefaultName returns the executable name for the running platform.
func DefaultName() string {
	if runtime.GOOS == "windows" {
		return "gnuplot.exe"
	}
	return "gnuplot"
}

// Find returns the absolute path of name. override, when set, is checked
// first; fallback dirs are checked after PATH.
func Find(name, override string, fallback ...string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: executable name is empty", errs.ErrInvalidArgument)
	}
	var candidates []string
	if override != "" {
		candidates = append(candidates, override)
	}
	candidates = append(candidates, filepath.SplitList(os.Getenv("PATH"))...)
	candidates = append(candidates, fallback...)

	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			if abs, err := filepath.Abs(candidate); err == nil {
				return abs, nil
			}
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: can't find %s neither in PATH nor in %q", errs.ErrNotFound, name, override)
}

// CheckDir verifies that dir holds an executable name, the way a caller
// supplied installation path is validated before use.
func CheckDir(dir, name string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("%w: installation path is empty", errs.ErrInvalidArgument)
	}
	candidate := filepath.Join(dir, name)
	if !isExecutable(candidate) {
		return fmt.Errorf("%w: %s is not an executable", errs.ErrNotFound, candidate)
	}
	return nil
}

func isExecutable(candidate string) bool {
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return false
	}
	mode := access.Execute
	if runtime.GOOS == "windows" {
		mode = access.Exists
	}
	ok, _ := access.Check(candidate, mode)
	return ok
}
