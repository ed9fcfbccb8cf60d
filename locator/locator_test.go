package locator

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/gnuplot/errs"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	location := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(location, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return location
}

func TestFind(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix executable bits")
	}
	overrideDir := t.TempDir()
	pathDir := t.TempDir()
	fallbackDir := t.TempDir()
	emptyDir := t.TempDir()

	inOverride := writeExecutable(t, overrideDir, "fakeplot")
	inPath := writeExecutable(t, pathDir, "fakeplot")
	inFallback := writeExecutable(t, fallbackDir, "onlyfallback")

	t.Setenv("PATH", pathDir)

	testCases := []struct {
		description string
		name        string
		override    string
		fallback    []string
		expect      string
		expectErr   error
	}{
		{description: "override wins", name: "fakeplot", override: overrideDir, expect: inOverride},
		{description: "PATH when override misses", name: "fakeplot", override: emptyDir, expect: inPath},
		{description: "fallback dir", name: "onlyfallback", fallback: []string{fallbackDir}, expect: inFallback},
		{description: "missing", name: "nothere", fallback: []string{emptyDir}, expectErr: errs.ErrNotFound},
		{description: "empty name", name: " ", expectErr: errs.ErrInvalidArgument},
	}

	for _, testCase := range testCases {
		actual, err := Find(testCase.name, testCase.override, testCase.fallback...)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestFind_SkipsNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("execute bit is not enforced for this user")
	}
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "fakeplot"), []byte("x"), 0o644))
	t.Setenv("PATH", "")

	_, err := Find("fakeplot", dir)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCheckDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix executable bits")
	}
	dir := t.TempDir()
	writeExecutable(t, dir, "fakeplot")

	assert.NoError(t, CheckDir(dir, "fakeplot"))
	assert.ErrorIs(t, CheckDir(t.TempDir(), "fakeplot"), errs.ErrNotFound)
	assert.ErrorIs(t, CheckDir("", "fakeplot"), errs.ErrInvalidArgument)
}
