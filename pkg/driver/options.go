package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OptionsFileName is looked up next to the program being run.
const OptionsFileName = "rinha.yml"

// Options represents the parsed contents of rinha.yml.
type Options struct {
	Path string

	// FibFastPath switches the native Fibonacci shortcut. On by default;
	// programs that rebind fib and depend on their own definition can turn
	// it off here.
	FibFastPath bool
}

type optionsFile struct {
	FibFastPath *bool `yaml:"fib_fast_path"`
}

// DefaultOptions returns the options used when no rinha.yml is present.
func DefaultOptions() *Options {
	return &Options{FibFastPath: true}
}

// LoadOptions parses an options file from disk.
func LoadOptions(path string) (*Options, error) {
	if path == "" {
		return nil, fmt.Errorf("options: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("options: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("options: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw optionsFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			raw = optionsFile{}
		} else {
			return nil, fmt.Errorf("options: parse %s: %w", absPath, err)
		}
	}

	opts := DefaultOptions()
	opts.Path = absPath
	if raw.FibFastPath != nil {
		opts.FibFastPath = *raw.FibFastPath
	}
	return opts, nil
}

// LoadOptionsNear looks for rinha.yml in the directory containing the
// program file, falling back to defaults when absent.
func LoadOptionsNear(programPath string) (*Options, error) {
	dir := filepath.Dir(programPath)
	candidate := filepath.Join(dir, OptionsFileName)
	info, err := os.Stat(candidate)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultOptions(), nil
		}
		return nil, fmt.Errorf("options: stat %s: %w", candidate, err)
	}
	if info.IsDir() {
		return DefaultOptions(), nil
	}
	return LoadOptions(candidate)
}
