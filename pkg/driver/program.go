package driver

import (
	"fmt"
	"io"
	"os"

	"rinha/interpreter-go/pkg/ast"
)

// LoadProgram reads and decodes a JSON-encoded program document from disk.
func LoadProgram(path string) (*ast.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("program: read %s: %w", path, err)
	}
	file, err := ast.DecodeFile(data)
	if err != nil {
		return nil, fmt.Errorf("program: %s: %w", path, err)
	}
	return file, nil
}

// ReadProgram decodes a program document from a stream, e.g. stdin.
func ReadProgram(r io.Reader) (*ast.File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("program: read stream: %w", err)
	}
	file, err := ast.DecodeFile(data)
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}
	return file, nil
}
