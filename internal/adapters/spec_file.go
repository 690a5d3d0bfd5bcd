package adapters

import (
	"errors"
	"io/fs"
	"os"

	"gwspec/internal/ports"
	"gwspec/internal/shared"
)

// SpecFileAdapter reads chart specs from disk. I/O errors are returned as
// reported by the os package.
type SpecFileAdapter struct{}

func NewSpecFileAdapter() SpecFileAdapter {
	return SpecFileAdapter{}
}

func (a SpecFileAdapter) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (a SpecFileAdapter) ReadSpec(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return shared.UTF8Text(data, "spec file")
}

// CreateEmpty creates a zero-length file at path, so that a later save to
// the same path succeeds.
func (a SpecFileAdapter) CreateEmpty(path string) error {
	return os.WriteFile(path, nil, 0644)
}

var _ ports.LocalSpecPort = SpecFileAdapter{}
