package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"gwspec/internal/ports"
	"gwspec/internal/types"
)

type SpecOutputFileAdapter struct{}

func NewSpecOutputFileAdapter() SpecOutputFileAdapter {
	return SpecOutputFileAdapter{}
}

func (a SpecOutputFileAdapter) WriteSpec(path string, doc types.SpecDocument) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal spec").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write spec").
			WithCause(err)
	}
	return nil
}

var _ ports.SpecOutputPort = SpecOutputFileAdapter{}
