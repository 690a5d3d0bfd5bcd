package ports

import (
	"context"

	"gwspec/internal/types"
)

// CloudConfigPort reads a chart spec stored in the cloud workspace. The path
// is the reference with its ksf:// prefix removed.
type CloudConfigPort interface {
	ReadConfig(ctx context.Context, path string) (string, error)
}

// ConfigServerPort looks up a chart spec by its 32-hex config id.
type ConfigServerPort interface {
	FetchConfig(ctx context.Context, configID string) (string, error)
}

// SpecURLPort downloads a chart spec from an arbitrary http(s) URL.
type SpecURLPort interface {
	FetchURL(ctx context.Context, url string) (string, error)
}

// LocalSpecPort reads chart specs from the local filesystem and creates the
// empty placeholder file for paths that do not exist yet.
type LocalSpecPort interface {
	Exists(path string) (bool, error)
	ReadSpec(path string) (string, error)
	CreateEmpty(path string) error
}

// SpecOutputPort persists a resolved spec document.
type SpecOutputPort interface {
	WriteSpec(path string, doc types.SpecDocument) error
}
