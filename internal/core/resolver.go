package core

import (
	"context"
	"errors"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"gwspec/internal/types"
)

// SpecResolver turns a raw spec string into a normalized spec document: the
// text is fetched from its source, parsed, wrapped when it uses the legacy
// list shape, and migrated to the current schema.
type SpecResolver struct {
	Loader   SpecSourceLoader
	Migrator VersionMigrator
}

func NewSpecResolver(loader SpecSourceLoader, migrator VersionMigrator) SpecResolver {
	return SpecResolver{
		Loader:   loader,
		Migrator: migrator,
	}
}

func (r SpecResolver) Resolve(ctx context.Context, spec string) (types.SpecDocument, types.SourceTag, error) {
	text, tag, err := r.Loader.Load(ctx, spec)
	if err != nil {
		return nil, "", err
	}
	assert.NotEmpty(ctx, string(tag), "source tag must be set")
	if text == "" {
		return types.EmptySpecDocument(), tag, nil
	}

	value, err := types.ParseSpecJSON(text)
	if err != nil {
		return nil, "", malformedSpecError(err)
	}
	var doc types.SpecDocument
	switch v := value.(type) {
	case []any:
		doc = types.SpecDocument{
			types.SpecKeyChartMap: map[string]any{},
			types.SpecKeyConfig:   text,
		}
	case map[string]any:
		doc = types.SpecDocument(v)
	default:
		return nil, "", malformedSpecError(errors.New("spec must be a json object or array"))
	}

	if err := r.Migrator.Migrate(ctx, doc); err != nil {
		return nil, "", err
	}
	version, _ := doc.Version()
	log.Ctx(ctx).Debug().
		Str("source", string(tag)).
		Str("version", version).
		Msg("spec resolved")
	return doc, tag, nil
}
